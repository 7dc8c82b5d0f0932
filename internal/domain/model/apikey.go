package model

import (
	"time"

	"github.com/gosimple/slug"
)

// APIKey authenticates non-user callers. Key is the public half sent in
// the x-api-key header; Hash is sha256(key:secret) so the secret is never
// stored.
type APIKey struct {
	ID          string     `bson:"_id" json:"_id"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Key         string     `bson:"key" json:"key"`
	Hash        string     `bson:"hash" json:"-"`
	IsActive    bool       `bson:"isActive" json:"isActive"`
	StartDate   *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// NormalizeAPIKeyName canonicalizes an api-key name before persistence.
func NormalizeAPIKeyName(name string) string {
	return slug.Make(name)
}
