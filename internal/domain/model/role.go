package model

import (
	"time"

	"github.com/gosimple/slug"
)

// AccessFor marks the realm a role belongs to.
const (
	AccessForAdmin = "ADMIN"
	AccessForUser  = "USER"
)

type Role struct {
	ID          string    `bson:"_id" json:"_id"`
	Name        string    `bson:"name" json:"name"`
	AccessFor   string    `bson:"accessFor" json:"accessFor"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	Permissions []string  `bson:"permissions" json:"permissions"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NormalizeRoleName canonicalizes a role name before persistence. Callers
// invoke this explicitly; there are no save hooks.
func NormalizeRoleName(name string) string {
	return slug.Make(name)
}
