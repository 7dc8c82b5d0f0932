package model

import "time"

const (
	SettingNamePasswordAttempt    = "passwordAttempt"
	SettingNameMaxPasswordAttempt = "maxPasswordAttempt"
)

// Setting stores its value as a string with a type discriminator; the
// setting service coerces on read.
type Setting struct {
	ID          string    `bson:"_id" json:"_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Type        string    `bson:"type" json:"type"` // "string", "number", "boolean"
	Value       string    `bson:"value" json:"value"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
