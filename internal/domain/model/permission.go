package model

import "time"

// Permission groups used as grant-permission scopes.
const (
	PermissionGroupUser       = "USER"
	PermissionGroupRole       = "ROLE"
	PermissionGroupPermission = "PERMISSION"
	PermissionGroupSetting    = "SETTING"
	PermissionGroupAPIKey     = "API_KEY"
)

// Permission is immutable reference data seeded at migration time.
type Permission struct {
	ID          string    `bson:"_id" json:"_id"`
	Code        string    `bson:"code" json:"code"`
	Group       string    `bson:"group" json:"group"`
	Description string    `bson:"description" json:"description"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
