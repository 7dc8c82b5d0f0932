package model

import "time"

// Token payloads are transient; they exist only for signing and
// verification and are never persisted.

// AccessPayload carries identity plus role context.
type AccessPayload struct {
	ID         string    `json:"_id"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	AccessFor  string    `json:"accessFor"`
	RememberMe bool      `json:"rememberMe"`
	LoginDate  time.Time `json:"loginDate"`
}

// RefreshPayload carries identity only; role and permissions are
// re-resolved when the token is used.
type RefreshPayload struct {
	ID         string    `json:"_id"`
	RememberMe bool      `json:"rememberMe"`
	LoginDate  time.Time `json:"loginDate"`
}

// PermissionGrant is one granted permission inside a permission token.
type PermissionGrant struct {
	Code  string `json:"code"`
	Group string `json:"group"`
}

// PermissionPayload carries the explicit scoped subset granted for the
// current session.
type PermissionPayload struct {
	ID          string            `json:"_id"`
	Permissions []PermissionGrant `json:"permissions"`
}
