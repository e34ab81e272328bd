package models

import "github.com/google/uuid"

// Role of an authenticated caller within its organization
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDispatcher Role = "dispatcher"
	RoleViewer     Role = "viewer"
)

// Caller is the authenticated identity behind a request
type Caller struct {
	UserID string
	OrgID  uuid.UUID
	Role   Role
}

// HasRole reports whether the caller holds one of roles
func (c Caller) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}
