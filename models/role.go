// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	// RoleUser is assigned to every account at registration.
	RoleUser Role = "user"

	// RoleAdmin grants access to moderation endpoints.
	RoleAdmin Role = "admin"
)

// IsAdmin reports whether r carries administrative privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromAdminFlag maps the boolean role claim carried by access tokens back
// to a [Role].
func RoleFromAdminFlag(isAdmin bool) Role {
	if isAdmin {
		return RoleAdmin
	}
	return RoleUser
}
