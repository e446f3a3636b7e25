// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a SkillSwap account as persisted by the credential store.
// Sensitive fields must never be exposed outside trusted boundaries; use
// [User.Public] to build the client-facing view.
type User struct {
	// ID is the opaque unique identifier of the user (UUIDv7 string).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login key. It is compared exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is set once at registration and only ever compared.
	PasswordHash string `json:"-"`

	// Role is the privilege level of the user.
	Role Role `json:"-"`

	// IsBanned blocks access to every non-administrative route.
	IsBanned bool `json:"isBanned"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last mutation of the account.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// Public returns the sanitized view of the user that is safe to send to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.Role.IsAdmin(),
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PublicUser is the client-facing representation of a [User].
// It never carries the password hash or any session material.
type PublicUser struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	IsBanned  bool      `json:"isBanned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
