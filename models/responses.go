// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResult is what the session manager hands back to the transport layer
// after register, login and refresh. Fields that an operation does not
// produce are left empty and omitted from the JSON body.
type AuthResult struct {
	// AccessToken is the freshly issued access token.
	AccessToken string `json:"token"`

	// RefreshToken is set by login only.
	RefreshToken string `json:"refreshToken,omitempty"`

	// User is the sanitized account; nil on refresh.
	User *PublicUser `json:"user,omitempty"`
}

// MessageResponse is the body of every error response and of plain
// acknowledgements such as logout.
type MessageResponse struct {
	Message string `json:"message"`
}

// ModerationResponse is returned by the ban and unban endpoints.
type ModerationResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// RevokeSessionsResponse is returned when an admin revokes every session of
// a user.
type RevokeSessionsResponse struct {
	Message string `json:"message"`
	Revoked int64  `json:"revoked"`
}
