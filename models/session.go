// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RefreshSession is one entry of a user's set of currently valid refresh
// tokens. Only a keyed hash of the token is stored, never the token itself.
type RefreshSession struct {
	// TokenHash is the hex HMAC-SHA256 of the refresh token.
	TokenHash string

	// UserID is the owner of the session.
	UserID string

	// ExpiresAt mirrors the "exp" claim of the refresh token. A session past
	// this instant is treated as absent.
	ExpiresAt time.Time

	// CreatedAt is the login time that minted the session.
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the RefreshSession model.
func (s RefreshSession) TableName() string {
	return "refresh_sessions"
}

// Expired reports whether the session is no longer valid at now.
func (s RefreshSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
