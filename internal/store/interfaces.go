// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/skillswap/skillswap-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row.
	// A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrNoUserWasFound] when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns [ErrNoUserWasFound] when no row matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// SetBanned updates the ban flag and returns the updated row.
	SetBanned(ctx context.Context, userID string, banned bool) (models.User, error)
	// SetRole updates the role of the user owning email.
	SetRole(ctx context.Context, email string, role models.Role) (models.User, error)
}

// SessionRepository holds the set of live refresh sessions. Sessions are
// addressed by the HMAC of the refresh token, never by the token itself.
type SessionRepository interface {
	// Save adds a session. Saving an existing hash is a no-op.
	Save(ctx context.Context, session models.RefreshSession) error
	// Exists reports whether userID owns an unexpired session with hash.
	Exists(ctx context.Context, userID, tokenHash string) (bool, error)
	// Delete removes one session. Deleting an absent session is not an error.
	Delete(ctx context.Context, userID, tokenHash string) error
	// DeleteAllForUser removes every session of userID.
	DeleteAllForUser(ctx context.Context, userID string) (int64, error)
	// TrimForUser keeps the newest keep sessions of userID and removes the rest.
	TrimForUser(ctx context.Context, userID string, keep int) (int64, error)
	// DeleteExpired removes sessions that expired at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
