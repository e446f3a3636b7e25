// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client of the SkillSwap auth API.
//
// [ServerAdapter] holds the token pair of one signed-in user. Authenticated
// calls answered with 401 refresh the access token once with the stored
// refresh token and retry. Non-2xx statuses are mapped to the sentinel errors
// of errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/skillswap/skillswap-server/models"
)

type ServerAdapter interface {
	// SetTokens replaces the held token pair.
	SetTokens(accessToken, refreshToken string)
	// Tokens returns the held token pair. Either value may be empty.
	Tokens() (accessToken, refreshToken string)

	// Register creates an account and keeps the returned access token.
	Register(ctx context.Context, request models.RegisterRequest) (models.PublicUser, error)
	// Login keeps both returned tokens.
	Login(ctx context.Context, request models.LoginRequest) (models.PublicUser, error)
	// Refresh replaces the access token using the held refresh token.
	Refresh(ctx context.Context) error
	// Logout ends the session of the held refresh token and forgets both tokens.
	Logout(ctx context.Context) error

	Me(ctx context.Context) (models.PublicUser, error)
	SetBanned(ctx context.Context, userID string, banned bool) (models.PublicUser, error)
	RevokeSessions(ctx context.Context, userID string) (int64, error)

	Version(ctx context.Context) (string, error)
}
