// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/skillswap/skillswap-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the session manager: it turns credentials into token pairs
// and keeps the set of live refresh sessions.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (models.AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error

	// Authenticate resolves an access token to the current user record.
	Authenticate(ctx context.Context, accessToken string) (models.User, error)
}

// UserService exposes the account fields owned by the auth core.
type UserService interface {
	Me(ctx context.Context, userID string) (models.PublicUser, error)
	SetBanned(ctx context.Context, actor models.User, userID string, banned bool) (models.PublicUser, error)
	RevokeSessions(ctx context.Context, actor models.User, userID string) (int64, error)
	PromoteToAdmin(ctx context.Context, email string) (models.PublicUser, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TokenCodec issues and verifies signed access and refresh tokens.
type TokenCodec interface {
	IssueAccessToken(userID string, isAdmin bool) (models.Token, error)
	IssueRefreshToken(userID string) (models.Token, error)
	VerifyAccessToken(tokenString string) (models.Token, error)
	VerifyRefreshToken(tokenString string) (models.Token, error)
	HashRefreshToken(tokenString string) string
}

// IDGenerator produces identifiers for new users.
type IDGenerator interface {
	Generate() string
}
