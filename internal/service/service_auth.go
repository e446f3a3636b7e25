// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skillswap/skillswap-server/internal/config"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/metrics"
	"github.com/skillswap/skillswap-server/internal/store"
	"github.com/skillswap/skillswap-server/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyPassword feeds the hash compared against when the login email matches
// no account, so unknown emails and wrong passwords cost the same.
const dummyPassword = "skillswap-login-placeholder"

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	tokens            TokenCodec
	ids               IDGenerator

	bcryptCost         int
	maxSessionsPerUser int
	dummyHash          []byte

	now     func() time.Time
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewAuthService constructs the session manager. It fails only when the
// bcrypt cost in cfg is out of range.
func NewAuthService(
	userRepository store.UserRepository,
	sessionRepository store.SessionRepository,
	tokens TokenCodec,
	ids IDGenerator,
	cfg config.App,
	m *metrics.Metrics,
	logger *logger.Logger,
) (AuthService, error) {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error preparing login placeholder hash: %w", err)
	}

	return &authService{
		userRepository:     userRepository,
		sessionRepository:  sessionRepository,
		tokens:             tokens,
		ids:                ids,
		bcryptCost:         cfg.BcryptCost,
		maxSessionsPerUser: cfg.MaxSessionsPerUser,
		dummyHash:          dummyHash,
		now:                time.Now,
		metrics:            m,
		logger:             logger,
	}, nil
}

// Register creates an account with the user role and returns an access token
// for it. No refresh session is opened.
//
// Returns ErrEmailTaken if the email is already registered, whether detected
// by the lookup or by the unique constraint on insert.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		return models.AuthResult{}, ErrEmailTaken
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleUser,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResult{}, ErrEmailTaken
	}
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	accessToken, err := a.tokens.IssueAccessToken(user.ID, user.IsAdmin())
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("access token creation failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	a.metrics.Registrations.Inc()
	log.Info().Str("user_id", user.ID).Msg("user registered")

	public := user.Public()
	return models.AuthResult{AccessToken: accessToken.SignedString, User: &public}, nil
}

// Login verifies credentials, opens a refresh session and returns both tokens.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials, and
// both pay for one bcrypt comparison. Banned users may log in.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (result models.AuthResult, err error) {
	log := logger.FromContext(ctx)
	defer func() {
		a.metrics.Logins.WithLabelValues(metrics.StatusLabel(err)).Inc()
	}()

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	found := err == nil
	if err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash := a.dummyHash
	if found {
		hash = []byte(user.PasswordHash)
	}
	mismatch := bcrypt.CompareHashAndPassword(hash, []byte(request.Password))
	if !found || mismatch != nil {
		return models.AuthResult{}, ErrInvalidCredentials
	}

	accessToken, err := a.tokens.IssueAccessToken(user.ID, user.IsAdmin())
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("access token creation failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	refreshToken, err := a.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("refresh token creation failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	err = a.sessionRepository.Save(ctx, models.RefreshSession{
		TokenHash: a.tokens.HashRefreshToken(refreshToken.SignedString),
		UserID:    user.ID,
		ExpiresAt: refreshToken.ExpiresAt,
		CreatedAt: a.now(),
	})
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("saving refresh session failed")
		return models.AuthResult{}, fmt.Errorf("saving refresh session failed: %w", err)
	}

	a.enforceSessionCap(ctx, user.ID)

	public := user.Public()
	return models.AuthResult{
		AccessToken:  accessToken.SignedString,
		RefreshToken: refreshToken.SignedString,
		User:         &public,
	}, nil
}

// enforceSessionCap evicts the oldest sessions of userID beyond the cap.
// A failed trim leaves extra sessions alive and does not fail the login.
func (a *authService) enforceSessionCap(ctx context.Context, userID string) {
	if a.maxSessionsPerUser <= 0 {
		return
	}

	evicted, err := a.sessionRepository.TrimForUser(ctx, userID, a.maxSessionsPerUser)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("trimming refresh sessions failed")
		return
	}
	if evicted > 0 {
		logger.FromContext(ctx).Debug().Str("user_id", userID).Int64("evicted", evicted).Msg("evicted oldest refresh sessions")
	}
}

// Refresh mints a new access token from a refresh token that is still an
// active session of an existing user. The refresh token itself is not
// rotated.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (result models.AuthResult, err error) {
	log := logger.FromContext(ctx)
	defer func() {
		a.metrics.Refreshes.WithLabelValues(metrics.StatusLabel(err)).Inc()
	}()

	if refreshToken == "" {
		return models.AuthResult{}, ErrMissingToken
	}

	token, err := a.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.AuthResult{}, ErrRevokedToken
	}
	if err != nil {
		log.Err(err).Str("user_id", token.UserID).Msg("user search by id failed")
		return models.AuthResult{}, fmt.Errorf("user search by id failed: %w", err)
	}

	active, err := a.sessionRepository.Exists(ctx, user.ID, a.tokens.HashRefreshToken(refreshToken))
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("refresh session lookup failed")
		return models.AuthResult{}, fmt.Errorf("refresh session lookup failed: %w", err)
	}
	if !active {
		return models.AuthResult{}, ErrRevokedToken
	}

	accessToken, err := a.tokens.IssueAccessToken(user.ID, user.IsAdmin())
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("access token creation failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResult{AccessToken: accessToken.SignedString}, nil
}

// Logout closes the session of refreshToken. Closing a session that is
// already gone succeeds.
func (a *authService) Logout(ctx context.Context, refreshToken string) error {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return ErrMissingToken
	}

	token, err := a.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("user_id", token.UserID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err = a.sessionRepository.Delete(ctx, user.ID, a.tokens.HashRefreshToken(refreshToken)); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("deleting refresh session failed")
		return fmt.Errorf("deleting refresh session failed: %w", err)
	}

	a.metrics.Logouts.Inc()
	return nil
}

// Authenticate verifies an access token and loads its subject. The role and
// ban flag come from the stored record, not from the token.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.User, error) {
	if accessToken == "" {
		return models.User{}, ErrMissingToken
	}

	token, err := a.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
