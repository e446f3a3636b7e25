// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/validators"
	"github.com/skillswap/skillswap-server/models"
)

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AuthValidationService checks request payloads before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("registration request rejected")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, request)
}

// Login reports missing fields as ErrInvalidCredentials, the same answer an
// unknown account gets.
func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) Refresh(ctx context.Context, refreshToken string) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, models.RefreshRequest{RefreshToken: refreshToken}); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrMissingToken, err)
	}

	return v.inner.Refresh(ctx, refreshToken)
}

func (v *AuthValidationService) Logout(ctx context.Context, refreshToken string) error {
	if err := v.validator.Validate(ctx, models.RefreshRequest{RefreshToken: refreshToken}); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingToken, err)
	}

	return v.inner.Logout(ctx, refreshToken)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, accessToken string) (models.User, error) {
	return v.inner.Authenticate(ctx, accessToken)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
