// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/store"
	"github.com/skillswap/skillswap-server/models"
)

type userService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, sessionRepository store.SessionRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		logger:            logger,
	}
}

func (s *userService) Me(ctx context.Context, userID string) (models.PublicUser, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.PublicUser{}, s.userLookupError(ctx, err, "user search by id failed")
	}

	return user.Public(), nil
}

// SetBanned sets the ban flag of userID. Existing refresh sessions are kept;
// the gate refuses the banned user on every non-admin route.
func (s *userService) SetBanned(ctx context.Context, actor models.User, userID string, banned bool) (models.PublicUser, error) {
	if !actor.IsAdmin() {
		return models.PublicUser{}, ErrAdminOnly
	}

	user, err := s.userRepository.SetBanned(ctx, userID, banned)
	if err != nil {
		return models.PublicUser{}, s.userLookupError(ctx, err, "updating ban flag failed")
	}

	logger.FromContext(ctx).Info().
		Str("actor_id", actor.ID).
		Str("user_id", user.ID).
		Bool("banned", banned).
		Msg("ban flag changed")

	return user.Public(), nil
}

// RevokeSessions logs userID out of every device.
func (s *userService) RevokeSessions(ctx context.Context, actor models.User, userID string) (int64, error) {
	if !actor.IsAdmin() {
		return 0, ErrAdminOnly
	}

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return 0, s.userLookupError(ctx, err, "user search by id failed")
	}

	revoked, err := s.sessionRepository.DeleteAllForUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("revoking refresh sessions failed")
		return 0, fmt.Errorf("revoking refresh sessions failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("actor_id", actor.ID).
		Str("user_id", userID).
		Int64("revoked", revoked).
		Msg("refresh sessions revoked")

	return revoked, nil
}

// PromoteToAdmin grants the admin role to the account owning email. The
// authorization gate reads the role from the store, so already issued access
// tokens gain admin rights at once. Only their isAdmin claim stays stale.
func (s *userService) PromoteToAdmin(ctx context.Context, email string) (models.PublicUser, error) {
	if email == "" {
		return models.PublicUser{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		return models.PublicUser{}, s.userLookupError(ctx, err, "updating role failed")
	}

	return user.Public(), nil
}

func (s *userService) userLookupError(ctx context.Context, err error, msg string) error {
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}

	logger.FromContext(ctx).Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
