// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and the ban/role updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the canonical database
// representation (server-assigned timestamps included) via RETURNING.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := createUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.queryUser(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, err
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email matches exactly.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

// FindUserByID retrieves the user with the given identifier.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": userID})
}

// SetBanned flips the ban flag of userID and returns the updated row.
func (r *userRepository) SetBanned(ctx context.Context, userID string, banned bool) (models.User, error) {
	query, args, err := updateUserQuery(sq.Eq{"id": userID}, "is_banned", banned)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateUser(ctx, "*userRepository.SetBanned", query, args)
}

// SetRole assigns role to the user owning email and returns the updated row.
func (r *userRepository) SetRole(ctx context.Context, email string, role models.Role) (models.User, error) {
	query, args, err := updateUserQuery(sq.Eq{"email": email}, "role", string(role))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateUser(ctx, "*userRepository.SetRole", query, args)
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := findUserQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.queryUser(ctx, query, args)
	if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) updateUser(ctx context.Context, funcName string, query string, args []any) (models.User, error) {
	user, err := r.queryUser(ctx, query, args)
	if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error updating user")
		return models.User{}, err
	}

	return user, nil
}

// queryUser runs a single-row query and scans it into a [models.User].
// sql.ErrNoRows is returned unwrapped so callers can match it.
func (r *userRepository) queryUser(ctx context.Context, query string, args []any) (models.User, error) {
	var user models.User
	var role string

	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&role,
			&user.IsBanned,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, sql.ErrNoRows
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.Role = models.Role(role)
	return user, nil
}
