// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/models"
)

// sessionRepository keeps refresh sessions in the "refresh_sessions" table,
// one row per session keyed by the token hash.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository constructs the PostgreSQL [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating postgres session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *sessionRepository) Save(ctx context.Context, session models.RefreshSession) error {
	query, args, err := saveSessionQuery(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.exec(ctx, "*sessionRepository.Save", query, args); err != nil {
		return err
	}

	return nil
}

func (r *sessionRepository) Exists(ctx context.Context, userID, tokenHash string) (bool, error) {
	query, args, err := sessionExistsQuery(userID, tokenHash, r.now())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.Exists").Msg("error looking up session")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *sessionRepository) Delete(ctx context.Context, userID, tokenHash string) error {
	query, args, err := deleteSessionQuery(userID, tokenHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.exec(ctx, "*sessionRepository.Delete", query, args)
	return err
}

func (r *sessionRepository) DeleteAllForUser(ctx context.Context, userID string) (int64, error) {
	query, args, err := deleteUserSessionsQuery(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := r.exec(ctx, "*sessionRepository.DeleteAllForUser", query, args)
	if isMalformedID(err) {
		return 0, nil
	}
	return deleted, err
}

func (r *sessionRepository) TrimForUser(ctx context.Context, userID string, keep int) (int64, error) {
	if keep < 0 {
		return 0, nil
	}

	query, args, err := trimSessionsQuery(userID, keep)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*sessionRepository.TrimForUser", query, args)
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := deleteExpiredSessionsQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*sessionRepository.DeleteExpired", query, args)
}

// exec runs a statement with retries and returns the number of affected rows.
func (r *sessionRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	var affected int64

	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
