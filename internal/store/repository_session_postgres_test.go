// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T, now time.Time) (*sessionRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &sessionRepository{
		db:     db,
		logger: logger.Nop(),
		now:    func() time.Time { return now },
	}, mock
}

func TestSessionRepository_Save(t *testing.T) {
	now := time.Now()
	repo, mock := newTestSessionRepo(t, now)
	session := models.RefreshSession{
		TokenHash: "hash-1",
		UserID:    "user-1",
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_sessions")).
		WithArgs(session.TokenHash, session.UserID, session.ExpiresAt, session.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), session))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_Error(t *testing.T) {
	repo, mock := newTestSessionRepo(t, time.Now())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_sessions")).
		WillReturnError(errors.New("disk full"))

	err := repo.Save(context.Background(), models.RefreshSession{TokenHash: "h", UserID: "u"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSessionRepository_Exists(t *testing.T) {
	now := time.Now()

	t.Run("present", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t, now)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM refresh_sessions WHERE token_hash = $1 AND user_id = $2 AND expires_at > $3")).
			WithArgs("hash-1", "user-1", now).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		ok, err := repo.Exists(context.Background(), "user-1", "hash-1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t, now)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM refresh_sessions")).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		ok, err := repo.Exists(context.Background(), "user-1", "hash-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("error", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t, now)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM refresh_sessions")).
			WillReturnError(errors.New("boom"))

		ok, err := repo.Exists(context.Background(), "user-1", "hash-1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.False(t, ok)
	})
}

func TestSessionRepository_Delete_Idempotent(t *testing.T) {
	repo, mock := newTestSessionRepo(t, time.Now())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_sessions WHERE token_hash = $1 AND user_id = $2")).
		WithArgs("hash-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_sessions WHERE token_hash = $1 AND user_id = $2")).
		WithArgs("hash-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "user-1", "hash-1"))
	require.NoError(t, repo.Delete(context.Background(), "user-1", "hash-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteAllForUser(t *testing.T) {
	repo, mock := newTestSessionRepo(t, time.Now())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_sessions WHERE user_id = $1")).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteAllForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestSessionRepository_DeleteAllForUser_MalformedID(t *testing.T) {
	repo, mock := newTestSessionRepo(t, time.Now())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_sessions WHERE user_id = $1")).
		WithArgs("not-a-uuid").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	n, err := repo.DeleteAllForUser(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_TrimForUser(t *testing.T) {
	repo, mock := newTestSessionRepo(t, time.Now())

	mock.ExpectExec(regexp.QuoteMeta("NOT IN (SELECT token_hash FROM refresh_sessions WHERE user_id = $2 ORDER BY created_at DESC, token_hash LIMIT 10)")).
		WithArgs("user-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.TrimForUser(context.Background(), "user-1", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_TrimForUser_Disabled(t *testing.T) {
	repo, mock := newTestSessionRepo(t, time.Now())

	n, err := repo.TrimForUser(context.Background(), "user-1", -1)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	now := time.Now()
	repo, mock := newTestSessionRepo(t, now)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_sessions WHERE expires_at <= $1")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}
