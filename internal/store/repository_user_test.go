// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userColumns)
	for _, u := range users {
		rows.AddRow(u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.IsBanned, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func testUser() models.User {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.User{
		ID:           "0190c2a4-0000-7000-8000-000000000001",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, "user", false).
		WillReturnRows(userRows(user))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, user, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), testUser())

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), testUser())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnRows(userRows(user))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, user.ID, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_GivesUpAfterThreeAttempts(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	for range 3 {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	_, err := repo.CreateUser(context.Background(), testUser())

	require.Error(t, err)
	assert.Equal(t, pgerrcode.ConnectionFailure, postgresError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs(user.Email).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByEmail(context.Background(), user.Email)

	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("ghost@example.com").
		WillReturnRows(userRows())

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()
	user.Role = models.RoleAdmin
	user.IsBanned = true

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(user.ID).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByID(context.Background(), user.ID)

	require.NoError(t, err)
	assert.True(t, found.IsAdmin())
	assert.True(t, found.IsBanned)
}

func TestFindUserByID_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindUserByID(context.Background(), "id")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// intentionally wrong shape → scan error
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id"))

	_, err := repo.FindUserByID(context.Background(), "id")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSetBanned(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()
	user.IsBanned = true

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET is_banned = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(true, user.ID).
		WillReturnRows(userRows(user))

	updated, err := repo.SetBanned(context.Background(), user.ID, true)

	require.NoError(t, err)
	assert.True(t, updated.IsBanned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetBanned_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET is_banned")).
		WillReturnRows(userRows())

	_, err := repo.SetBanned(context.Background(), "missing", false)

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_MalformedID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("not-a-uuid").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.FindUserByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetBanned_MalformedID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET is_banned")).
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.SetBanned(context.Background(), "42", true)

	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetRole(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()
	user.Role = models.RoleAdmin

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET role = $1, updated_at = NOW() WHERE email = $2")).
		WithArgs("admin", user.Email).
		WillReturnRows(userRows(user))

	updated, err := repo.SetRole(context.Background(), user.Email, models.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}
