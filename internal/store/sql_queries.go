// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/skillswap/skillswap-server/models"
)

var (
	usersTable    = models.User{}.TableName()
	sessionsTable = models.RefreshSession{}.TableName()
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the column order every user query selects and scans.
var userColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"role",
	"is_banned",
	"created_at",
	"updated_at",
}

func returningUser() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

func createUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns("id", "name", "email", "password_hash", "role", "is_banned").
		Values(user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role), user.IsBanned).
		Suffix(returningUser()).
		ToSql()
}

func findUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func updateUserQuery(where sq.Eq, column string, value any) (string, []any, error) {
	return psql.Update(usersTable).
		Set(column, value).
		Set("updated_at", sq.Expr("NOW()")).
		Where(where).
		Suffix(returningUser()).
		ToSql()
}

func saveSessionQuery(session models.RefreshSession) (string, []any, error) {
	return psql.Insert(sessionsTable).
		Columns("token_hash", "user_id", "expires_at", "created_at").
		Values(session.TokenHash, session.UserID, session.ExpiresAt, session.CreatedAt).
		Suffix("ON CONFLICT (token_hash) DO NOTHING").
		ToSql()
}

func sessionExistsQuery(userID, tokenHash string, now time.Time) (string, []any, error) {
	return psql.Select("1").
		From(sessionsTable).
		Where(sq.Eq{"token_hash": tokenHash, "user_id": userID}).
		Where(sq.Gt{"expires_at": now}).
		Limit(1).
		ToSql()
}

func deleteSessionQuery(userID, tokenHash string) (string, []any, error) {
	return psql.Delete(sessionsTable).
		Where(sq.Eq{"token_hash": tokenHash, "user_id": userID}).
		ToSql()
}

func deleteUserSessionsQuery(userID string) (string, []any, error) {
	return psql.Delete(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// trimSessionsQuery deletes every session of userID except the keep newest.
func trimSessionsQuery(userID string, keep int) (string, []any, error) {
	newest := sq.Select("token_hash").
		From(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "token_hash").
		Limit(uint64(keep))

	return psql.Delete(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Expr("token_hash NOT IN (?)", newest)).
		ToSql()
}

func deleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return psql.Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}
