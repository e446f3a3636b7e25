// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/skillswap/skillswap-server/internal/config"
	"github.com/skillswap/skillswap-server/internal/logger"
)

// Storages bundles the repositories of the credential store together with
// the connections they own.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations and picks the
// refresh-session backend: Redis when an address is configured, the
// "refresh_sessions" table otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	storages := &Storages{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		db:                db,
	}

	if cfg.Redis.Enabled() {
		client, err := NewConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		storages.redis = client
		storages.SessionRepository = NewRedisSessionRepository(client, log)
	}

	return storages, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}
