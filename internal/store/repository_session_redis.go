// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/models"
)

const (
	refreshKeyPrefix      = "refresh:"
	userSessionsKeyPrefix = "user_sessions:"
	userExpiryKeyPrefix   = "user_session_expiry:"
	scanBatchSize         = 100
)

// redisSessionRepository keeps refresh sessions in Redis:
//
//	refresh:{hash}               -> userID, TTL = remaining session lifetime
//	user_sessions:{userID}       -> sorted set of hashes scored by creation (unix µs)
//	user_session_expiry:{userID} -> sorted set of hashes scored by expiry (unix ms)
//
// The creation index drives trimming and revoke-all. Expiry has whole-second
// resolution (JWT "exp"), so it cannot order logins made within one second;
// it only serves DeleteExpired, which prunes both indexes.
type redisSessionRepository struct {
	client *redis.Client
	logger *logger.Logger
	now    func() time.Time
}

// NewRedisSessionRepository constructs the Redis [SessionRepository].
func NewRedisSessionRepository(client *redis.Client, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating redis session repository")
	return &redisSessionRepository{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

func refreshKey(tokenHash string) string {
	return refreshKeyPrefix + tokenHash
}

func userSessionsKey(userID string) string {
	return userSessionsKeyPrefix + userID
}

func userExpiryKey(userID string) string {
	return userExpiryKeyPrefix + userID
}

func (r *redisSessionRepository) Save(ctx context.Context, session models.RefreshSession) error {
	now := r.now()
	ttl := session.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return nil
	}

	createdAt := session.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, refreshKey(session.TokenHash), session.UserID, ttl)
		pipe.ZAddNX(ctx, userSessionsKey(session.UserID), redis.Z{
			Score:  float64(createdAt.UnixMicro()),
			Member: session.TokenHash,
		})
		pipe.ZAddNX(ctx, userExpiryKey(session.UserID), redis.Z{
			Score:  float64(session.ExpiresAt.UnixMilli()),
			Member: session.TokenHash,
		})
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionRepository.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return nil
}

func (r *redisSessionRepository) Exists(ctx context.Context, userID, tokenHash string) (bool, error) {
	owner, err := r.client.Get(ctx, refreshKey(tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionRepository.Exists").Msg("error looking up session")
		return false, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return owner == userID, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, userID, tokenHash string) error {
	log := logger.FromContext(ctx)

	owner, err := r.client.Get(ctx, refreshKey(tokenHash)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Err(err).Str("func", "*redisSessionRepository.Delete").Msg("error looking up session")
		return fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if owner == userID {
			pipe.Del(ctx, refreshKey(tokenHash))
		}
		pipe.ZRem(ctx, userSessionsKey(userID), tokenHash)
		pipe.ZRem(ctx, userExpiryKey(userID), tokenHash)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*redisSessionRepository.Delete").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return nil
}

func (r *redisSessionRepository) DeleteAllForUser(ctx context.Context, userID string) (int64, error) {
	hashes, err := r.client.ZRange(ctx, userSessionsKey(userID), 0, -1).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return r.remove(ctx, "*redisSessionRepository.DeleteAllForUser", userID, hashes)
}

func (r *redisSessionRepository) TrimForUser(ctx context.Context, userID string, keep int) (int64, error) {
	if keep < 0 {
		return 0, nil
	}

	// ascending by creation: everything but the keep newest
	hashes, err := r.client.ZRange(ctx, userSessionsKey(userID), 0, -int64(keep)-1).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return r.remove(ctx, "*redisSessionRepository.TrimForUser", userID, hashes)
}

// DeleteExpired prunes index entries whose expiry is at or before now. The
// session keys themselves are expired by Redis.
func (r *redisSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	maxScore := strconv.FormatInt(now.UnixMilli(), 10)
	var removed int64

	iter := r.client.Scan(ctx, 0, userExpiryKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		hashes, err := r.client.ZRangeByScore(ctx, iter.Val(), &redis.ZRangeBy{Min: "-inf", Max: maxScore}).Result()
		if err != nil {
			return removed, fmt.Errorf("%w: %w", ErrRedisCommand, err)
		}

		userID := strings.TrimPrefix(iter.Val(), userExpiryKeyPrefix)
		n, err := r.remove(ctx, "*redisSessionRepository.DeleteExpired", userID, hashes)
		if err != nil {
			return removed, err
		}
		removed += n
	}
	if err := iter.Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionRepository.DeleteExpired").Msg("error scanning session index")
		return removed, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return removed, nil
}

// remove deletes the given sessions of userID and reports how many index
// entries were dropped.
func (r *redisSessionRepository) remove(ctx context.Context, funcName, userID string, hashes []string) (int64, error) {
	if len(hashes) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(hashes))
	members := make([]any, 0, len(hashes))
	for _, h := range hashes {
		keys = append(keys, refreshKey(h))
		members = append(members, h)
	}

	var zrem *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		zrem = pipe.ZRem(ctx, userSessionsKey(userID), members...)
		pipe.ZRem(ctx, userExpiryKey(userID), members...)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error removing sessions")
		return 0, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return zrem.Val(), nil
}
