// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/skillswap/skillswap-server/internal/config"
	"github.com/skillswap/skillswap-server/internal/utils"
	"github.com/skillswap/skillswap-server/models"
)

// Codec creates and verifies access and refresh tokens.
// It is safe for concurrent use; all state is read-only after construction.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	refreshKey    string
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration

	now   func() time.Time
	newID func() string
}

// Option customizes a [Codec].
type Option func(*Codec)

// WithClock replaces time.Now for both issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

// WithIDGenerator replaces the generator of refresh token "jti" values.
func WithIDGenerator(newID func() string) Option {
	return func(c *Codec) {
		c.newID = newID
	}
}

// NewCodec builds a codec from the application token settings.
func NewCodec(cfg config.App, opts ...Option) (*Codec, error) {
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" ||
		cfg.AccessTokenSecret == cfg.RefreshTokenSecret ||
		cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, ErrInvalidParams
	}

	c := &Codec{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		refreshKey:    cfg.RefreshTokenSecret,
		issuer:        cfg.TokenIssuer,
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		now:           time.Now,
		newID:         utils.NewUUIDGenerator().Generate,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// IssueAccessToken signs an access token for userID with the role claim.
func (c *Codec) IssueAccessToken(userID string, isAdmin bool) (models.Token, error) {
	if userID == "" {
		return models.Token{}, errors.New("empty user id for access token")
	}

	claims := c.newClaims(userID, c.accessTTL)
	claims.IsAdmin = isAdmin

	return c.sign(models.AccessToken, claims, c.accessSecret)
}

// IssueRefreshToken signs a refresh token for userID. Every call yields a
// distinct token, even within the same second, thanks to a random "jti".
func (c *Codec) IssueRefreshToken(userID string) (models.Token, error) {
	if userID == "" {
		return models.Token{}, errors.New("empty user id for refresh token")
	}

	claims := c.newClaims(userID, c.refreshTTL)
	claims.ID = c.newID()

	return c.sign(models.RefreshToken, claims, c.refreshSecret)
}

// VerifyAccessToken checks signature, issuer and expiry of an access token.
func (c *Codec) VerifyAccessToken(tokenString string) (models.Token, error) {
	return c.verify(models.AccessToken, tokenString, c.accessSecret)
}

// VerifyRefreshToken checks signature, issuer and expiry of a refresh token.
func (c *Codec) VerifyRefreshToken(tokenString string) (models.Token, error) {
	return c.verify(models.RefreshToken, tokenString, c.refreshSecret)
}

// HashRefreshToken returns the hex HMAC-SHA256 of a refresh token keyed by
// the refresh secret. Only this digest is ever persisted.
func (c *Codec) HashRefreshToken(tokenString string) string {
	return utils.HashString(tokenString, c.refreshKey)
}

func (c *Codec) newClaims(userID string, ttl time.Duration) *models.TokenClaims {
	now := c.now()
	return &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func (c *Codec) sign(kind models.TokenKind, claims *models.TokenClaims, secret []byte) (models.Token, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing %s token: %w", kind, err)
	}

	return models.Token{
		Kind:         kind,
		Claims:       *claims,
		SignedString: signed,
		UserID:       claims.Subject,
		IsAdmin:      claims.IsAdmin,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

func (c *Codec) verify(kind models.TokenKind, tokenString string, secret []byte) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrInvalidToken
	}

	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, errors.Join(ErrInvalidToken, ErrTokenExpired)
		}
		return models.Token{}, fmt.Errorf("%w: %s token: %v", ErrInvalidToken, kind, err)
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return models.Token{
		Kind:         kind,
		Claims:       *claims,
		SignedString: tokenString,
		UserID:       claims.Subject,
		IsAdmin:      claims.IsAdmin,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}
