// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes the two families of signed tokens issued by the
// service. Each kind is signed with its own secret.
type TokenKind string

const (
	// AccessToken is the short-lived, stateless credential presented on every
	// protected request.
	AccessToken TokenKind = "access"

	// RefreshToken is the long-lived credential used only to mint new access
	// tokens. It is honored only while its session exists.
	RefreshToken TokenKind = "refresh"
)

// TokenClaims is the JWT claim set carried by SkillSwap tokens.
//
// The subject ("sub") holds the user ID. IsAdmin is only set on access
// tokens; refresh tokens carry identity alone.
type TokenClaims struct {
	jwt.RegisteredClaims

	// IsAdmin is the role claim of access tokens.
	IsAdmin bool `json:"isAdmin,omitempty"`
}

// Token wraps a signed JWT together with the values decoded from it.
type Token struct {
	// Kind tells which secret the token is signed with.
	Kind TokenKind `json:"-"`

	// Claims is the decoded claim set.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID string `json:"-"`

	// IsAdmin is the role claim (access tokens only).
	IsAdmin bool `json:"-"`

	// ExpiresAt is the decoded "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
