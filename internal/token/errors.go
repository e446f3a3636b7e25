// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import "errors"

var (
	// ErrInvalidToken is returned for every token that fails verification:
	// bad signature, foreign signing method, wrong issuer, malformed
	// payload, missing subject or expiry.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is reported alongside ErrInvalidToken when the only
	// problem is the "exp" claim.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidParams is returned by NewCodec for empty secrets, equal
	// secrets or non-positive lifetimes.
	ErrInvalidParams = errors.New("invalid token codec params")
)
