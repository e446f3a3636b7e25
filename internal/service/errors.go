// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmailTaken          = errors.New("email already in use")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrMissingToken = errors.New("token is missing")
	ErrInvalidToken = errors.New("token is expired or invalid")
	ErrRevokedToken = errors.New("refresh token is not an active session")

	ErrUserNotFound = errors.New("user not found")
	ErrAdminOnly    = errors.New("admin only")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
