// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Response messages. They are part of the public contract of the API.
const (
	msgNoToken          = "No token provided"
	msgInvalidToken     = "Invalid token"
	msgUserNotFound     = "User not found"
	msgBanned           = "Your account has been banned. Please contact support."
	msgAdminOnly        = "Admin only"
	msgInvalidJSON      = "Invalid JSON was passed"
	msgInvalidData      = "Invalid data provided"
	msgEmailTaken       = "Email already in use"
	msgBadCredentials   = "Invalid credentials"
	msgNoRefreshToken   = "No refresh token provided"
	msgRefreshExpired   = "Refresh token expired or invalid"
	msgInvalidRefresh   = "Invalid refresh token"
	msgRefreshMissing   = "Refresh token missing"
	msgLoggedOut        = "Logged out successfully"
	msgUserBanned       = "User banned successfully"
	msgUserUnbanned     = "User unbanned successfully"
	msgSessionsRevoked  = "Sessions revoked"
	msgNotFound         = "Not Found"
	msgInternalError    = "Internal Server Error"
	msgServiceIsRunning = "SkillSwap API is running..."
)
