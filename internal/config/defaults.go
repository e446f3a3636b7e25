// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultTokenIssuer          = "skillswap"
	DefaultAccessTokenTTL       = 15 * time.Minute
	DefaultRefreshTokenTTL      = 7 * 24 * time.Hour
	DefaultBcryptCost           = 10
	DefaultMaxSessionsPerUser   = 10
	DefaultLogLevel             = "info"
	DefaultVersion              = "N/A"
	DefaultHTTPAddress          = "localhost:5000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultSessionSweepInterval = time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:        DefaultTokenIssuer,
			AccessTokenTTL:     DefaultAccessTokenTTL,
			RefreshTokenTTL:    DefaultRefreshTokenTTL,
			BcryptCost:         DefaultBcryptCost,
			MaxSessionsPerUser: DefaultMaxSessionsPerUser,
			LogLevel:           DefaultLogLevel,
			Version:            DefaultVersion,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			SessionSweepInterval: DefaultSessionSweepInterval,
		},
	}
}
