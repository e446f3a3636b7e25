// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/skillswap/skillswap-server/migrations"
)

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("migration failed")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Msg("database schema is up to date")
	return nil
}
