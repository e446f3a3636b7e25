// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command makeadmin grants the admin role to an existing account.
//
// Usage:
//
//	makeadmin [-d <dsn>] <email>
//
// The DSN defaults to STORAGE_DB_DATABASE_URI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/skillswap/skillswap-server/internal/config"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/service"
	"github.com/skillswap/skillswap-server/internal/store"
)

const commandTimeout = 30 * time.Second

func main() {
	log := logger.NewLogger("makeadmin", logger.WithLevel("info"))

	var dbCfg config.DB
	if err := env.ParseWithOptions(&dbCfg, env.Options{Prefix: "STORAGE_DB_"}); err != nil {
		log.Fatal().Err(err).Msg("error reading environment")
	}

	fs := flag.NewFlagSet("makeadmin", flag.ExitOnError)
	fs.StringVar(&dbCfg.DSN, "d", dbCfg.DSN, "PostgreSQL DSN")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: makeadmin [-d <dsn>] <email>")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if fs.NArg() != 1 || dbCfg.DSN == "" {
		fs.Usage()
		os.Exit(2)
	}
	email := fs.Arg(0)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, dbCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	users := service.NewUserService(store.NewUserRepository(db, log), store.NewSessionRepository(db, log), log)

	user, err := users.PromoteToAdmin(ctx, email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("promotion failed")
		db.Close()
		os.Exit(1)
	}

	fmt.Printf("%s (%s) is now an admin\n", user.Email, user.ID)
}
