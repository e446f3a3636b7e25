// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/skillswap/skillswap-server/internal/config"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/metrics"
	"github.com/skillswap/skillswap-server/internal/store"
	"github.com/skillswap/skillswap-server/internal/token"
	"github.com/skillswap/skillswap-server/internal/utils"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	codec, err := token.NewCodec(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token codec: %w", err)
	}

	authService, err := NewAuthService(
		storages.UserRepository,
		storages.SessionRepository,
		codec,
		utils.NewUUIDGenerator(),
		cfg.App,
		m,
		logger,
	)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		UserService:    NewUserService(storages.UserRepository, storages.SessionRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
