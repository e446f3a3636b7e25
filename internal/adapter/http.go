// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/utils"
	"github.com/skillswap/skillswap-server/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a client for the API served at address. A bare
// host:port is treated as an http URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetTokens(accessToken, refreshToken string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.accessToken = strings.TrimSpace(accessToken)
	h.refreshToken = strings.TrimSpace(refreshToken)
}

func (h *httpServerAdapter) Tokens() (string, string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.accessToken, h.refreshToken
}

func (h *httpServerAdapter) setAccessToken(accessToken string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.accessToken = accessToken
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.PublicUser, error) {
	var result models.AuthResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	h.SetTokens(result.AccessToken, "")
	return publicUser(result), nil
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.PublicUser, error) {
	var result models.AuthResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	h.SetTokens(result.AccessToken, result.RefreshToken)
	return publicUser(result), nil
}

func (h *httpServerAdapter) Refresh(ctx context.Context) error {
	_, refreshToken := h.Tokens()
	if refreshToken == "" {
		return ErrNoRefreshToken
	}

	var result models.AuthResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		SetResult(&result).
		Post("/api/auth/refresh")
	if err != nil {
		return fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.setAccessToken(result.AccessToken)
	return nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	_, refreshToken := h.Tokens()
	if refreshToken == "" {
		return ErrNoRefreshToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetTokens("", "")
	return nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.doAuthed(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&user).Get("/api/auth/me")
	})
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) SetBanned(ctx context.Context, userID string, banned bool) (models.PublicUser, error) {
	action := "unban"
	if banned {
		action = "ban"
	}

	var result models.ModerationResponse

	resp, err := h.doAuthed(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("id", userID).
			SetResult(&result).
			Post("/api/admin/users/{id}/" + action)
	})
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return result.User, nil
}

func (h *httpServerAdapter) RevokeSessions(ctx context.Context, userID string) (int64, error) {
	var result models.RevokeSessionsResponse

	resp, err := h.doAuthed(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("id", userID).
			SetResult(&result).
			Delete("/api/admin/users/{id}/sessions")
	})
	if err != nil {
		return 0, fmt.Errorf("revoke sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.Revoked, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// doAuthed sends an authenticated request. On 401 it refreshes the access
// token once and resends; if the refresh fails the original 401 is returned.
func (h *httpServerAdapter) doAuthed(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	resp, err := send(h.authedRequest(ctx))
	if err != nil || resp.StatusCode() != http.StatusUnauthorized {
		return resp, err
	}

	if _, refreshToken := h.Tokens(); refreshToken == "" {
		return resp, nil
	}

	if refreshErr := h.Refresh(ctx); refreshErr != nil {
		h.logger.Debug().Err(refreshErr).Msg("access token refresh failed")
		return resp, nil
	}

	return send(h.authedRequest(ctx))
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if accessToken, _ := h.Tokens(); accessToken != "" {
		req.SetAuthToken(accessToken)
	}
	return req
}

func publicUser(result models.AuthResult) models.PublicUser {
	if result.User == nil {
		return models.PublicUser{}
	}
	return *result.User
}
