// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/skillswap/skillswap-server/internal/service"
	"github.com/skillswap/skillswap-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAdmin = models.User{ID: "admin-1", Name: "Root", Role: models.RoleAdmin}

func TestBanUnban(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		banned      bool
		wantMessage string
	}{
		{name: "ban", path: "/api/admin/users/u-7/ban", banned: true, wantMessage: "User banned successfully"},
		{name: "unban", path: "/api/admin/users/u-7/unban", banned: false, wantMessage: "User unbanned successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.auth.EXPECT().Authenticate(gomock.Any(), "admin-token").Return(testAdmin, nil)
			deps.users.EXPECT().
				SetBanned(gomock.Any(), testAdmin, "u-7", tt.banned).
				Return(models.PublicUser{ID: "u-7", IsBanned: tt.banned}, nil)

			rr := doRequest(h.Init(), http.MethodPost, tt.path, "", "admin-token")

			require.Equal(t, http.StatusOK, rr.Code)
			var response models.ModerationResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
			assert.Equal(t, tt.wantMessage, response.Message)
			assert.Equal(t, "u-7", response.User.ID)
			assert.Equal(t, tt.banned, response.User.IsBanned)
		})
	}
}

func TestBan_Errors(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		h, deps := newTestHandler(t)
		deps.auth.EXPECT().Authenticate(gomock.Any(), "admin-token").Return(testAdmin, nil)
		deps.users.EXPECT().SetBanned(gomock.Any(), testAdmin, "missing", true).Return(models.PublicUser{}, service.ErrUserNotFound)

		rr := doRequest(h.Init(), http.MethodPost, "/api/admin/users/missing/ban", "", "admin-token")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, msgUserNotFound, decodeMessage(t, rr))
	})

	t.Run("regular user is refused before the service", func(t *testing.T) {
		h, deps := newTestHandler(t)
		deps.auth.EXPECT().Authenticate(gomock.Any(), "user-token").Return(models.User{ID: "u-1", Role: models.RoleUser}, nil)

		rr := doRequest(h.Init(), http.MethodPost, "/api/admin/users/u-7/ban", "", "user-token")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, msgAdminOnly, decodeMessage(t, rr))
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := doRequest(h.Init(), http.MethodPost, "/api/admin/users/u-7/ban", "", "")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRevokeSessions(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().Authenticate(gomock.Any(), "admin-token").Return(testAdmin, nil)
	deps.users.EXPECT().RevokeSessions(gomock.Any(), testAdmin, "u-7").Return(int64(3), nil)

	rr := doRequest(h.Init(), http.MethodDelete, "/api/admin/users/u-7/sessions", "", "admin-token")

	require.Equal(t, http.StatusOK, rr.Code)
	var response models.RevokeSessionsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, msgSessionsRevoked, response.Message)
	assert.Equal(t, int64(3), response.Revoked)
}
