// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillswap/skillswap-server/internal/utils"
	"github.com/skillswap/skillswap-server/models"
)

const userIDParam = "id"

func (h *Handler) banUser(w http.ResponseWriter, r *http.Request) {
	h.setBanned(w, r, true)
}

func (h *Handler) unbanUser(w http.ResponseWriter, r *http.Request) {
	h.setBanned(w, r, false)
}

func (h *Handler) setBanned(w http.ResponseWriter, r *http.Request, banned bool) {
	actor, _ := utils.UserFromContext(r.Context())

	user, err := h.services.UserService.SetBanned(r.Context(), actor, chi.URLParam(r, userIDParam), banned)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := msgUserUnbanned
	if banned {
		message = msgUserBanned
	}

	utils.WriteJSON(w, models.ModerationResponse{Message: message, User: user}, http.StatusOK)
}

func (h *Handler) revokeSessions(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.UserFromContext(r.Context())

	revoked, err := h.services.UserService.RevokeSessions(r.Context(), actor, chi.URLParam(r, userIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RevokeSessionsResponse{Message: msgSessionsRevoked, Revoked: revoked}, http.StatusOK)
}
