// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/utils"
	"github.com/skillswap/skillswap-server/models"
)

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched so that missing fields are reported by the service layer.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Register(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if result.User != nil {
		log.Debug().Str("user_id", result.User.ID).Msg("user logged in")
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var request models.RefreshRequest
	if err := decodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Refresh(r.Context(), request.RefreshToken)
	if err != nil {
		writeError(w, r, err, refreshErrors)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	var request models.RefreshRequest
	if err := decodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), request.RefreshToken); err != nil {
		writeError(w, r, err, logoutErrors)
		return
	}

	utils.WriteMessage(w, msgLoggedOut, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
