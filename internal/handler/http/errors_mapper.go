// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/service"
	"github.com/skillswap/skillswap-server/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorMap binds service sentinels to the response of one endpoint.
type errorMap map[error]errorResponse

var errorStatusMap = errorMap{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, msgInvalidData},
	service.ErrEmailTaken:          {http.StatusBadRequest, msgEmailTaken},
	service.ErrInvalidCredentials:  {http.StatusUnauthorized, msgBadCredentials},
	service.ErrUserNotFound:        {http.StatusNotFound, msgUserNotFound},
	service.ErrAdminOnly:           {http.StatusForbidden, msgAdminOnly},
}

// The refresh and logout endpoints answer the same sentinels differently.
var (
	refreshErrors = errorMap{
		service.ErrMissingToken: {http.StatusUnauthorized, msgNoRefreshToken},
		service.ErrInvalidToken: {http.StatusForbidden, msgRefreshExpired},
		service.ErrRevokedToken: {http.StatusForbidden, msgInvalidRefresh},
	}

	logoutErrors = errorMap{
		service.ErrMissingToken: {http.StatusBadRequest, msgRefreshMissing},
		service.ErrInvalidToken: {http.StatusForbidden, msgInvalidRefresh},
		service.ErrUserNotFound: {http.StatusNotFound, msgUserNotFound},
	}
)

func (m errorMap) lookup(err error) (errorResponse, bool) {
	for target, response := range m {
		if errors.Is(err, target) {
			return response, true
		}
	}
	return errorResponse{}, false
}

// resolveError picks the response for err from the endpoint maps in order,
// then from errorStatusMap. Unknown errors become 500.
func resolveError(err error, endpoint ...errorMap) errorResponse {
	for _, m := range append(endpoint, errorStatusMap) {
		if response, ok := m.lookup(err); ok {
			return response
		}
	}
	return errorResponse{http.StatusInternalServerError, msgInternalError}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, endpoint ...errorMap) {
	response := resolveError(err, endpoint...)

	log := logger.FromRequest(r)
	if response.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", response.status).Msg("request rejected")
	}

	utils.WriteMessage(w, response.message, response.status)
}
