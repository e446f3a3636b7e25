// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/metrics"
	"github.com/skillswap/skillswap-server/internal/service"
	"github.com/skillswap/skillswap-server/internal/utils"
)

// Capability tells the authorization gate which users a route group admits.
// It is declared where routes are mounted, never derived from the URL.
type Capability int

const (
	// CapabilityDefault admits authenticated users that are not banned.
	CapabilityDefault Capability = iota
	// CapabilityAllowBanned also admits banned users. Used by admin routes.
	CapabilityAllowBanned
)

func (c Capability) String() string {
	switch c {
	case CapabilityDefault:
		return "default"
	case CapabilityAllowBanned:
		return "allow_banned"
	default:
		return "unknown"
	}
}

// auth returns the authorization gate for routes with the given capability.
//
// The gate answers 401 when the bearer token is missing or invalid or its
// subject no longer exists, and 403 when the user is banned and the route
// does not allow banned users. Otherwise the loaded user is attached to the
// request context, see [utils.UserFromContext].
func (h *Handler) auth(capability Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
			if err != nil {
				h.gateDecision(metrics.DecisionNoToken)
				log.Debug().Err(err).Msg("request without bearer token")
				utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
				return
			}

			user, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
			switch {
			case err == nil:
			case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrMissingToken):
				h.gateDecision(metrics.DecisionInvalid)
				log.Debug().Err(err).Msg("access token rejected")
				utils.WriteMessage(w, msgInvalidToken, http.StatusUnauthorized)
				return
			case errors.Is(err, service.ErrUserNotFound):
				h.gateDecision(metrics.DecisionNoUser)
				utils.WriteMessage(w, msgUserNotFound, http.StatusUnauthorized)
				return
			default:
				h.gateDecision(metrics.DecisionInternal)
				log.Err(err).Msg("authentication failed")
				utils.WriteMessage(w, msgInternalError, http.StatusInternalServerError)
				return
			}

			if user.IsBanned && capability != CapabilityAllowBanned {
				h.gateDecision(metrics.DecisionBanned)
				log.Info().Str("user_id", user.ID).Str("capability", capability.String()).Msg("banned user refused")
				utils.WriteMessage(w, msgBanned, http.StatusForbidden)
				return
			}

			h.gateDecision(metrics.DecisionAllowed)
			next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
		})
	}
}

// requireAdmin must run after auth.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.UserFromContext(r.Context())
		if !ok || !user.IsAdmin() {
			utils.WriteMessage(w, msgAdminOnly, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) gateDecision(decision string) {
	if h.metrics != nil {
		h.metrics.GateDecisions.WithLabelValues(decision).Inc()
	}
}
