// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillswap/skillswap-server/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A request whose method is not registered for the exactly matching route
// pattern gets a JSON 404 instead of chi's 405, so unsupported methods do
// not reveal that a route exists. Registered methods go through the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteMessage(w, msgNotFound, http.StatusNotFound)
	}
}

// notFound answers unknown paths with the same JSON body.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, msgNotFound, http.StatusNotFound)
}
