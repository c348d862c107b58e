// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-nutri-track/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with a method it does not serve gets 404 instead
// of chi's 405, so unsupported methods look like unknown routes.
//
// Only static patterns are matched here; a parameterised path such as
// /api/entries/{id} never matches and always ends up as 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteError(w, http.StatusText(http.StatusNotFound), nil, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
