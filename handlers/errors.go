// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/roompoll/middleware"
	"github.com/danielhkuo/roompoll/models"
)

// StatusFor maps an error kind to the HTTP status it is reported with
func StatusFor(err error) int {
	switch models.Kind(err) {
	case "ok":
		return http.StatusOK
	case "validation", "invalid_choice":
		return http.StatusBadRequest
	case "not_found":
		return http.StatusNotFound
	case "forbidden":
		return http.StatusForbidden
	case "closed", "already_closed":
		return http.StatusConflict
	case "storage":
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeError reports err to the client. Internal failures are logged and
// their details kept out of the response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	switch status {
	case http.StatusInternalServerError:
		slog.Error("request failed", "path", r.URL.Path, "kind", models.Kind(err), "error", err)
		middleware.ErrorResponse(w, status, "Internal error")
	case http.StatusServiceUnavailable:
		middleware.ErrorResponse(w, status, "Storage unavailable, try again")
	default:
		middleware.ErrorResponse(w, status, err.Error())
	}
}

// requireRequester writes 401 and returns "" when X-User-ID is missing
func requireRequester(w http.ResponseWriter, r *http.Request) string {
	requester := middleware.RequesterID(r)
	if requester == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-User-ID header is required")
	}
	return requester
}
