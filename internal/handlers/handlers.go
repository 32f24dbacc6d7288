// Package handlers maps HTTP requests onto services and wraps results in the response envelope.
package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/middleware"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

// respondError logs server-side failures and writes the failure envelope.
func respondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	kind := apperr.KindOf(err)
	if apperr.HTTPStatus(kind) >= http.StatusInternalServerError {
		logger.Error("request failed",
			"request_id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
	}
	utils.WriteError(w, err)
}

// requireUser reads the authenticated user id, writing 401 when it is missing.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, string(apperr.KindUnauthorized), "Invalid user context")
		return uuid.Nil, false
	}
	return id, true
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apperr.Validation(name + " must be a valid UUID")
	}
	return id, nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperr.Validation(field + " must be a valid UUID")
	}
	return id, nil
}

// pathText returns a decoded, trimmed path parameter, or "" when it is malformed.
func pathText(r *http.Request, name string) string {
	v, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}
