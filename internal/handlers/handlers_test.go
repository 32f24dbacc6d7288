package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Envelope {
	t.Helper()
	var env utils.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRespondError_HidesInternalDetail(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	respondError(rec, req, discardLogger, apperr.Internal("failed to access trip", errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "internal_error", env.Error)
	assert.Equal(t, "failed to access trip", env.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestRespondError_UnclassifiedError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	respondError(rec, req, discardLogger, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeEnvelope(t, rec).Message)
}

func TestRequireUser_MissingContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	_, ok := requireUser(rec, req)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPathParams(t *testing.T) {
	r := chi.NewRouter()
	var gotText string
	var gotErr error
	r.Get("/check/{destination}", func(w http.ResponseWriter, r *http.Request) {
		gotText = pathText(r, "destination")
		_, gotErr = pathUUID(r, "destination")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/check/Chiang%20Mai", nil))

	assert.Equal(t, "Chiang Mai", gotText)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(gotErr))
}

func TestQueryInt(t *testing.T) {
	assert.Equal(t, 3, queryInt("3", 1))
	assert.Equal(t, 1, queryInt("", 1))
	assert.Equal(t, 2, queryInt("-4", 2))
	assert.Equal(t, 2, queryInt("two", 2))
}

func TestExportFilename(t *testing.T) {
	name := exportFilename("3f2a9c1e-0000-4000-8000-000000000000")
	assert.Equal(t, "trip-3f2a9c1e.pdf", name)
	assert.True(t, strings.HasSuffix(name, ".pdf"))
}
