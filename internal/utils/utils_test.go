package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/apperr"
)

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperr.NotFound("trip not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Nil(t, body["data"])
	assert.Contains(t, body, "data")
	assert.Equal(t, "trip not found", body["message"])
	assert.Equal(t, "not_found", body["error"])
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestDecodeJSONRequest(t *testing.T) {
	decode := func(body string) error {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var s signup
		return DecodeJSONRequest(httptest.NewRecorder(), r, &s)
	}

	assert.NoError(t, decode(`{"email":"a@b.com","password":"secret1","extra":1}`))

	err := decode(`{"email":"nope","password":"123"}`)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "email must be a valid email; password must be at least 6", apperr.MessageOf(err))

	assert.Equal(t, "request body is required", apperr.MessageOf(decode("")))
	assert.Equal(t, "invalid JSON body", apperr.MessageOf(decode("{")))
	assert.Equal(t, "request body too large", apperr.MessageOf(decode(`{"email":"`+strings.Repeat("a", maxBodyBytes)+`"}`)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-12-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	_, err = ParseDate("2026-12-01T10:00:00+07:00")
	assert.NoError(t, err)

	_, err = ParseDate("01/12/2026")
	assert.Error(t, err)

	none, err := ParseOptionalDate(nil)
	assert.NoError(t, err)
	assert.Nil(t, none)
}
