package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/integrations"
)

func TestHuggingFaceGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mistral", r.URL.Path)
		assert.Equal(t, "Bearer hf-key", r.Header.Get("Authorization"))

		var req hfRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Inputs, "You are a travel planner")
		assert.Contains(t, req.Inputs, "Plan Krabi")
		assert.False(t, req.Parameters.ReturnFullText)

		w.Write([]byte(`[{"generated_text":"  Day 1: Railay beach  "}]`))
	}))
	defer srv.Close()

	h := NewHuggingFace(HuggingFaceConfig{APIKey: "hf-key", Model: "mistral", BaseURL: srv.URL})
	out, err := h.Generate(context.Background(), "You are a travel planner", "Plan Krabi")
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Railay beach", out)
}

func TestHuggingFaceGenerate_ModelLoading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Model is currently loading"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	h := NewHuggingFace(HuggingFaceConfig{APIKey: "hf-key", Model: "m", BaseURL: srv.URL})
	_, err := h.Generate(context.Background(), "", "hi")

	var ie *integrations.IntegrationError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, http.StatusServiceUnavailable, ie.StatusCode)
}

func TestHuggingFaceGenerate_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	h := NewHuggingFace(HuggingFaceConfig{APIKey: "hf-key", Model: "m", BaseURL: srv.URL})
	_, err := h.Generate(context.Background(), "", "hi")
	assert.ErrorIs(t, err, integrations.ErrEmptyResult)
}

func TestHuggingFaceGenerate_NoKey(t *testing.T) {
	_, err := NewHuggingFace(HuggingFaceConfig{BaseURL: "http://unused"}).Generate(context.Background(), "", "hi")
	assert.ErrorIs(t, err, errNoAPIKey)
}

func TestInstructPrompt(t *testing.T) {
	assert.Equal(t, "<s>[INST] hi [/INST]", instructPrompt("", "hi"))
}
