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
	"google.golang.org/genai"

	"TRAVELPLANNER_BACK-END/internal/integrations"
)

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: nil},
		{Content: &genai.Content{Parts: []*genai.Part{{Text: "```json\n"}, {Text: "[]\n```"}}}},
		{Content: &genai.Content{Parts: []*genai.Part{{Text: "ignored"}}}},
	}}

	assert.Equal(t, "```json\n[]\n```", extractText(resp))
	assert.Equal(t, "", extractText(nil))
}

type geminiRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"systemInstruction"`
	GenerationConfig struct {
		Temperature *float64 `json:"temperature"`
	} `json:"generationConfig"`
}

func newTestGemini(t *testing.T, h http.HandlerFunc) *Gemini {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	g, err := NewGemini(context.Background(), GeminiConfig{APIKey: "gm-key", Model: "gemini-test", BaseURL: srv.URL, Temperature: 0.5})
	require.NoError(t, err)
	return g
}

func TestGeminiGenerate(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "gm-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.Len(t, req.Contents, 1) && assert.NotEmpty(t, req.Contents[0].Parts) {
			assert.Equal(t, "Plan Krabi", req.Contents[0].Parts[0].Text)
		}
		if assert.NotNil(t, req.SystemInstruction) && assert.NotEmpty(t, req.SystemInstruction.Parts) {
			assert.Equal(t, "You are a travel planner", req.SystemInstruction.Parts[0].Text)
		}
		if assert.NotNil(t, req.GenerationConfig.Temperature) {
			assert.InDelta(t, 0.5, *req.GenerationConfig.Temperature, 1e-6)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Day 1: "},{"text":"Railay beach"}]}}]}`))
	})

	out, err := g.Generate(context.Background(), "You are a travel planner", "Plan Krabi")
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Railay beach", out)
}

func TestGeminiGenerate_NoSystemInstruction(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Nil(t, req.SystemInstruction)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	})

	out, err := g.Generate(context.Background(), "", "hi")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestGeminiGenerate_Errors(t *testing.T) {
	failing := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	})
	_, err := failing.Generate(context.Background(), "", "hi")
	var ie *integrations.IntegrationError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "gemini", ie.Provider)

	empty := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})
	_, err = empty.Generate(context.Background(), "", "hi")
	assert.True(t, errors.Is(err, integrations.ErrEmptyResult))
}
