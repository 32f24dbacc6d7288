package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"TRAVELPLANNER_BACK-END/internal/integrations"
)

type GeminiConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
}

// Gemini generates text with the Gemini API.
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: cfg.Model, temperature: cfg.Temperature}, nil
}

func (g *Gemini) Generate(ctx context.Context, system, prompt string) (string, error) {
	conf := &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](g.temperature)}
	if system != "" {
		conf.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), conf)
	if err != nil {
		return "", integrations.NewError("gemini", "generate", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", integrations.NewError("gemini", "generate", integrations.ErrEmptyResult)
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		// first candidate with content wins
		if sb.Len() > 0 {
			break
		}
	}
	return sb.String()
}
