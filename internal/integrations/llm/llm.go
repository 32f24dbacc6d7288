// Package llm provides text-generation backends behind one interface.
package llm

import (
	"context"
	"fmt"

	"TRAVELPLANNER_BACK-END/internal/config"
)

// Generator produces text for a prompt. system may be empty.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// New builds the generator selected by cfg.Provider.
func New(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGemini(ctx, GeminiConfig{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.GeminiModel,
			BaseURL:     cfg.GeminiBaseURL,
			Temperature: float32(cfg.Temperature),
		})
	case "huggingface":
		return NewHuggingFace(HuggingFaceConfig{
			APIKey:      cfg.HuggingFaceAPIKey,
			Model:       cfg.HuggingFaceModel,
			BaseURL:     cfg.HuggingFaceURL,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}
