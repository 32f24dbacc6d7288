package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"TRAVELPLANNER_BACK-END/internal/integrations"
)

var errNoAPIKey = errors.New("huggingface api key not configured")

type HuggingFaceConfig struct {
	APIKey       string
	Model        string
	BaseURL      string
	Temperature  float64
	MaxNewTokens int
	Timeout      time.Duration
}

// HuggingFace generates text with the HuggingFace Inference API.
type HuggingFace struct {
	cfg  HuggingFaceConfig
	http *http.Client
}

func NewHuggingFace(cfg HuggingFaceConfig) *HuggingFace {
	if cfg.MaxNewTokens == 0 {
		cfg.MaxNewTokens = 1024
	}
	return &HuggingFace{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfResponse []struct {
	GeneratedText string `json:"generated_text"`
}

func (h *HuggingFace) Generate(ctx context.Context, system, prompt string) (string, error) {
	if h.cfg.APIKey == "" {
		return "", integrations.NewError("huggingface", "generate", errNoAPIKey)
	}

	body, err := json.Marshal(hfRequest{
		Inputs: instructPrompt(system, prompt),
		Parameters: hfParameters{
			MaxNewTokens:   h.cfg.MaxNewTokens,
			Temperature:    h.cfg.Temperature,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s", strings.TrimRight(h.cfg.BaseURL, "/"), h.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", integrations.NewError("huggingface", "generate", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	var out hfResponse
	if err := integrations.DoJSON(h.http, req, "huggingface", "generate", &out); err != nil {
		return "", err
	}
	if len(out) == 0 || strings.TrimSpace(out[0].GeneratedText) == "" {
		return "", integrations.NewError("huggingface", "generate", integrations.ErrEmptyResult)
	}
	return strings.TrimSpace(out[0].GeneratedText), nil
}

// instructPrompt wraps the prompt in the Mistral instruct template.
func instructPrompt(system, prompt string) string {
	if system == "" {
		return "<s>[INST] " + prompt + " [/INST]"
	}
	return "<s>[INST] " + system + "\n\n" + prompt + " [/INST]"
}
