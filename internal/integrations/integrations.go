// Package integrations holds the outbound HTTP adapters. Each adapter only
// fetches and normalizes; fallback policy belongs to the caller.
package integrations

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyResult marks a provider response that parsed but held nothing usable.
var ErrEmptyResult = errors.New("provider returned no results")

// IntegrationError is the typed failure of a fetch-and-normalize call.
type IntegrationError struct {
	Provider   string
	Op         string
	StatusCode int
	Err        error
}

func (e *IntegrationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Provider, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *IntegrationError) Unwrap() error { return e.Err }

func NewError(provider, op string, err error) *IntegrationError {
	return &IntegrationError{Provider: provider, Op: op, Err: err}
}

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// DoJSON sends req and decodes a 2xx JSON body into out.
func DoJSON(client *http.Client, req *http.Request, provider, op string, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return NewError(provider, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &IntegrationError{
			Provider:   provider,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewError(provider, op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
