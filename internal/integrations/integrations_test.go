package integrations

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Bangkok"}`))
	}))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	var out struct{ Name string }
	require.NoError(t, DoJSON(srv.Client(), req, "weather", "current", &out))
	assert.Equal(t, "Bangkok", out.Name)
}

func TestDoJSON_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	err := DoJSON(srv.Client(), req, "hotels", "search", &struct{}{})

	var ie *IntegrationError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, http.StatusTooManyRequests, ie.StatusCode)
	assert.Equal(t, "hotels", ie.Provider)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestDoJSON_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	err := DoJSON(srv.Client(), req, "flights", "search", &struct{}{})

	var ie *IntegrationError
	require.True(t, errors.As(err, &ie))
	assert.Zero(t, ie.StatusCode)
}
