package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("create intent: %w", BadRequest("booking is not pending", nil))

	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Equal(t, "booking is not pending", MessageOf(err))
}

func TestKindOf_PlainError(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "internal server error", MessageOf(err))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindUnauthorized: http.StatusUnauthorized,
		KindNotFound:     http.StatusNotFound,
		KindBadRequest:   http.StatusBadRequest,
		KindConflict:     http.StatusConflict,
		KindIntegration:  http.StatusBadGateway,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), kind)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("gateway down")
	err := Integration("ai generation failed", cause)

	assert.ErrorIs(t, err, cause)
}
