package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindAuth, KindOf(Auth("denied")))
	assert.Equal(t, KindRateLimit, KindOf(RateLimit("slow down")))
	assert.Equal(t, KindInternal, KindOf(errors.New("anything else")))
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NotFound("inner"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("request failed", cause)

	assert.Equal(t, "request failed", err.Error())
	assert.ErrorIs(t, err, cause)
}
