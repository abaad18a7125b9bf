package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamWrapsCause(t *testing.T) {
	cause := errors.New("gateway timeout")
	err := Upstream(cause)

	assert.True(t, IsUpstream(err))
	assert.False(t, IsValidation(err))
	assert.Contains(t, err.Error(), "gateway timeout")
}

func TestValidationFormatting(t *testing.T) {
	err := Validation("%s", "field email is required")

	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "field email is required")

	// Verbatim messages with percent signs must survive the %s passthrough.
	err = Validation("%s", "discount must be < 100%")
	assert.Contains(t, err.Error(), "discount must be < 100%")
}

func TestKindsAreDisjoint(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("order")))
	assert.True(t, IsForbidden(Forbidden()))
	assert.False(t, IsNotFound(Forbidden()))
	assert.False(t, IsUpstream(NotFound("order")))
}
