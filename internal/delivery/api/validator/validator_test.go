package validator

import (
	"testing"

	domainerrors "scrobbler/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type activateRequest struct {
	UserCode string   `validate:"required"`
	Progress *float64 `validate:"omitempty,gte=0,lte=100"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	tooFar := 120.0
	ok := 50.0

	assert.NoError(t, v.Validate(&activateRequest{UserCode: "ABCD2345"}))
	assert.NoError(t, v.Validate(&activateRequest{UserCode: "ABCD2345", Progress: &ok}))

	err := v.Validate(&activateRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "UserCode required")

	err = v.Validate(&activateRequest{UserCode: "ABCD2345", Progress: &tooFar})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Progress lte")
}
