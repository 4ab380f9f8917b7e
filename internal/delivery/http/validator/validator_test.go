package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `validate:"required"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Email: "a@example.com"}))
	assert.Error(t, v.Validate(&sample{}))
}
