package validators_test

import (
	"testing"

	"frontdesk/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsClockTime(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("clocktime", validators.IsClockTime))

	type probe struct {
		Time string `validate:"clocktime"`
	}

	valid := []string{"00:00", "09:00", "16:00", "23:59"}
	for _, v := range valid {
		assert.NoError(t, validate.Struct(&probe{Time: v}), v)
	}

	invalid := []string{"24:00", "9:00", "09:60", "9am", "morning", "09:00:00", ""}
	for _, v := range invalid {
		assert.Error(t, validate.Struct(&probe{Time: v}), v)
	}
}
