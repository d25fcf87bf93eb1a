package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsClockTime validates a 24-hour "HH:MM" clock time.
func IsClockTime(fl validator.FieldLevel) bool {
	return clockTimeRegex.MatchString(fl.Field().String())
}
