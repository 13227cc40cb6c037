package cli

import "punchclock/internal/errors"

// errInvalidMonth reports a month flag outside the 1 to 12 range.
func errInvalidMonth(month int) error {
	return errors.NewInvalidInputError("month", month, "must be between 1 and 12")
}
