package validation

import (
	"strings"

	"punchclock/internal/config"
	"punchclock/internal/errors"
)

// UserValidator validates registration and login input.
type UserValidator struct {
	validator *Validator
}

// NewUserValidator creates a user validator with default limits.
func NewUserValidator() *UserValidator {
	return &UserValidator{validator: NewValidator()}
}

// NewUserValidatorWithConfig creates a user validator with configured limits.
func NewUserValidatorWithConfig(cfg *config.Config) *UserValidator {
	return &UserValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateUsername checks that a username is present, within length
// limits and uses only allowed characters.
func (uv *UserValidator) ValidateUsername(username string) error {
	if !uv.validator.IsNonEmptyString(username) {
		return errors.NewValidationError("username is required", nil)
	}
	if !uv.validator.IsValidUsernameLength(username) {
		return errors.NewValidationError("username length is out of bounds", nil).
			WithContext("username", username)
	}
	if !uv.validator.IsValidUsernameCharset(strings.TrimSpace(username)) {
		return errors.NewValidationError("username contains invalid characters", nil).
			WithContext("username", username)
	}
	return nil
}

// GetValidUsername validates a username and returns its trimmed form.
func (uv *UserValidator) GetValidUsername(username string) (string, error) {
	if err := uv.ValidateUsername(username); err != nil {
		return "", err
	}
	return strings.TrimSpace(username), nil
}

// ValidateRole checks that a role is one of the known tags.
func (uv *UserValidator) ValidateRole(role string) error {
	if role != "worker" && role != "boss" {
		return errors.NewValidationError("role must be worker or boss", nil).
			WithContext("role", role)
	}
	return nil
}
