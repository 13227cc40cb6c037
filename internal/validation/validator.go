package validation

import (
	"regexp"
	"strings"

	"punchclock/internal/config"
)

// Defaults used when no configuration is supplied.
const (
	DefaultUsernameMinLength = 1
	DefaultUsernameMaxLength = 64
	DefaultNoteMaxLength     = 500
)

// usernameChars allows letters, digits and a few separators. Control
// characters and whitespace inside the name are rejected.
var usernameChars = regexp.MustCompile(`^[\p{L}\p{N}._-]+$`)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance with default limits
func NewValidator() *Validator {
	return &Validator{config: nil}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidUsernameLength checks if a username length is within configured limits
func (v *Validator) IsValidUsernameLength(username string) bool {
	length := len(strings.TrimSpace(username))
	return length >= v.usernameMinLength() && length <= v.usernameMaxLength()
}

// IsValidUsernameCharset checks if a username contains only allowed characters
func (v *Validator) IsValidUsernameCharset(username string) bool {
	return usernameChars.MatchString(username)
}

// IsValidNoteLength checks if a note is within the configured maximum
func (v *Validator) IsValidNoteLength(note string) bool {
	return len(note) <= v.noteMaxLength()
}

func (v *Validator) usernameMinLength() int {
	if v.config != nil {
		return v.config.Validation.UsernameMinLength
	}
	return DefaultUsernameMinLength
}

func (v *Validator) usernameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.UsernameMaxLength
	}
	return DefaultUsernameMaxLength
}

func (v *Validator) noteMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NoteMaxLength
	}
	return DefaultNoteMaxLength
}
