package validation

import (
	"punchclock/internal/config"
	"punchclock/internal/errors"
)

// NoteValidator validates the optional free-text notes attached to
// clock-in and clock-out events.
type NoteValidator struct {
	validator *Validator
}

// NewNoteValidator creates a note validator with default limits.
func NewNoteValidator() *NoteValidator {
	return &NoteValidator{validator: NewValidator()}
}

// NewNoteValidatorWithConfig creates a note validator with configured limits.
func NewNoteValidatorWithConfig(cfg *config.Config) *NoteValidator {
	return &NoteValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateNote checks the note length. Empty notes are fine; the note is
// optional by design.
func (nv *NoteValidator) ValidateNote(note string) error {
	if !nv.validator.IsValidNoteLength(note) {
		return errors.NewValidationError("note is too long", nil)
	}
	return nil
}
