package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"punchclock/internal/config"
	"punchclock/internal/errors"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonEmptyString("alice"))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString("   "))
	assert.False(t, v.IsNonEmptyString("\t\n"))
}

func TestValidator_IsValidUsernameCharset(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		username string
		expected bool
	}{
		{
			name:     "plain lowercase",
			username: "alice",
			expected: true,
		},
		{
			name:     "mixed case with separators",
			username: "Ana_Garcia.2",
			expected: true,
		},
		{
			name:     "accented letters allowed",
			username: "maría",
			expected: true,
		},
		{
			name:     "inner whitespace rejected",
			username: "ana garcia",
			expected: false,
		},
		{
			name:     "control characters rejected",
			username: "ana\nb",
			expected: false,
		},
		{
			name:     "punctuation rejected",
			username: "ana!",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.IsValidUsernameCharset(tt.username))
		})
	}
}

func TestValidator_ConfiguredLimits(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.UsernameMinLength = 3
	cfg.Validation.UsernameMaxLength = 5
	cfg.Validation.NoteMaxLength = 10

	v := NewValidatorWithConfig(cfg)

	assert.False(t, v.IsValidUsernameLength("ab"))
	assert.True(t, v.IsValidUsernameLength("abc"))
	assert.True(t, v.IsValidUsernameLength("abcde"))
	assert.False(t, v.IsValidUsernameLength("abcdef"))

	assert.True(t, v.IsValidNoteLength("1234567890"))
	assert.False(t, v.IsValidNoteLength("12345678901"))
}

func TestUserValidator_ValidateUsername(t *testing.T) {
	uv := NewUserValidator()

	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{
			name:     "valid username",
			username: "alice",
			wantErr:  false,
		},
		{
			name:     "blank username",
			username: "  ",
			wantErr:  true,
		},
		{
			name:     "too long",
			username: strings.Repeat("a", DefaultUsernameMaxLength+1),
			wantErr:  true,
		},
		{
			name:     "invalid characters",
			username: "alice smith",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uv.ValidateUsername(tt.username)
			if tt.wantErr {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserValidator_GetValidUsername(t *testing.T) {
	uv := NewUserValidator()

	cleaned, err := uv.GetValidUsername("  alice  ")
	assert.NoError(t, err)
	assert.Equal(t, "alice", cleaned)

	_, err = uv.GetValidUsername("")
	assert.Error(t, err)
}

func TestUserValidator_ValidateRole(t *testing.T) {
	uv := NewUserValidator()

	assert.NoError(t, uv.ValidateRole("worker"))
	assert.NoError(t, uv.ValidateRole("boss"))
	assert.Error(t, uv.ValidateRole("admin"))
	assert.Error(t, uv.ValidateRole(""))
}

func TestNoteValidator_ValidateNote(t *testing.T) {
	nv := NewNoteValidator()

	assert.NoError(t, nv.ValidateNote(""))
	assert.NoError(t, nv.ValidateNote("short note"))
	assert.Error(t, nv.ValidateNote(strings.Repeat("x", DefaultNoteMaxLength+1)))
}
