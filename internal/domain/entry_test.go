package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeLogEntry(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)

	entry := NewTimeLogEntry("starting shift", now)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, now, entry.ClockIn)
	assert.Equal(t, "starting shift", entry.NotesIn)
	assert.True(t, entry.Open())
	assert.Empty(t, entry.NotesOut)
}

func TestNewTimeLogEntry_DistinctIDs(t *testing.T) {
	now := time.Now()

	// Same instant must still yield distinct identifiers.
	a := NewTimeLogEntry("", now)
	b := NewTimeLogEntry("", now)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTimeLogEntry_Close(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)
	out := now.Add(8 * time.Hour)

	entry := NewTimeLogEntry("in", now)
	closed := entry.Close("out", out)

	assert.False(t, closed.Open())
	require.NotNil(t, closed.ClockOut)
	assert.Equal(t, out, *closed.ClockOut)
	assert.Equal(t, "out", closed.NotesOut)

	// Close returns a copy; the receiver stays open.
	assert.True(t, entry.Open())
}

func TestTimeLogEntry_Elapsed(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		entry    TimeLogEntry
		now      time.Time
		expected time.Duration
	}{
		{
			name:     "open entry measured to now",
			entry:    NewTimeLogEntry("", now),
			now:      now.Add(30 * time.Minute),
			expected: 30 * time.Minute,
		},
		{
			name:     "closed entry ignores now",
			entry:    NewTimeLogEntry("", now).Close("", now.Add(time.Hour)),
			now:      now.Add(10 * time.Hour),
			expected: time.Hour,
		},
		{
			name:     "clock skew never goes negative",
			entry:    NewTimeLogEntry("", now),
			now:      now.Add(-time.Minute),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.Elapsed(tt.now))
		})
	}
}

func TestTimeLogEntry_IsValid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		entry    TimeLogEntry
		expected bool
	}{
		{
			name:     "valid open entry",
			entry:    NewTimeLogEntry("note", now),
			expected: true,
		},
		{
			name:     "missing id",
			entry:    TimeLogEntry{ClockIn: now},
			expected: false,
		},
		{
			name:     "zero clock in",
			entry:    TimeLogEntry{ID: "x"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.IsValid())
		})
	}
}
