package domain

import (
	"time"

	"github.com/google/uuid"

	"punchclock/internal/timeutil"
)

// TimeLogEntry represents a single clock-in/clock-out session.
// An entry with no ClockOut is the currently open session.
type TimeLogEntry struct {
	ID       string
	ClockIn  time.Time
	ClockOut *time.Time
	NotesIn  string
	NotesOut string
}

// NewTimeLogEntry creates a new open entry clocked in at the given instant.
// IDs are random UUIDs; two entries created at the same instant stay distinct.
func NewTimeLogEntry(note string, now time.Time) TimeLogEntry {
	return TimeLogEntry{
		ID:      uuid.NewString(),
		ClockIn: now,
		NotesIn: note,
	}
}

// Open returns true if the entry has no clock-out yet.
func (e TimeLogEntry) Open() bool {
	return e.ClockOut == nil
}

// Close sets the clock-out instant and note. A closed entry never reopens.
func (e TimeLogEntry) Close(note string, now time.Time) TimeLogEntry {
	e.ClockOut = &now
	e.NotesOut = note
	return e
}

// Elapsed returns the worked duration up to now for an open entry, or the
// full session duration for a closed one. Never negative.
func (e TimeLogEntry) Elapsed(now time.Time) time.Duration {
	return timeutil.Elapsed(e.ClockIn, e.ClockOut, now)
}

// IsValid checks if the entry has valid data.
func (e TimeLogEntry) IsValid() bool {
	if e.ID == "" {
		return false
	}
	if e.ClockIn.IsZero() {
		return false
	}
	return true
}
