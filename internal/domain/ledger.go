package domain

import (
	"time"
)

// Ledger is the ordered list of time-log entries belonging to one user.
// Insertion order is preserved. Invariant: at most one entry is open.
type Ledger struct {
	Username string
	Entries  []TimeLogEntry
}

// NewLedger creates an empty ledger for the given user.
func NewLedger(username string) Ledger {
	return Ledger{Username: username}
}

// ActiveEntry returns the open entry, if any. Ledgers are bounded by a
// human work history, so the linear scan is fine.
func (l Ledger) ActiveEntry() (TimeLogEntry, bool) {
	for _, e := range l.Entries {
		if e.Open() {
			return e, true
		}
	}
	return TimeLogEntry{}, false
}

// Active returns true if the ledger has an open session.
func (l Ledger) Active() bool {
	_, ok := l.ActiveEntry()
	return ok
}

// ClockIn appends a new open entry. When a session is already open the
// ledger is returned unchanged and ok is false; the open-session invariant
// is never violated.
func (l Ledger) ClockIn(note string, now time.Time) (Ledger, bool) {
	if l.Active() {
		return l, false
	}
	entries := make([]TimeLogEntry, len(l.Entries), len(l.Entries)+1)
	copy(entries, l.Entries)
	l.Entries = append(entries, NewTimeLogEntry(note, now))
	return l, true
}

// ClockOut closes the open entry in place, leaving every other entry
// untouched. When no session is open the ledger is returned unchanged and
// ok is false.
func (l Ledger) ClockOut(note string, now time.Time) (Ledger, bool) {
	for i, e := range l.Entries {
		if e.Open() {
			entries := make([]TimeLogEntry, len(l.Entries))
			copy(entries, l.Entries)
			entries[i] = e.Close(note, now)
			l.Entries = entries
			return l, true
		}
	}
	return l, false
}

// Len returns the number of entries in the ledger.
func (l Ledger) Len() int {
	return len(l.Entries)
}
