// Package repository persists the user directory, the logged-in session
// and per-user ledgers as JSON values in the key-value store. Record
// structs here mirror the persisted wire format and stay free of domain
// behavior; conversion lives in the domain mappers.
package repository

import "time"

// Persisted key layout. One ledger key per user, no cross-key atomicity.
const (
	UsersKey        = "users"
	CurrentUserKey  = "currentUser"
	ledgerKeyPrefix = "time_logs_"
)

// LedgerKey returns the store key holding the given user's ledger.
func LedgerKey(username string) string {
	return ledgerKeyPrefix + username
}

// UserRecord is the persisted form of a registered user.
type UserRecord struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// EntryRecord is the persisted form of a single clock-in/clock-out
// session. Timestamps serialize as ISO-8601 via encoding/json.
type EntryRecord struct {
	ID       string     `json:"id"`
	ClockIn  time.Time  `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut,omitempty"`
	NotesIn  string     `json:"notesIn,omitempty"`
	NotesOut string     `json:"notesOut,omitempty"`
}
