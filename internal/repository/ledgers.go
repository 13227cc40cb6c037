package repository

import (
	"context"

	"punchclock/internal/store"
)

// Ledgers persists one ledger per user, keyed by username.
type Ledgers struct {
	store store.Store
}

// NewLedgers creates a Ledgers repository over the given store.
func NewLedgers(s store.Store) *Ledgers {
	return &Ledgers{store: s}
}

// Load returns the entries of the given user's ledger. A missing or
// corrupt value degrades to an empty ledger.
func (r *Ledgers) Load(ctx context.Context, username string) []EntryRecord {
	return store.Read(ctx, r.store, LedgerKey(username), []EntryRecord{})
}

// Save writes the whole ledger back to its key. Callers follow a
// read-modify-write cycle; the per-key write is atomic.
func (r *Ledgers) Save(ctx context.Context, username string, entries []EntryRecord) error {
	return store.Write(ctx, r.store, LedgerKey(username), entries)
}
