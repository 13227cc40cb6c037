package repository

import (
	"context"

	"punchclock/internal/store"
)

// Users persists the user directory and the logged-in session.
type Users struct {
	store store.Store
}

// NewUsers creates a Users repository over the given store.
func NewUsers(s store.Store) *Users {
	return &Users{store: s}
}

// Load returns all registered users. A missing or corrupt value degrades
// to an empty directory.
func (r *Users) Load(ctx context.Context) []UserRecord {
	return store.Read(ctx, r.store, UsersKey, []UserRecord{})
}

// Save replaces the whole directory under its key.
func (r *Users) Save(ctx context.Context, records []UserRecord) error {
	return store.Write(ctx, r.store, UsersKey, records)
}

// Current returns the logged-in user, or nil when nobody is logged in.
func (r *Users) Current(ctx context.Context) *UserRecord {
	return store.Read[*UserRecord](ctx, r.store, CurrentUserKey, nil)
}

// SetCurrent records the logged-in user so the session survives restarts.
func (r *Users) SetCurrent(ctx context.Context, record UserRecord) error {
	return store.Write(ctx, r.store, CurrentUserKey, record)
}

// ClearCurrent removes the logged-in session.
func (r *Users) ClearCurrent(ctx context.Context) error {
	if err := r.store.Delete(ctx, CurrentUserKey); err != nil {
		return err
	}
	return nil
}
