package api

import (
	"context"
	"time"

	"punchclock/internal/config"
	"punchclock/internal/domain"
	"punchclock/internal/errors"
	"punchclock/internal/history"
	"punchclock/internal/repository"
	"punchclock/internal/store"
	"punchclock/internal/validation"
)

// API defines the interface for all account and time clock operations.
type API interface {
	// Account operations
	Register(ctx context.Context, username string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, username string) (*domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	// Time clock operations
	ClockIn(ctx context.Context, note string) (*domain.TimeLogEntry, error)
	ClockOut(ctx context.Context, note string) (*domain.TimeLogEntry, error)
	ActiveEntry(ctx context.Context) (*domain.TimeLogEntry, error)
	History(ctx context.Context) ([]history.DayGroup, error)

	// Supervisor operations
	Workers(ctx context.Context) ([]domain.User, error)
	WorkerHistory(ctx context.Context, username string, year int, month time.Month) ([]history.DayGroup, error)
	WorkerYears(ctx context.Context, username string) ([]int, error)
}

type apiImpl struct {
	users         *repository.Users
	ledgers       *repository.Ledgers
	mapper        *domain.Mapper
	userValidator *validation.UserValidator
	noteValidator *validation.NoteValidator
	now           func() time.Time
}

// New creates a new API instance over the given store.
func New(s store.Store) API {
	return &apiImpl{
		users:         repository.NewUsers(s),
		ledgers:       repository.NewLedgers(s),
		mapper:        domain.NewMapper(),
		userValidator: validation.NewUserValidator(),
		noteValidator: validation.NewNoteValidator(),
		now:           time.Now,
	}
}

// NewWithConfig creates a new API instance with configuration-driven
// validation limits.
func NewWithConfig(s store.Store, cfg *config.Config) API {
	return &apiImpl{
		users:         repository.NewUsers(s),
		ledgers:       repository.NewLedgers(s),
		mapper:        domain.NewMapper(),
		userValidator: validation.NewUserValidatorWithConfig(cfg),
		noteValidator: validation.NewNoteValidatorWithConfig(cfg),
		now:           time.Now,
	}
}

// Register adds a new user to the directory. Registration does not log
// the user in.
func (a *apiImpl) Register(ctx context.Context, username string, role domain.Role) (*domain.User, error) {
	cleanName, err := a.userValidator.GetValidUsername(username)
	if err != nil {
		return nil, err
	}
	if err := a.userValidator.ValidateRole(string(role)); err != nil {
		return nil, err
	}

	dir := a.mapper.User.FromRecordSlice(a.users.Load(ctx))
	dir, err = dir.Register(cleanName, role)
	if err != nil {
		return nil, err
	}

	if err := a.users.Save(ctx, a.mapper.User.ToRecordSlice(dir)); err != nil {
		return nil, err
	}

	user, _ := dir.Find(cleanName)
	return &user, nil
}

// Login starts a session for an already registered user. The username
// lookup is case-insensitive; the session keeps the stored casing.
func (a *apiImpl) Login(ctx context.Context, username string) (*domain.User, error) {
	cleanName, err := a.userValidator.GetValidUsername(username)
	if err != nil {
		return nil, err
	}

	dir := a.mapper.User.FromRecordSlice(a.users.Load(ctx))
	user, found := dir.Find(cleanName)
	if !found {
		return nil, errors.NewNotFoundError("user", cleanName)
	}

	if err := a.users.SetCurrent(ctx, a.mapper.User.ToRecord(user)); err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout ends the current session. Logging out while logged out is a no-op.
func (a *apiImpl) Logout(ctx context.Context) error {
	return a.users.ClearCurrent(ctx)
}

// CurrentUser returns the logged-in user, or nil when nobody is logged in.
func (a *apiImpl) CurrentUser(ctx context.Context) (*domain.User, error) {
	record := a.users.Current(ctx)
	if record == nil {
		return nil, nil
	}

	user := a.mapper.User.FromRecord(*record)
	return &user, nil
}

// ListUsers returns all registered users.
func (a *apiImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	return a.mapper.User.FromRecordSlice(a.users.Load(ctx)), nil
}

// requireSession returns the logged-in user or a permission error.
func (a *apiImpl) requireSession(ctx context.Context, operation string) (domain.User, error) {
	record := a.users.Current(ctx)
	if record == nil {
		return domain.User{}, errors.NewPermissionError(operation, "session")
	}
	return a.mapper.User.FromRecord(*record), nil
}

// requireBoss returns the logged-in user when they hold the supervisor
// role, or a permission error.
func (a *apiImpl) requireBoss(ctx context.Context, operation string) (domain.User, error) {
	user, err := a.requireSession(ctx, operation)
	if err != nil {
		return domain.User{}, err
	}
	if !user.IsBoss() {
		return domain.User{}, errors.NewPermissionError(operation, "worker records")
	}
	return user, nil
}

// loadLedger loads the named user's ledger from the store.
func (a *apiImpl) loadLedger(ctx context.Context, username string) domain.Ledger {
	ledger := domain.NewLedger(username)
	ledger.Entries = a.mapper.Entry.FromRecordSlice(a.ledgers.Load(ctx, username))
	return ledger
}

// saveLedger writes the ledger back to the store.
func (a *apiImpl) saveLedger(ctx context.Context, ledger domain.Ledger) error {
	return a.ledgers.Save(ctx, ledger.Username, a.mapper.Entry.ToRecordSlice(ledger.Entries))
}
