package api

import (
	"context"
	"time"

	"punchclock/internal/domain"
	"punchclock/internal/errors"
	"punchclock/internal/history"
)

// ClockIn opens a new time log entry for the logged-in user. It fails
// with a conflict error when an entry is already open, leaving the
// ledger untouched.
func (a *apiImpl) ClockIn(ctx context.Context, note string) (*domain.TimeLogEntry, error) {
	user, err := a.requireSession(ctx, "clock in")
	if err != nil {
		return nil, err
	}
	if err := a.noteValidator.ValidateNote(note); err != nil {
		return nil, err
	}

	ledger := a.loadLedger(ctx, user.Username)
	ledger, ok := ledger.ClockIn(note, a.now())
	if !ok {
		return nil, errors.NewConflictError("already clocked in")
	}

	if err := a.saveLedger(ctx, ledger); err != nil {
		return nil, err
	}

	entry, _ := ledger.ActiveEntry()
	return &entry, nil
}

// ClockOut closes the open time log entry for the logged-in user. It
// fails with a conflict error when no entry is open.
func (a *apiImpl) ClockOut(ctx context.Context, note string) (*domain.TimeLogEntry, error) {
	user, err := a.requireSession(ctx, "clock out")
	if err != nil {
		return nil, err
	}
	if err := a.noteValidator.ValidateNote(note); err != nil {
		return nil, err
	}

	ledger := a.loadLedger(ctx, user.Username)
	closing, active := ledger.ActiveEntry()
	if !active {
		return nil, errors.NewConflictError("not clocked in")
	}

	ledger, ok := ledger.ClockOut(note, a.now())
	if !ok {
		return nil, errors.NewConflictError("not clocked in")
	}

	if err := a.saveLedger(ctx, ledger); err != nil {
		return nil, err
	}

	for _, entry := range ledger.Entries {
		if entry.ID == closing.ID {
			return &entry, nil
		}
	}
	return nil, errors.NewNotFoundError("time log entry", closing.ID)
}

// ActiveEntry returns the open entry for the logged-in user, or nil
// when the user is clocked out.
func (a *apiImpl) ActiveEntry(ctx context.Context) (*domain.TimeLogEntry, error) {
	user, err := a.requireSession(ctx, "check status")
	if err != nil {
		return nil, err
	}

	ledger := a.loadLedger(ctx, user.Username)
	entry, active := ledger.ActiveEntry()
	if !active {
		return nil, nil
	}
	return &entry, nil
}

// History returns the logged-in user's ledger grouped by local calendar
// day, most recent day first.
func (a *apiImpl) History(ctx context.Context) ([]history.DayGroup, error) {
	user, err := a.requireSession(ctx, "view history")
	if err != nil {
		return nil, err
	}

	return history.GroupByDay(a.loadLedger(ctx, user.Username)), nil
}

// Workers returns registered workers visible to the logged-in
// supervisor, excluding the supervisor themselves.
func (a *apiImpl) Workers(ctx context.Context) ([]domain.User, error) {
	boss, err := a.requireBoss(ctx, "list workers")
	if err != nil {
		return nil, err
	}

	dir := a.mapper.User.FromRecordSlice(a.users.Load(ctx))
	return dir.Workers(boss), nil
}

// WorkerHistory returns the named worker's ledger for the given month,
// grouped by local calendar day. Supervisor only.
func (a *apiImpl) WorkerHistory(ctx context.Context, username string, year int, month time.Month) ([]history.DayGroup, error) {
	if _, err := a.requireBoss(ctx, "view worker history"); err != nil {
		return nil, err
	}

	dir := a.mapper.User.FromRecordSlice(a.users.Load(ctx))
	worker, found := dir.Find(username)
	if !found {
		return nil, errors.NewNotFoundError("user", username)
	}

	ledger := a.loadLedger(ctx, worker.Username)
	return history.GroupByDay(history.FilterByMonth(ledger, year, month)), nil
}

// WorkerYears returns the years in which the named worker has entries,
// most recent first, always including the current year. Supervisor only.
func (a *apiImpl) WorkerYears(ctx context.Context, username string) ([]int, error) {
	if _, err := a.requireBoss(ctx, "view worker history"); err != nil {
		return nil, err
	}

	dir := a.mapper.User.FromRecordSlice(a.users.Load(ctx))
	worker, found := dir.Find(username)
	if !found {
		return nil, errors.NewNotFoundError("user", username)
	}

	return history.AvailableYears(a.loadLedger(ctx, worker.Username), a.now()), nil
}
