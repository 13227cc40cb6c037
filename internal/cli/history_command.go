package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"punchclock/internal/api"
	"punchclock/internal/history"
	"punchclock/internal/timeutil"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	out          io.Writer
	timeFormat   string
	dateOnly     bool
}

// NewHistoryCommand creates a new history command handler
func NewHistoryCommand(app *App) *HistoryCommand {
	return &HistoryCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		out:          app.out,
		timeFormat:   app.config.Display.TimeFormat,
		dateOnly:     app.config.Display.DateOnly,
	}
}

// Execute runs the history command. With a username it shows the named
// worker's month as a supervisor view; otherwise it shows the logged-in
// user's own history, optionally narrowed to a year and month.
func (c *HistoryCommand) Execute(ctx context.Context, username string, year int, month time.Month) error {
	if username != "" {
		return c.showWorkerMonth(ctx, username, year, month)
	}
	return c.showOwnHistory(ctx, year, month)
}

// showOwnHistory displays the logged-in user's grouped history.
func (c *HistoryCommand) showOwnHistory(ctx context.Context, year int, month time.Month) error {
	groups, err := c.api.History(ctx)
	if err != nil {
		return c.errorHandler.Handle("view history", err)
	}

	groups = filterGroups(groups, year, month)
	if len(groups) == 0 {
		fmt.Fprintln(c.out, "No entries yet. Clock in to get started!")
		return nil
	}

	c.renderGroups(groups)
	return nil
}

// showWorkerMonth displays one month of a worker's history. The year
// and month default to the current ones.
func (c *HistoryCommand) showWorkerMonth(ctx context.Context, username string, year int, month time.Month) error {
	now := timeNow()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	groups, err := c.api.WorkerHistory(ctx, username, year, month)
	if err != nil {
		return c.errorHandler.Handle("view worker history", err)
	}

	fmt.Fprintf(c.out, "%s: %s %d\n", username, timeutil.MonthName(month), year)
	if len(groups) == 0 {
		fmt.Fprintln(c.out, "No entries for this month")
		return nil
	}

	c.renderGroups(groups)
	return nil
}

// renderGroups prints day groups, most recent day first. With date-only
// display the per-entry lines are suppressed and only day totals remain.
func (c *HistoryCommand) renderGroups(groups []history.DayGroup) {
	for _, group := range groups {
		fmt.Fprintf(c.out, "%s  (total %s)\n", group.Label, timeutil.FormatDuration(group.Total))
		if c.dateOnly {
			continue
		}
		for _, entry := range history.SortEntriesDesc(group.Entries) {
			in := entry.ClockIn.Format(c.timeFormat)
			out := "(open)"
			if entry.ClockOut != nil {
				out = entry.ClockOut.Format(c.timeFormat)
			}
			fmt.Fprintf(c.out, "  %s -> %s\n", in, out)
			if entry.NotesIn != "" {
				fmt.Fprintf(c.out, "    in:  %s\n", entry.NotesIn)
			}
			if entry.NotesOut != "" {
				fmt.Fprintf(c.out, "    out: %s\n", entry.NotesOut)
			}
		}
	}
}

// filterGroups narrows day groups to the given year and month. Zero
// values leave the corresponding dimension unfiltered.
func filterGroups(groups []history.DayGroup, year int, month time.Month) []history.DayGroup {
	if year == 0 && month == 0 {
		return groups
	}

	filtered := make([]history.DayGroup, 0, len(groups))
	for _, group := range groups {
		if year != 0 && group.Date.Year() != year {
			continue
		}
		if month != 0 && group.Date.Month() != month {
			continue
		}
		filtered = append(filtered, group)
	}
	return filtered
}
