package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"punchclock/internal/api"
	"punchclock/internal/timeutil"
)

// StatusCommand handles the status command
type StatusCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	out          io.Writer
	timeFormat   string
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		out:          app.out,
		timeFormat:   app.config.Display.TimeFormat,
	}
}

// Execute runs the status command. With watch enabled it redraws the
// elapsed time every second until the context is cancelled.
func (c *StatusCommand) Execute(ctx context.Context, watch bool) error {
	if !watch {
		line, err := c.statusLine(ctx, timeNow())
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, line)
		return nil
	}

	return c.watch(ctx)
}

// watch redraws the status line once per second on the same terminal
// row until the context is cancelled or the session clocks out.
func (c *StatusCommand) watch(ctx context.Context) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		line, err := c.statusLine(ctx, timeNow())
		if err != nil {
			fmt.Fprintln(c.out)
			return err
		}
		fmt.Fprintf(c.out, "\r\033[2K%s", line)

		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return nil
		case <-ticker.C:
		}
	}
}

// statusLine renders the current clock state as a single line.
func (c *StatusCommand) statusLine(ctx context.Context, now time.Time) (string, error) {
	entry, err := c.api.ActiveEntry(ctx)
	if err != nil {
		return "", c.errorHandler.Handle("check status", err)
	}
	if entry == nil {
		return "Not clocked in", nil
	}

	elapsed := timeutil.Elapsed(entry.ClockIn, entry.ClockOut, now)
	line := fmt.Sprintf("Clocked in since %s (%s)",
		entry.ClockIn.Format(c.timeFormat), timeutil.FormatDuration(elapsed))
	if entry.NotesIn != "" {
		line += " - " + entry.NotesIn
	}
	return line, nil
}
