package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"punchclock/internal/api"
	"punchclock/internal/timeutil"
)

// OutCommand handles the clock-out command
type OutCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	out          io.Writer
	timeFormat   string
}

// NewOutCommand creates a new clock-out command handler
func NewOutCommand(app *App) *OutCommand {
	return &OutCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		out:          app.out,
		timeFormat:   app.config.Display.TimeFormat,
	}
}

// Execute runs the clock-out command. Any arguments are joined into the
// optional note.
func (c *OutCommand) Execute(ctx context.Context, args []string) error {
	note := strings.Join(args, " ")

	entry, err := c.api.ClockOut(ctx, note)
	if err != nil {
		return c.errorHandler.Handle("clock out", err)
	}

	worked := timeutil.Elapsed(entry.ClockIn, entry.ClockOut, timeNow())
	fmt.Fprintf(c.out, "Clocked out at %s (worked %s)\n",
		entry.ClockOut.Format(c.timeFormat), timeutil.FormatDuration(worked))
	if entry.NotesOut != "" {
		fmt.Fprintf(c.out, "Note: %s\n", entry.NotesOut)
	}
	return nil
}
