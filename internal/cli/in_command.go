package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"punchclock/internal/api"
)

// InCommand handles the clock-in command
type InCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	out          io.Writer
	timeFormat   string
}

// NewInCommand creates a new clock-in command handler
func NewInCommand(app *App) *InCommand {
	return &InCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		out:          app.out,
		timeFormat:   app.config.Display.TimeFormat,
	}
}

// Execute runs the clock-in command. Any arguments are joined into the
// optional note.
func (c *InCommand) Execute(ctx context.Context, args []string) error {
	note := strings.Join(args, " ")

	entry, err := c.api.ClockIn(ctx, note)
	if err != nil {
		return c.errorHandler.Handle("clock in", err)
	}

	fmt.Fprintf(c.out, "Clocked in at %s\n", entry.ClockIn.Format(c.timeFormat))
	if entry.NotesIn != "" {
		fmt.Fprintf(c.out, "Note: %s\n", entry.NotesIn)
	}
	return nil
}
