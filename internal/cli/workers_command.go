package cli

import (
	"context"
	"fmt"
	"io"

	"punchclock/internal/api"
)

// WorkersCommand handles the workers command
type WorkersCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewWorkersCommand creates a new workers command handler
func NewWorkersCommand(app *App) *WorkersCommand {
	return &WorkersCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute runs the workers command
func (c *WorkersCommand) Execute(ctx context.Context) error {
	workers, err := c.api.Workers(ctx)
	if err != nil {
		return c.errorHandler.Handle("list workers", err)
	}

	if len(workers) == 0 {
		fmt.Fprintln(c.out, "No workers registered")
		return nil
	}

	for _, worker := range workers {
		fmt.Fprintln(c.out, worker.Username)
	}
	return nil
}
