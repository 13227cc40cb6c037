package cli

import (
	"context"
	"fmt"
	"io"

	"punchclock/internal/api"
)

// WhoamiCommand handles the whoami command
type WhoamiCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewWhoamiCommand creates a new whoami command handler
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute runs the whoami command
func (c *WhoamiCommand) Execute(ctx context.Context) error {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return c.errorHandler.Handle("look up session", err)
	}
	if user == nil {
		fmt.Fprintln(c.out, "Nobody is logged in")
		return nil
	}

	fmt.Fprintf(c.out, "%s (%s)\n", user.Username, user.Role)
	return nil
}
