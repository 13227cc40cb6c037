package cli

import (
	"context"
	"fmt"
	"io"

	"punchclock/internal/api"
)

// LogoutCommand handles the logout command
type LogoutCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute runs the logout command
func (c *LogoutCommand) Execute(ctx context.Context) error {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return c.errorHandler.Handle("log out", err)
	}
	if user == nil {
		fmt.Fprintln(c.out, "Nobody is logged in")
		return nil
	}

	if err := c.api.Logout(ctx); err != nil {
		return c.errorHandler.Handle("log out", err)
	}

	fmt.Fprintf(c.out, "Logged out %s\n", user.Username)
	return nil
}
