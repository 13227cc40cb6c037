package cli

import (
	"context"
	"fmt"
	"io"

	"punchclock/internal/api"
)

// LoginCommand handles the login command
type LoginCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute runs the login command
func (c *LoginCommand) Execute(ctx context.Context, username string) error {
	user, err := c.api.Login(ctx, username)
	if err != nil {
		return c.errorHandler.Handle("log in", err)
	}

	fmt.Fprintf(c.out, "Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}
