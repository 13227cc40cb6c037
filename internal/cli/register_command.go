package cli

import (
	"context"
	"fmt"
	"io"

	"punchclock/internal/api"
	"punchclock/internal/domain"
)

// RegisterCommand handles the register command
type RegisterCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewRegisterCommand creates a new register command handler
func NewRegisterCommand(app *App) *RegisterCommand {
	return &RegisterCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute runs the register command
func (c *RegisterCommand) Execute(ctx context.Context, username string, boss bool) error {
	role := domain.RoleWorker
	if boss {
		role = domain.RoleBoss
	}

	user, err := c.api.Register(ctx, username, role)
	if err != nil {
		return c.errorHandler.Handle("register user", err)
	}

	fmt.Fprintf(c.out, "Registered %s as %s\n", user.Username, user.Role)
	return nil
}
