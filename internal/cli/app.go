package cli

import (
	"io"
	"os"
	"time"

	"punchclock/internal/api"
	"punchclock/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API) *App {
	return &App{
		api:    apiInstance,
		config: config.NewConfig(),
		out:    os.Stdout,
	}
}

// NewAppWithConfig creates a new CLI application instance with an
// explicit configuration
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		out:    os.Stdout,
	}
}
