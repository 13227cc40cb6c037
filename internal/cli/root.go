package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"punchclock/internal/api"
	"punchclock/internal/config"
	"punchclock/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "punch",
		Short: "A command-line employee time clock",
		Long: `Punch is a command-line time clock for registering employees and
recording their working hours.

EXAMPLES:
  punch register alice                     # Register a new worker
  punch register carol --boss              # Register a supervisor
  punch login alice                        # Start a session
  punch in "morning shift"                 # Clock in with a note
  punch status --watch                     # Live elapsed time display
  punch out "done for today"               # Clock out with a note
  punch history                            # Own history grouped by day
  punch history --user alice --month 1     # A worker's January (boss only)
  punch workers                            # List workers (boss only)

CONFIGURATION:
  Configuration follows this priority order: command-line flags >
  environment variables > .env file > defaults

    PUNCH_DATA_DIR                         Data directory (default: ~/.punch)
    PUNCH_DB_FILENAME                      Database filename (default: punch.db)
    PUNCH_DB_QUERY_TIMEOUT                 Query timeout (default: 10s)
    PUNCH_DB_WRITE_TIMEOUT                 Write timeout (default: 5s)
    PUNCH_TIME_FORMAT                      Clock display format (default: 15:04:05)
    PUNCH_DISPLAY_DATE_ONLY                Day totals only in history (default: false)
    PUNCH_VALIDATION_USERNAME_MIN          Min username length (default: 1)
    PUNCH_VALIDATION_USERNAME_MAX          Max username length (default: 64)
    PUNCH_VALIDATION_NOTE_MAX              Max note length (default: 500)
    PUNCH_APP_TIMEOUT                      Command timeout (default: 60s)
    PUNCH_APP_VERBOSE                      Enable verbose output (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// app builds the handler dependency container for a command invocation.
func (r *RootCommand) app() *App {
	return NewAppWithConfig(r.api, r.config)
}

// commandContext returns a context bounded by the application timeout.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.config.Application.Timeout)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("data-dir", "", "Data directory (overrides PUNCH_DATA_DIR)")
	flags.String("db-filename", "", "Database filename (overrides PUNCH_DB_FILENAME)")
	flags.String("time-format", "", "Clock display format (overrides PUNCH_TIME_FORMAT)")
	flags.Bool("date-only", false, "Show day totals only in history (overrides PUNCH_DISPLAY_DATE_ONLY)")
	flags.Duration("app-timeout", 0, "Command timeout (overrides PUNCH_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides PUNCH_APP_VERBOSE)")
}

// getConfigFromFlags applies command line flag overrides to the configuration
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()

	if dataDir, _ := flags.GetString("data-dir"); dataDir != "" {
		r.config.Storage.Dir = dataDir
	}
	if filename, _ := flags.GetString("db-filename"); filename != "" {
		r.config.Storage.Filename = filename
	}
	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.config.Display.TimeFormat = timeFormat
	}
	if dateOnly, _ := flags.GetBool("date-only"); dateOnly {
		r.config.Display.DateOnly = true
	}
	if timeout, _ := flags.GetDuration("app-timeout"); timeout > 0 {
		r.config.Application.Timeout = timeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = true
	}
	if r.config.Application.Verbose {
		logging.EnableVerbose()
	}

	return r.config.Validate()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	registerCmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Register a new user",
		Long:  "Register a new user. Usernames are unique regardless of casing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			boss, _ := cmd.Flags().GetBool("boss")
			return NewRegisterCommand(r.app()).Execute(ctx, args[0], boss)
		},
	}
	registerCmd.Flags().Bool("boss", false, "Register the user as a supervisor")

	loginCmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Start a session",
		Long:  "Start a session as a registered user. The session survives restarts.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewLoginCommand(r.app()).Execute(ctx, args[0])
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewLogoutCommand(r.app()).Execute(ctx)
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewWhoamiCommand(r.app()).Execute(ctx)
		},
	}

	inCmd := &cobra.Command{
		Use:   "in [note]",
		Short: "Clock in",
		Long:  "Open a new time log entry. Arguments are joined into an optional note.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewInCommand(r.app()).Execute(ctx, args)
		},
	}

	outCmd := &cobra.Command{
		Use:   "out [note]",
		Short: "Clock out",
		Long:  "Close the open time log entry. Arguments are joined into an optional note.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewOutCommand(r.app()).Execute(ctx, args)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current clock state",
		Long:  "Show whether you are clocked in and for how long. With --watch the\nelapsed time redraws every second until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			if watch {
				// Watching runs until interrupted, not until the
				// application timeout.
				ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				return NewStatusCommand(r.app()).Execute(ctx, true)
			}

			ctx, cancel := r.commandContext()
			defer cancel()

			return NewStatusCommand(r.app()).Execute(ctx, false)
		},
	}
	statusCmd.Flags().Bool("watch", false, "Redraw the elapsed time every second")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show history grouped by day",
		Long: `Show clocked time grouped by day, most recent day first.

Without flags it shows your own full history. Supervisors can pass
--user to view one month of a worker's history (defaulting to the
current month).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			username, _ := cmd.Flags().GetString("user")
			year, _ := cmd.Flags().GetInt("year")
			monthNum, _ := cmd.Flags().GetInt("month")
			if monthNum < 0 || monthNum > 12 {
				return errInvalidMonth(monthNum)
			}

			return NewHistoryCommand(r.app()).Execute(ctx, username, year, time.Month(monthNum))
		},
	}
	historyCmd.Flags().String("user", "", "Show the named worker's history (supervisors only)")
	historyCmd.Flags().Int("year", 0, "Limit to the given year")
	historyCmd.Flags().Int("month", 0, "Limit to the given month (1-12)")

	workersCmd := &cobra.Command{
		Use:   "workers",
		Short: "List registered workers",
		Long:  "List registered workers available for supervision (supervisors only).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewWorkersCommand(r.app()).Execute(ctx)
		},
	}

	r.cmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd,
		inCmd, outCmd, statusCmd, historyCmd, workersCmd)
}
