package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"punchclock/internal/api"
	"punchclock/internal/config"
	"punchclock/internal/domain"
	"punchclock/internal/store/sqlite"
)

// setupTestApp builds an App over an in-memory store, capturing output.
func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	kv, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	out := &bytes.Buffer{}
	app := &App{
		api:    api.New(kv),
		config: config.NewConfig(),
		out:    out,
	}
	return app, out
}

// registerAndLogin registers a user and starts their session.
func registerAndLogin(t *testing.T, app *App, username string, role domain.Role) {
	t.Helper()

	ctx := context.Background()
	_, err := app.api.Register(ctx, username, role)
	require.NoError(t, err)
	_, err = app.api.Login(ctx, username)
	require.NoError(t, err)
}

// stubClock pins timeNow for the duration of the test.
func stubClock(t *testing.T, now time.Time) {
	t.Helper()

	orig := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = orig })
}
