package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchclock/internal/api"
	"punchclock/internal/config"
	"punchclock/internal/store/sqlite"
)

func newTestRoot(t *testing.T) *RootCommand {
	t.Helper()

	kv, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	return NewRootCommand(api.New(kv), config.NewConfig())
}

func TestRootCommand_Execute(t *testing.T) {
	t.Run("register then whoami", func(t *testing.T) {
		root := newTestRoot(t)
		root.cmd.SetArgs([]string{"register", "alice"})
		require.NoError(t, root.Execute())

		root.cmd.SetArgs([]string{"login", "alice"})
		require.NoError(t, root.Execute())

		root.cmd.SetArgs([]string{"whoami"})
		assert.NoError(t, root.Execute())
	})

	t.Run("register requires a username", func(t *testing.T) {
		root := newTestRoot(t)
		root.cmd.SetArgs([]string{"register"})
		assert.Error(t, root.Execute())
	})

	t.Run("history rejects an out-of-range month", func(t *testing.T) {
		root := newTestRoot(t)
		root.cmd.SetArgs([]string{"history", "--month", "13"})
		assert.Error(t, root.Execute())
	})
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	root := newTestRoot(t)
	root.cmd.SetArgs([]string{
		"--data-dir", "/tmp/punch-flags",
		"--db-filename", "override.db",
		"--time-format", "15:04",
		"--date-only",
		"--verbose",
		"whoami",
	})
	require.NoError(t, root.Execute())

	assert.Equal(t, "/tmp/punch-flags", root.config.Storage.Dir)
	assert.Equal(t, "override.db", root.config.Storage.Filename)
	assert.Equal(t, "15:04", root.config.Display.TimeFormat)
	assert.True(t, root.config.Display.DateOnly)
	assert.True(t, root.config.Application.Verbose)
}
