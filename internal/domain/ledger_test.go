package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_ClockIn(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)

	t.Run("appends an open entry on an idle ledger", func(t *testing.T) {
		ledger := NewLedger("alice")

		ledger, ok := ledger.ClockIn("start", now)
		require.True(t, ok)
		require.Equal(t, 1, ledger.Len())

		entry := ledger.Entries[0]
		assert.True(t, entry.Open())
		assert.Equal(t, now, entry.ClockIn)
		assert.Equal(t, "start", entry.NotesIn)
		assert.NotEmpty(t, entry.ID)
	})

	t.Run("second clock in is rejected as a no-op", func(t *testing.T) {
		ledger := NewLedger("alice")
		ledger, ok := ledger.ClockIn("start", now)
		require.True(t, ok)

		unchanged, ok := ledger.ClockIn("again", now.Add(time.Minute))
		assert.False(t, ok)
		assert.Equal(t, ledger, unchanged)
		assert.Equal(t, 1, unchanged.Len())
	})

	t.Run("clock in after clock out opens a second entry", func(t *testing.T) {
		ledger := NewLedger("alice")
		ledger, _ = ledger.ClockIn("morning", now)
		ledger, _ = ledger.ClockOut("lunch", now.Add(4*time.Hour))

		ledger, ok := ledger.ClockIn("afternoon", now.Add(5*time.Hour))
		require.True(t, ok)
		assert.Equal(t, 2, ledger.Len())
		assert.False(t, ledger.Entries[0].Open())
		assert.True(t, ledger.Entries[1].Open())
	})
}

func TestLedger_ClockOut(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)

	t.Run("closes the open entry in place", func(t *testing.T) {
		ledger := NewLedger("alice")
		ledger, _ = ledger.ClockIn("first", now)
		ledger, _ = ledger.ClockOut("", now.Add(time.Hour))
		ledger, _ = ledger.ClockIn("second", now.Add(2*time.Hour))

		out := now.Add(3 * time.Hour)
		ledger, ok := ledger.ClockOut("done", out)
		require.True(t, ok)

		// Same position, other entries untouched.
		require.Equal(t, 2, ledger.Len())
		assert.Equal(t, "first", ledger.Entries[0].NotesIn)
		closed := ledger.Entries[1]
		require.NotNil(t, closed.ClockOut)
		assert.Equal(t, out, *closed.ClockOut)
		assert.Equal(t, "done", closed.NotesOut)
	})

	t.Run("clock out on an idle ledger is a no-op", func(t *testing.T) {
		ledger := NewLedger("alice")

		unchanged, ok := ledger.ClockOut("done", now)
		assert.False(t, ok)
		assert.Equal(t, ledger, unchanged)
	})
}

func TestLedger_ActiveEntry(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)

	t.Run("empty ledger has no active entry", func(t *testing.T) {
		_, ok := NewLedger("alice").ActiveEntry()
		assert.False(t, ok)
	})

	t.Run("returns the open entry", func(t *testing.T) {
		ledger := NewLedger("alice")
		ledger, _ = ledger.ClockIn("work", now)

		active, ok := ledger.ActiveEntry()
		require.True(t, ok)
		assert.Equal(t, "work", active.NotesIn)
	})

	t.Run("closed ledger has no active entry", func(t *testing.T) {
		ledger := NewLedger("alice")
		ledger, _ = ledger.ClockIn("work", now)
		ledger, _ = ledger.ClockOut("", now.Add(time.Hour))

		_, ok := ledger.ActiveEntry()
		assert.False(t, ok)
	})
}

// The at-most-one-open-entry invariant must hold after any sequence of
// clock ins and outs, including rejected ones.
func TestLedger_InvariantPreservation(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.Local)
	ledger := NewLedger("alice")

	ops := []struct {
		clockIn bool
		note    string
	}{
		{true, "a"}, {true, "b"}, {false, ""}, {false, ""},
		{true, "c"}, {false, "x"}, {true, "d"}, {true, "e"}, {false, "y"},
	}

	for i, op := range ops {
		at := now.Add(time.Duration(i) * time.Minute)
		if op.clockIn {
			ledger, _ = ledger.ClockIn(op.note, at)
		} else {
			ledger, _ = ledger.ClockOut(op.note, at)
		}

		open := 0
		for _, e := range ledger.Entries {
			if e.Open() {
				open++
			}
		}
		assert.LessOrEqual(t, open, 1, "after op %d", i)
	}

	// 3 successful clock ins (a, c, d), each eventually closed or last open.
	assert.Equal(t, 3, ledger.Len())
}

func TestLedger_ValueSemantics(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)
	original := NewLedger("alice")
	original, _ = original.ClockIn("work", now)

	// Mutating the derived ledger must not touch the original's entries.
	derived, ok := original.ClockOut("done", now.Add(time.Hour))
	require.True(t, ok)
	assert.True(t, original.Entries[0].Open())
	assert.False(t, derived.Entries[0].Open())
}
