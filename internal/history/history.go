// Package history is the read-side projection over a session ledger:
// day grouping with per-day totals, month filtering for supervisor views,
// and year enumeration. Nothing here is persisted; groups are recomputed
// on demand.
package history

import (
	"sort"
	"time"

	"punchclock/internal/domain"
	"punchclock/internal/timeutil"
)

// DayGroup aggregates one local calendar day's entries with their summed
// worked duration. Open entries are listed but contribute zero to Total
// until they are closed.
type DayGroup struct {
	Date    time.Time
	Label   string
	Entries []domain.TimeLogEntry
	Total   time.Duration
}

// GroupByDay partitions a ledger's entries by the local calendar day of
// their clock-in, most recent day first. Two entries whose clock-ins fall
// on the same local day share a group even if their UTC dates differ.
func GroupByDay(ledger domain.Ledger) []DayGroup {
	byDay := make(map[time.Time]*DayGroup)

	for _, entry := range ledger.Entries {
		// Decoded timestamps can carry fixed zone offsets after a
		// persistence round-trip; grouping always uses the local day.
		local := entry.ClockIn.In(time.Local)
		day := timeutil.StartOfDay(local)
		group, ok := byDay[day]
		if !ok {
			group = &DayGroup{
				Date:  day,
				Label: timeutil.FormatDayLabel(local),
			}
			byDay[day] = group
		}
		group.Entries = append(group.Entries, entry)
		if !entry.Open() {
			// Closed entries ignore the reference instant.
			group.Total += entry.Elapsed(entry.ClockIn)
		}
	}

	groups := make([]DayGroup, 0, len(byDay))
	for _, group := range byDay {
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
	return groups
}

// FilterByMonth returns the subset of the ledger whose clock-ins fall in
// the given local calendar year and month, preserving entry order.
func FilterByMonth(ledger domain.Ledger, year int, month time.Month) domain.Ledger {
	filtered := domain.NewLedger(ledger.Username)
	for _, entry := range ledger.Entries {
		local := entry.ClockIn.In(time.Local)
		if local.Year() == year && local.Month() == month {
			filtered.Entries = append(filtered.Entries, entry)
		}
	}
	return filtered
}

// AvailableYears returns the distinct local years present in the ledger,
// union the current year, sorted descending. The current year is always
// selectable even on an empty ledger.
func AvailableYears(ledger domain.Ledger, now time.Time) []int {
	seen := map[int]bool{now.Year(): true}
	for _, entry := range ledger.Entries {
		seen[entry.ClockIn.In(time.Local).Year()] = true
	}

	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// SortEntriesDesc orders entries by clock-in descending for display.
// This is a presentation choice, not an aggregator invariant.
func SortEntriesDesc(entries []domain.TimeLogEntry) []domain.TimeLogEntry {
	sorted := make([]domain.TimeLogEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ClockIn.After(sorted[j].ClockIn)
	})
	return sorted
}
