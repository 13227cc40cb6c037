// Package timeutil provides pure duration and date helpers shared by the
// ledger, the history aggregator and the CLI display layer.
package timeutil

import (
	"fmt"
	"time"
)

// Weekday and month names follow the es-ES locale. The application is
// intentionally single-locale; see the project non-goals.
var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Elapsed returns the worked duration of a session. While the session is
// open (clockOut nil) it measures up to now, otherwise clockOut-clockIn.
// Negative results from clock skew or malformed data clamp to zero.
func Elapsed(clockIn time.Time, clockOut *time.Time, now time.Time) time.Duration {
	end := now
	if clockOut != nil {
		end = *clockOut
	}
	d := end.Sub(clockIn)
	if d < 0 {
		return 0
	}
	return d
}

// FormatDuration formats a duration as a zero-padded "08h 00m 00s" string.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02dh %02dm %02ds", hours, minutes, seconds)
}

// FormatDayLabel formats a calendar day as "lunes, 10 de enero de 2024".
func FormatDayLabel(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishWeekdays[int(t.Weekday())],
		t.Day(),
		spanishMonths[int(t.Month())-1],
		t.Year(),
	)
}

// MonthName returns the Spanish name for a month.
func MonthName(m time.Month) string {
	return spanishMonths[int(m)-1]
}

// StartOfDay returns 00:00:00 of the same day in the same location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day in their
// respective locations.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
