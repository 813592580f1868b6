// Package quarter holds the 13-week planning-period arithmetic shared by the
// repositories and the overview handlers.
package quarter

import (
	"fmt"
	"time"
)

// Current returns the calendar year and quarter (1-4) for now, local time.
func Current() (year, q int) {
	return At(time.Now())
}

func At(t time.Time) (year, q int) {
	return t.Year(), (int(t.Month())-1)/3 + 1
}

// CurrentID renders the current quarter as its storage identifier, e.g. "q1-2026".
func CurrentID() string {
	year, q := Current()
	return ID(year, q)
}

func ID(year, q int) string {
	return fmt.Sprintf("q%d-%d", q, year)
}

// ParseID is the inverse of ID. ok is false for anything that does not
// round-trip, such as "q5-2026" or "2026-q1".
func ParseID(id string) (year, q int, ok bool) {
	if _, err := fmt.Sscanf(id, "q%d-%d", &q, &year); err != nil {
		return 0, 0, false
	}
	if q < 1 || q > 4 || ID(year, q) != id {
		return 0, 0, false
	}
	return year, q, true
}

func StartDate(year, q int) time.Time {
	return time.Date(year, time.Month((q-1)*3+1), 1, 0, 0, 0, 0, time.Local)
}

func EndDate(year, q int) time.Time {
	// Day zero of the following month is the last day of the quarter.
	return time.Date(year, time.Month(q*3+1), 0, 0, 0, 0, 0, time.Local)
}

// WeekNumber maps a date to its week within the quarter that starts at
// quarterStart, rounding partial weeks up. The start date itself is week 0.
func WeekNumber(date, quarterStart time.Time) int {
	const week = 7 * 24 * time.Hour
	diff := date.Sub(quarterStart)
	if diff <= 0 {
		return 0
	}
	n := int(diff / week)
	if diff%week > 0 {
		n++
	}
	return n
}
