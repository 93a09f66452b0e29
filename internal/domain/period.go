package domain

import (
	"fmt"
	"time"
)

// Accepted input layouts for period and entry date values.
const (
	layoutMonth = "2006-01"
	layoutDate  = "2006-01-02"
)

// ParsePeriod parses a raw payment period value into its canonical form: the
// first day of the covered month at midnight UTC.
//
// Accepted formats:
//   - "YYYY-MM"    → first day of that month
//   - "YYYY-MM-DD" → truncated to the first day of that month
//   - RFC3339      → truncated to the first day of that month
//
// Any other input, or an input that does not denote a valid calendar date
// (e.g. "2024-13"), fails with ErrInvalidDate.
func ParsePeriod(raw string) (time.Time, error) {
	for _, layout := range []string{layoutMonth, layoutDate, time.RFC3339} {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return MonthStart(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// ParseEntryDate parses the date a payment was recorded. It accepts
// "YYYY-MM-DD" or RFC3339 input and truncates to midnight UTC of that day.
// Unparseable input fails with ErrInvalidDate.
func ParseEntryDate(raw string) (time.Time, error) {
	for _, layout := range []string{layoutDate, time.RFC3339} {
		t, err := time.Parse(layout, raw)
		if err == nil {
			y, m, d := t.UTC().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// MonthStart returns the first day of t's month at midnight UTC.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// MonthWindow returns the half-open interval [first of month, first of next
// month) covering the month of payFor. Payments whose pay_for falls inside
// the window cover the same period.
func MonthWindow(payFor time.Time) (start, end time.Time) {
	start = MonthStart(payFor)
	return start, start.AddDate(0, 1, 0)
}

// YearWindow returns the closed interval [Jan 1, Dec 31] of the given year,
// both bounds at midnight UTC. The upper bound is inclusive to match the
// year-only payment filter.
func YearWindow(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
