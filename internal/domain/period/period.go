// Package period provides calendar-day and calendar-month arithmetic for
// transaction dates and invoice billing periods. Dates are plain calendar
// values (no time component, no timezone) so a purchase dated 2024-01-15
// stays 2024-01-15 regardless of where the server runs.
package period

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// Date is a calendar day (YYYY-MM-DD).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a date in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// AddMonths advances the date by n calendar months, keeping the day of
// month and clamping it to the last day when the target month is shorter
// (Jan 31 + 1 month = Feb 29 in a leap year, Feb 28 otherwise).
func (d Date) AddMonths(n int) Date {
	m := Month{Year: d.Year, Month: d.Month}.AddMonths(n)
	return m.Date(d.Day)
}

// Month is a calendar month (YYYY-MM), the unit of invoice billing periods.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a month in YYYY-MM format.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String returns the month in YYYY-MM format.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// AddMonths advances the month by n calendar months (n may be negative).
func (m Month) AddMonths(n int) Month {
	// time.Date normalizes out-of-range months across year boundaries.
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns the given day of this month, clamped to the month's length.
// Day values below 1 clamp to the 1st. Card due days (1-31) resolve to a
// concrete calendar date this way.
func (m Month) Date(day int) Date {
	if day < 1 {
		day = 1
	}
	if last := m.Days(); day > last {
		day = last
	}
	return Date{Year: m.Year, Month: m.Month, Day: day}
}

// Bounds returns the first and last calendar days of the month, for
// date-range queries over transactions.
func (m Month) Bounds() (first, last Date) {
	return m.Date(1), m.Date(m.Days())
}
