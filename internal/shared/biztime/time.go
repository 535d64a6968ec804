// Package biztime provides time utilities for usage metering.
// All storage and queries use UTC. Usage periods are calendar months in UTC:
// the period containing t starts at the first instant of t's UTC month.
// Implicit Local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// PeriodStart returns the start of the usage period containing t:
// the first instant of t's calendar month in UTC.
func PeriodStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// NextPeriodStart returns the start of the period after the one containing t.
func NextPeriodStart(t time.Time) time.Time {
	return PeriodStart(t).AddDate(0, 1, 0)
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}
