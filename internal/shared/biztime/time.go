// Package biztime centralizes time handling. All storage and transport use
// UTC; date-bucket comparisons use the UTC calendar day.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DayKey returns the yyyy-mm-dd key used for daily trend bucketing.
// Days are compared by date-string prefix, not full timestamp equality.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// StartOfDayUTC truncates t to midnight UTC.
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
