package models

import (
	"time"
)

// DateLayout is the calendar-date form used for ledger dates. It sorts
// lexicographically in chronological order.
const DateLayout = "2006-01-02"

// TimestampLayout is RFC3339 with fixed millisecond precision, so stored
// timestamps also sort lexicographically.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats t in UTC using TimestampLayout
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTime parses a string in RFC3339 format to time.Time
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FormatDate formats t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current UTC date as YYYY-MM-DD
func Today() string {
	return FormatDate(Now())
}

// IsDate reports whether s is a valid YYYY-MM-DD date
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
