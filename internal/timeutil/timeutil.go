// Package timeutil holds the small pure duration helpers the template
// tables are written in terms of.
package timeutil

import "time"

// Offset builds a duration from a minutes:seconds pair, the notation
// meeting templates are specified in.
func Offset(min, sec int) time.Duration {
	return time.Duration(min)*time.Minute + time.Duration(sec)*time.Second
}

// Minutes is shorthand for a whole-minute duration.
func Minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

// DayKey truncates a meeting timestamp to its calendar day in UTC,
// the canonical form of a meeting-log key.
func DayKey(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
