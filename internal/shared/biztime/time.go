// Package biztime centralises "now" so that every timestamp written by the
// service is UTC.
package biztime

import "time"

var nowFunc = time.Now

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return nowFunc().UTC()
}

// AddDays returns t shifted by the given number of whole days.
func AddDays(t time.Time, days int) time.Time {
	return t.Add(time.Duration(days) * 24 * time.Hour)
}

// SetNowFunc overrides the clock and returns a restore function. Tests only.
func SetNowFunc(fn func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = fn
	return func() { nowFunc = prev }
}
