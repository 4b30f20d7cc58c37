// Package calendar does civil-date arithmetic. Every value it returns is
// midnight UTC, so day differences are exact multiples of 24h regardless of
// the caller's zone or daylight-saving transitions.
package calendar

import (
	"math"
	"time"
)

const (
	ISOLayout  = "2006-01-02"
	LongLayout = "Monday, January 2, 2006"
)

// ParseDate parses "YYYY-MM-DD" without going through time.Parse layout
// matching. Dates that do not exist on the calendar (2026-02-30) are rejected.
func ParseDate(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for i := 0; i < len(s); i++ {
		if i == 4 || i == 7 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if t.Month() != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// Civil drops the time of day, keeping the calendar date as seen in t's
// own location.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func AddDays(t time.Time, n int) time.Time {
	return Civil(t).AddDate(0, 0, n)
}

// AddMonths moves t by n calendar months keeping the day of month. When the
// target month is shorter the result is clamped to its last day, so
// Jan 31 + 1 month is Feb 28 (Feb 29 in leap years).
func AddMonths(t time.Time, n int) time.Time {
	c := Civil(t)
	y, m, d := c.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := DaysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween returns the signed number of days from `from` to `to`,
// rounded up. Negative when `to` is earlier.
func DaysBetween(from, to time.Time) int {
	diff := Civil(to).Sub(Civil(from))
	return int(math.Ceil(diff.Hours() / 24))
}

// Format renders t as "Monday, March 2, 2026".
func Format(t time.Time) string {
	return Civil(t).Format(LongLayout)
}
