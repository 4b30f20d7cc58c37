package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2026-03-02")
	require.True(t, ok)
	assert.Equal(t, date(2026, time.March, 2), got)

	for _, bad := range []string{"", "2026-3-2", "2026/03/02", "2026-13-01", "2026-02-30", "2026-00-10", "20a6-01-01", "2026-01-01T00:00"} {
		_, ok := ParseDate(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}

	_, ok = ParseDate("2028-02-29")
	assert.True(t, ok, "leap day")
}

func TestCivilKeepsLocalDate(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	late := time.Date(2026, time.March, 2, 23, 30, 0, 0, loc)
	assert.Equal(t, date(2026, time.March, 2), Civil(late))
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		from time.Time
		n    int
		want time.Time
	}{
		{date(2026, time.January, 31), 1, date(2026, time.February, 28)},
		{date(2028, time.January, 31), 1, date(2028, time.February, 29)},
		{date(2026, time.March, 31), 1, date(2026, time.April, 30)},
		{date(2026, time.December, 15), 1, date(2027, time.January, 15)},
		{date(2026, time.March, 2), 1, date(2026, time.April, 2)},
		{date(2026, time.March, 31), -1, date(2026, time.February, 28)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AddMonths(tt.from, tt.n), "%s %+d months", tt.from.Format(ISOLayout), tt.n)
	}
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, date(2026, time.May, 13), AddDays(date(2026, time.March, 2), 72))
	assert.Equal(t, date(2026, time.March, 2), AddDays(date(2026, time.March, 2), 0))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 7, DaysBetween(date(2026, time.March, 2), date(2026, time.March, 9)))
	assert.Equal(t, 0, DaysBetween(date(2026, time.March, 2), date(2026, time.March, 2)))
	assert.Equal(t, -10, DaysBetween(date(2026, time.March, 19), date(2026, time.March, 9)))

	// Crosses the US spring-forward weekend; still a whole number of days.
	ny, err := time.LoadLocation("America/New_York")
	if err == nil {
		from := time.Date(2026, time.March, 7, 0, 0, 0, 0, ny)
		to := time.Date(2026, time.March, 9, 0, 0, 0, 0, ny)
		assert.Equal(t, 2, DaysBetween(from, to))
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Monday, March 2, 2026", Format(date(2026, time.March, 2)))
	assert.Equal(t, "Wednesday, May 13, 2026", Format(date(2026, time.May, 13)))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 28, DaysIn(date(2026, time.February, 10)))
	assert.Equal(t, 29, DaysIn(date(2028, time.February, 1)))
	assert.Equal(t, 31, DaysIn(date(2026, time.December, 31)))
}
