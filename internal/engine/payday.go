package engine

import (
	"time"

	"final-pay-engine/internal/calendar"
	"final-pay-engine/internal/model"
)

// NextPayday projects the next regular payday from the last day worked by a
// fixed offset per pay frequency. It does not model real payroll calendars:
// semimonthly is a flat 15 days and monthly is one calendar month, clamped
// to the end of shorter months. Unknown frequencies use the biweekly offset.
func NextPayday(lastDay time.Time, freq model.PayFrequency) time.Time {
	switch freq {
	case model.PayWeekly:
		return calendar.AddDays(lastDay, 7)
	case model.PaySemimonthly:
		return calendar.AddDays(lastDay, 15)
	case model.PayMonthly:
		return calendar.AddMonths(lastDay, 1)
	}
	return calendar.AddDays(lastDay, 14)
}
