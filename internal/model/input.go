package model

import "time"

type SeparationReason string

const (
	ReasonQuit    SeparationReason = "quit"
	ReasonFired   SeparationReason = "fired"
	ReasonLaidOff SeparationReason = "laid_off"
)

// SeparationReasons lists every reason in display order.
var SeparationReasons = []SeparationReason{ReasonQuit, ReasonFired, ReasonLaidOff}

func (r SeparationReason) Valid() bool {
	switch r {
	case ReasonQuit, ReasonFired, ReasonLaidOff:
		return true
	}
	return false
}

// Label returns the display label. Unknown reasons render as their raw value.
func (r SeparationReason) Label() string {
	switch r {
	case ReasonQuit:
		return "Voluntary Resignation"
	case ReasonFired:
		return "Termination"
	case ReasonLaidOff:
		return "Layoff"
	}
	return string(r)
}

type PayFrequency string

const (
	PayWeekly      PayFrequency = "weekly"
	PayBiweekly    PayFrequency = "biweekly"
	PaySemimonthly PayFrequency = "semimonthly"
	PayMonthly     PayFrequency = "monthly"
)

var PayFrequencies = []PayFrequency{PayWeekly, PayBiweekly, PaySemimonthly, PayMonthly}

func (f PayFrequency) Valid() bool {
	switch f {
	case PayWeekly, PayBiweekly, PaySemimonthly, PayMonthly:
		return true
	}
	return false
}

func (f PayFrequency) Label() string {
	switch f {
	case PayWeekly:
		return "Weekly"
	case PayBiweekly:
		return "Bi-weekly"
	case PaySemimonthly:
		return "Semi-monthly"
	case PayMonthly:
		return "Monthly"
	}
	return string(f)
}

// Input is a validated calculator input. LastDayWorked is a civil date;
// any time-of-day component is ignored.
type Input struct {
	Jurisdiction     string
	SeparationReason SeparationReason
	LastDayWorked    time.Time
	PayFrequency     PayFrequency
}

// WithReason returns a copy of in with the separation reason replaced.
// Scenario shortcuts vary one field and hold the rest.
func (in Input) WithReason(r SeparationReason) Input {
	in.SeparationReason = r
	return in
}

func (in Input) WithJurisdiction(code string) Input {
	in.Jurisdiction = code
	return in
}
