package model

import (
	"fmt"
	"time"

	"final-pay-engine/internal/calendar"
)

// Outcome is the branch the resolver took for an input.
type Outcome string

const (
	OutcomeSameDay         Outcome = "same_day"
	OutcomeNextPayday      Outcome = "next_payday"
	OutcomeFixedDays       Outcome = "fixed_days"
	OutcomeDefaultFallback Outcome = "default_fallback"
)

// Status summarizes DaysUntilDue for renderers.
type Status string

const (
	StatusImmediate Status = "immediate"
	StatusOverdue   Status = "overdue"
	StatusToday     Status = "today"
	StatusDueSoon   Status = "due_soon" // 1 to 3 days out
	StatusUpcoming  Status = "upcoming"
)

type Factor struct {
	Factor      string `json:"factor"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type Result struct {
	EstimatedDeadline string   `json:"estimated_deadline"`
	DeadlineDate      Date     `json:"deadline_date"`
	Outcome           Outcome  `json:"outcome"`
	IsSameDay         bool     `json:"is_same_day"`
	IsNextPayday      bool     `json:"is_next_payday"`
	DaysUntilDue      int      `json:"days_until_due"`
	Status            Status   `json:"status"`
	TimingLabel       string   `json:"timing_label"`
	Factors           []Factor `json:"factors"`
	TimingRules       []string `json:"timing_rules"`
	Message           string   `json:"message"`
}

// Date is a civil date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{calendar.Civil(t)}
}

func (d Date) String() string {
	return d.Format(calendar.ISOLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("date must be a JSON string, got %s", b)
	}
	t, ok := calendar.ParseDate(string(b[1 : len(b)-1]))
	if !ok {
		return fmt.Errorf("invalid date %s", b)
	}
	d.Time = t
	return nil
}
