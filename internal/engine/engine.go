// Package engine resolves final-pay deadlines.
//
// Resolve is pure: given the same input and the same evaluation date it
// returns the same result, and it never fails. Unknown jurisdictions get
// the next-payday default. Input checking happens in Process, before a
// Resolver ever sees the values.
package engine

import (
	"fmt"
	"time"

	"final-pay-engine/internal/calendar"
	"final-pay-engine/internal/model"
	"final-pay-engine/internal/rules"
)

const (
	sameDayLabel      = "Same day as separation"
	defaultRuleText   = "No specific state law - typically due by next regular payday"
	jurisdictionLabel = "State"

	// dueSoonDays is the last day count reported as due soon rather than upcoming.
	dueSoonDays = 3
)

type Resolver struct {
	rules *rules.Table
	now   func() time.Time
}

// New returns a resolver over table. A nil table means the built-in rules;
// a nil clock means time.Now.
func New(table *rules.Table, now func() time.Time) *Resolver {
	if table == nil {
		table = rules.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Resolver{rules: table, now: now}
}

func (r *Resolver) Rules() *rules.Table {
	return r.rules
}

// Resolve evaluates in against the resolver's clock.
func (r *Resolver) Resolve(in model.Input) model.Result {
	return r.ResolveAt(in, r.now())
}

// ResolveAt evaluates in as of the calendar date of now.
func (r *Resolver) ResolveAt(in model.Input, now time.Time) model.Result {
	code := rules.Normalize(in.Jurisdiction)
	j, known := r.rules.Lookup(code)
	lastDay := calendar.Civil(in.LastDayWorked)
	today := calendar.Civil(now)

	d := decide(j, known, in.SeparationReason)

	// Describe the jurisdiction by the rule actually applied, so the factor
	// never contradicts the citation.
	stateDesc := "Follows general guidelines"
	if d.outcome != model.OutcomeDefaultFallback {
		stateDesc = "Has specific final pay laws"
	}
	reasonDesc := "Standard timing applies"
	if in.SeparationReason == model.ReasonFired {
		reasonDesc = "Often requires faster payment"
	}
	factors := []model.Factor{
		{Factor: jurisdictionLabel, Value: code, Description: stateDesc},
		{Factor: "Separation Type", Value: in.SeparationReason.Label(), Description: reasonDesc},
		{Factor: "Pay Frequency", Value: in.PayFrequency.Label(), Description: "Affects next regular payday calculation"},
	}

	res := model.Result{Outcome: d.outcome}
	var deadline time.Time
	switch d.outcome {
	case model.OutcomeSameDay:
		res.IsSameDay = true
		deadline = lastDay
		res.EstimatedDeadline = sameDayLabel
		res.TimingLabel = "Same-Day Payment Required"
		res.TimingRules = []string{fmt.Sprintf("%s requires immediate payment upon %s", code, separationEvent(in.SeparationReason))}
	case model.OutcomeFixedDays:
		deadline = calendar.AddDays(lastDay, d.days)
		res.EstimatedDeadline = calendar.Format(deadline)
		res.TimingLabel = "Specific Deadline"
		res.TimingRules = []string{fmt.Sprintf("%s requires payment within %s", code, dayCount(d.days))}
	case model.OutcomeNextPayday:
		res.IsNextPayday = true
		deadline = NextPayday(lastDay, in.PayFrequency)
		res.EstimatedDeadline = calendar.Format(deadline)
		res.TimingLabel = "Due by Next Payday"
		res.TimingRules = []string{fmt.Sprintf("%s requires payment by next regular payday", code)}
	default:
		res.IsNextPayday = true
		deadline = NextPayday(lastDay, in.PayFrequency)
		res.EstimatedDeadline = calendar.Format(deadline)
		res.TimingLabel = "Due by Next Payday"
		res.TimingRules = []string{defaultRuleText}
	}

	res.Factors = append(factors, model.Factor{
		Factor:      "Last Day Worked",
		Value:       calendar.Format(lastDay),
		Description: "Start date for deadline calculation",
	})

	res.DeadlineDate = model.NewDate(deadline)
	res.DaysUntilDue = calendar.DaysBetween(today, deadline)
	res.Status = status(res.IsSameDay, res.DaysUntilDue)
	res.Message = summarize(res.IsSameDay, res.DaysUntilDue)
	return res
}

// decision is the rule branch taken for one input.
type decision struct {
	outcome model.Outcome
	days    int
}

func decide(j rules.Jurisdiction, known bool, reason model.SeparationReason) decision {
	if !known {
		return decision{outcome: model.OutcomeDefaultFallback}
	}
	rule, ok := j.RuleFor(reason)
	if !ok {
		return decision{outcome: model.OutcomeDefaultFallback}
	}
	switch rule.Kind {
	case rules.KindSameDay:
		return decision{outcome: model.OutcomeSameDay}
	case rules.KindFixedDays:
		return decision{outcome: model.OutcomeFixedDays, days: rule.Days}
	case rules.KindNextPayday:
		return decision{outcome: model.OutcomeNextPayday}
	}
	return decision{outcome: model.OutcomeDefaultFallback}
}

func separationEvent(reason model.SeparationReason) string {
	switch reason {
	case model.ReasonFired:
		return "termination"
	case model.ReasonLaidOff:
		return "layoff"
	case model.ReasonQuit:
		return "resignation"
	}
	return "separation"
}

func status(sameDay bool, days int) model.Status {
	switch {
	case sameDay:
		return model.StatusImmediate
	case days < 0:
		return model.StatusOverdue
	case days == 0:
		return model.StatusToday
	case days <= dueSoonDays:
		return model.StatusDueSoon
	}
	return model.StatusUpcoming
}

func summarize(sameDay bool, days int) string {
	switch {
	case sameDay:
		return "Final pay estimated to be due immediately upon separation"
	case days < 0:
		return fmt.Sprintf("Final pay was estimated to be due %s ago", dayCount(-days))
	case days == 0:
		return "Final pay estimated to be due today"
	}
	return fmt.Sprintf("Final pay estimated to be due in %s", dayCount(days))
}

// dayCount renders n with a singular noun only for exactly one.
func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
