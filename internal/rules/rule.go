// Package rules holds the jurisdiction final-pay rule table.
//
// A Rule is one of three outcomes: payment on the day of separation, payment
// within a fixed number of calendar days, or payment by the next scheduled
// payday. Tables are built once and never modified; share them freely.
package rules

import (
	"fmt"
	"strconv"

	"final-pay-engine/internal/model"
)

type Kind int

const (
	KindUnset Kind = iota
	KindSameDay
	KindFixedDays
	KindNextPayday
)

// NextPaydayToken is how a next-payday rule is written in rule documents.
const NextPaydayToken = "next_payday"

// MaxDays caps a fixed day count at ten years. The rule document schema
// carries the same bound.
const MaxDays = 3650

type Rule struct {
	Kind Kind
	// Days is set only for KindFixedDays and is in 1..MaxDays.
	Days int
}

// NextPayday is the "next scheduled payday" rule.
var NextPayday = Rule{Kind: KindNextPayday}

// Days returns the rule for a day count. Zero is the same-day rule.
func Days(n int) Rule {
	if n == 0 {
		return Rule{Kind: KindSameDay}
	}
	return Rule{Kind: KindFixedDays, Days: n}
}

func (r Rule) valid() bool {
	switch r.Kind {
	case KindSameDay, KindNextPayday:
		return r.Days == 0
	case KindFixedDays:
		return r.Days > 0 && r.Days <= MaxDays
	}
	return false
}

// String renders the rule the way rule documents spell it.
func (r Rule) String() string {
	switch r.Kind {
	case KindSameDay:
		return "0"
	case KindFixedDays:
		return strconv.Itoa(r.Days)
	case KindNextPayday:
		return NextPaydayToken
	}
	return "unset"
}

type Jurisdiction struct {
	Code    string
	Name    string
	Quit    Rule
	Fired   Rule
	LaidOff Rule
}

// RuleFor returns the rule for a separation reason. Reasons outside the
// closed set have no rule.
func (j Jurisdiction) RuleFor(reason model.SeparationReason) (Rule, bool) {
	switch reason {
	case model.ReasonQuit:
		return j.Quit, true
	case model.ReasonFired:
		return j.Fired, true
	case model.ReasonLaidOff:
		return j.LaidOff, true
	}
	return Rule{}, false
}

// Info flattens j for listing endpoints.
func (j Jurisdiction) Info() model.JurisdictionInfo {
	return model.JurisdictionInfo{
		Code:    j.Code,
		Name:    j.Name,
		Quit:    j.Quit.String(),
		Fired:   j.Fired.String(),
		LaidOff: j.LaidOff.String(),
	}
}

func (j Jurisdiction) validate() error {
	for _, r := range []struct {
		reason model.SeparationReason
		rule   Rule
	}{
		{model.ReasonQuit, j.Quit},
		{model.ReasonFired, j.Fired},
		{model.ReasonLaidOff, j.LaidOff},
	} {
		if !r.rule.valid() {
			return fmt.Errorf("jurisdiction %s: invalid %s rule %+v", j.Code, r.reason, r.rule)
		}
	}
	return nil
}
