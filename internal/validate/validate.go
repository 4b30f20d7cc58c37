// Package validate checks raw calculator inputs at the request boundary.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"final-pay-engine/internal/calendar"
	"final-pay-engine/internal/model"
)

var (
	ErrMissingJurisdiction = errors.New("jurisdiction required")
	ErrInvalidDate         = errors.New("date must be a valid calendar date in YYYY-MM-DD form")
	ErrInvalidReason       = errors.New("separation reason must be one of quit, fired, laid_off")
	ErrInvalidFrequency    = errors.New("pay frequency must be one of weekly, biweekly, semimonthly, monthly")
)

// Jurisdiction checks that a code was supplied. Unknown codes are fine; they
// get the default rule.
func Jurisdiction(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrMissingJurisdiction
	}
	return nil
}

// Date parses a YYYY-MM-DD value.
func Date(s string) (time.Time, error) {
	t, ok := calendar.ParseDate(strings.TrimSpace(s))
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func SeparationReason(s string) (model.SeparationReason, error) {
	r := model.SeparationReason(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidReason, s)
	}
	return r, nil
}

func PayFrequency(s string) (model.PayFrequency, error) {
	f := model.PayFrequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
	return f, nil
}
