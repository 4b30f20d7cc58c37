package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"final-pay-engine/internal/calendar"
	"final-pay-engine/internal/model"
	"final-pay-engine/internal/rules"
	"final-pay-engine/internal/validate"
)

// Process validates a raw request and resolves it. Every invalid field
// produces a CRITICAL message; if there are any, the estimate is withheld
// and the outcome is FAILURE.
func (r *Resolver) Process(req *model.ResolveRequest) *model.ResolveResponse {
	start := time.Now()

	in, now, msgs := r.parse(req)

	var result *model.Result
	outcome := model.OutcomeFailure
	if !hasCritical(msgs) {
		res := r.ResolveAt(in, now)
		result = &res
		outcome = model.OutcomeSuccess
		msgs = append(msgs, warnings(in, res)...)
	}

	return &model.ResolveResponse{
		CalculationMetadata: metadata(start, outcome),
		CalculationResult: model.CalculationResult{
			Messages: number(msgs),
			Input:    *req,
			Result:   result,
		},
	}
}

// parse converts the raw request into an Input and the evaluation instant.
func (r *Resolver) parse(req *model.ResolveRequest) (model.Input, time.Time, []model.CalculationMessage) {
	var (
		in   model.Input
		msgs []model.CalculationMessage
		err  error
	)

	if err = validate.Jurisdiction(req.Jurisdiction); err != nil {
		msgs = append(msgs, critical(model.CodeMissingJurisdiction, "jurisdiction", err))
	}
	in.Jurisdiction = req.Jurisdiction

	if in.SeparationReason, err = validate.SeparationReason(req.SeparationReason); err != nil {
		msgs = append(msgs, critical(model.CodeInvalidSeparationReason, "separation_reason", err))
	}
	if in.LastDayWorked, err = validate.Date(req.LastDayWorked); err != nil {
		msgs = append(msgs, critical(model.CodeInvalidLastDayWorked, "last_day_worked", err))
	}
	if in.PayFrequency, err = validate.PayFrequency(req.PayFrequency); err != nil {
		msgs = append(msgs, critical(model.CodeInvalidPayFrequency, "pay_frequency", err))
	}

	now := r.now()
	if req.Today != "" {
		if now, err = validate.Date(req.Today); err != nil {
			msgs = append(msgs, critical(model.CodeInvalidToday, "today", err))
		}
	}
	return in, now, msgs
}

func warnings(in model.Input, res model.Result) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	if res.Outcome == model.OutcomeDefaultFallback {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeUnknownJurisdiction,
			Field:   "jurisdiction",
			Message: fmt.Sprintf("No specific rule for %s; the next regular payday default applies", rules.Normalize(in.Jurisdiction)),
		})
	}
	if !res.IsSameDay && res.DaysUntilDue < 0 {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeDeadlinePassed,
			Message: fmt.Sprintf("The estimated deadline of %s has passed", res.DeadlineDate.Format(calendar.ISOLayout)),
		})
	}
	return msgs
}

func critical(code, field string, err error) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    code,
		Field:   field,
		Message: err.Error(),
	}
}

func hasCritical(msgs []model.CalculationMessage) bool {
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return true
		}
	}
	return false
}

// number assigns sequential IDs and never returns nil, so the JSON form is
// always an array.
func number(msgs []model.CalculationMessage) []model.CalculationMessage {
	if msgs == nil {
		return []model.CalculationMessage{}
	}
	for i := range msgs {
		msgs[i].ID = i
	}
	return msgs
}

func metadata(start time.Time, outcome string) model.CalculationMetadata {
	elapsed := time.Since(start)
	now := time.Now().UTC()
	return model.CalculationMetadata{
		CalculationID:          uuid.New().String(),
		CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
		CalculationCompletedAt: now.Format(time.RFC3339),
		CalculationDurationMs:  elapsed.Milliseconds(),
		CalculationOutcome:     outcome,
	}
}
