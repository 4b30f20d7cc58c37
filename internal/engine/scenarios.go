package engine

import (
	"time"

	json "github.com/goccy/go-json"

	"final-pay-engine/internal/jsonpatch"
	"final-pay-engine/internal/model"
	"final-pay-engine/internal/rules"
)

// QuickJurisdictions are the jurisdictions offered as one-tap shortcuts.
var QuickJurisdictions = []string{"CA", "NY", "TX", "MA"}

// Scenarios resolves the request and every shortcut around it: each other
// separation reason, then each other quick jurisdiction, all other fields
// held constant. Each alternative carries the patch from the base result.
func (r *Resolver) Scenarios(req *model.ResolveRequest) *model.ScenarioResponse {
	start := time.Now()

	in, now, msgs := r.parse(req)
	if hasCritical(msgs) {
		return &model.ScenarioResponse{
			CalculationMetadata: metadata(start, model.OutcomeFailure),
			Messages:            number(msgs),
			Alternatives:        []model.Alternative{},
		}
	}

	base := r.ResolveAt(in, now)
	msgs = append(msgs, warnings(in, base)...)

	var alts []model.Alternative
	for _, reason := range model.SeparationReasons {
		if reason == in.SeparationReason {
			continue
		}
		alt := r.ResolveAt(in.WithReason(reason), now)
		alts = append(alts, alternative("separation_reason", string(reason), base, alt))
	}
	current := rules.Normalize(in.Jurisdiction)
	for _, code := range QuickJurisdictions {
		if code == current {
			continue
		}
		alt := r.ResolveAt(in.WithJurisdiction(code), now)
		alts = append(alts, alternative("jurisdiction", code, base, alt))
	}

	return &model.ScenarioResponse{
		CalculationMetadata: metadata(start, model.OutcomeSuccess),
		Messages:            number(msgs),
		Base:                &base,
		Alternatives:        alts,
	}
}

func alternative(field, value string, base, alt model.Result) model.Alternative {
	changes := jsonpatch.Diff(document(base), document(alt), "")
	if changes == nil {
		changes = []jsonpatch.Op{}
	}
	return model.Alternative{
		Field:   field,
		Value:   value,
		Result:  alt,
		Changes: changes,
	}
}

// document round-trips a result through JSON so it can be diffed as a
// generic tree.
func document(res model.Result) interface{} {
	b, err := json.Marshal(res)
	if err != nil {
		return nil
	}
	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil
	}
	return doc
}
