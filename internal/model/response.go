package model

import "final-pay-engine/internal/jsonpatch"

type ResolveResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages []CalculationMessage `json:"messages"`
	Input    ResolveRequest       `json:"input"`
	// Result is nil when a CRITICAL message withheld the estimate.
	Result *Result `json:"result"`
}

type ScenarioResponse struct {
	CalculationMetadata CalculationMetadata  `json:"calculation_metadata"`
	Messages            []CalculationMessage `json:"messages"`
	Base                *Result              `json:"base"`
	Alternatives        []Alternative        `json:"alternatives"`
}

// Alternative is one shortcut: the base input with a single field changed.
type Alternative struct {
	Field   string         `json:"field"`
	Value   string         `json:"value"`
	Result  Result         `json:"result"`
	Changes []jsonpatch.Op `json:"changes"`
}

type JurisdictionInfo struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Quit    string `json:"quit"`
	Fired   string `json:"fired"`
	LaidOff string `json:"laid_off"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
