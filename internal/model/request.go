package model

// ResolveRequest carries the raw calculator inputs as supplied by a caller.
// Nothing here has been validated; see validate and engine.Process.
type ResolveRequest struct {
	Jurisdiction     string `json:"jurisdiction"`
	SeparationReason string `json:"separation_reason"`
	LastDayWorked    string `json:"last_day_worked"`
	PayFrequency     string `json:"pay_frequency"`

	// Today pins the evaluation date (YYYY-MM-DD). Empty means the
	// resolver's clock.
	Today string `json:"today,omitempty"`
}
