package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeMissingJurisdiction     = "MISSING_JURISDICTION"
	CodeInvalidLastDayWorked    = "INVALID_LAST_DAY_WORKED"
	CodeInvalidSeparationReason = "INVALID_SEPARATION_REASON"
	CodeInvalidPayFrequency     = "INVALID_PAY_FREQUENCY"
	CodeInvalidToday            = "INVALID_TODAY"
	CodeUnknownJurisdiction     = "UNKNOWN_JURISDICTION"
	CodeDeadlinePassed          = "DEADLINE_PASSED"
)
