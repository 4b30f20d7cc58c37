package cli

import (
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"final-pay-engine/internal/model"
)

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func writeMessages(w io.Writer, msgs []model.CalculationMessage) {
	for _, m := range msgs {
		fmt.Fprintf(w, "%s %s: %s\n", m.Level, m.Code, m.Message)
	}
	if len(msgs) > 0 {
		fmt.Fprintln(w)
	}
}

// writeResult renders a result for a terminal: headline, factors as two
// columns plus description, and the timing rules as a bulleted list.
func writeResult(w io.Writer, res *model.Result) {
	fmt.Fprintf(w, "Estimated deadline: %s\n", res.EstimatedDeadline)
	fmt.Fprintf(w, "Timing:             %s\n", res.TimingLabel)
	fmt.Fprintf(w, "Days until due:     %s\n", daysDisplay(res))
	fmt.Fprintf(w, "%s\n", res.Message)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Factors:")
	for _, f := range res.Factors {
		fmt.Fprintf(w, "  %-16s %-30s %s\n", f.Factor, f.Value, f.Description)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Timing rules:")
	for _, r := range res.TimingRules {
		fmt.Fprintf(w, "  - %s\n", r)
	}
}

func daysDisplay(res *model.Result) string {
	switch res.Status {
	case model.StatusImmediate:
		return "Immediate"
	case model.StatusOverdue:
		return "Overdue"
	}
	return strconv.Itoa(res.DaysUntilDue)
}
