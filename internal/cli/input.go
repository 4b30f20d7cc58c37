package cli

import (
	"github.com/spf13/cobra"

	"final-pay-engine/internal/calendar"
	"final-pay-engine/internal/model"
)

// inputFlags are the calculator inputs shared by resolve and scenarios.
type inputFlags struct {
	jurisdiction string
	reason       string
	lastDay      string
	frequency    string
	today        string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.jurisdiction, "jurisdiction", "j", "CA", "work state or district code")
	cmd.Flags().StringVarP(&f.reason, "reason", "r", string(model.ReasonQuit), "separation reason (quit|fired|laid_off)")
	cmd.Flags().StringVarP(&f.lastDay, "last-day", "d", "", "last day worked, YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&f.frequency, "frequency", "f", string(model.PayBiweekly), "pay frequency (weekly|biweekly|semimonthly|monthly)")
	cmd.Flags().StringVar(&f.today, "today", "", "evaluate as of this date, YYYY-MM-DD")
}

func (f *inputFlags) request(opts *RootOptions) *model.ResolveRequest {
	lastDay := f.lastDay
	if lastDay == "" {
		lastDay = opts.now().Format(calendar.ISOLayout)
	}
	return &model.ResolveRequest{
		Jurisdiction:     f.jurisdiction,
		SeparationReason: f.reason,
		LastDayWorked:    lastDay,
		PayFrequency:     f.frequency,
		Today:            f.today,
	}
}
