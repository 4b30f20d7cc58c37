package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"final-pay-engine/internal/model"
)

// NewScenariosCommand creates the scenarios command, which shows how the
// deadline moves when the separation reason or state changes.
func NewScenariosCommand(opts *RootOptions) *cobra.Command {
	flags := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Compare the deadline across other separation reasons and common states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := opts.resolver()
			if err != nil {
				return err
			}
			resp := resolver.Scenarios(flags.request(opts))
			out := cmd.OutOrStdout()

			if opts.Format == "json" {
				if err := writeJSON(out, resp); err != nil {
					return WrapExitError(ExitCommandError, "writing output", err)
				}
			} else {
				writeMessages(out, resp.Messages)
				if resp.Base != nil {
					fmt.Fprintf(out, "%-28s %-30s %s\n", "Current", resp.Base.EstimatedDeadline, resp.Base.Message)
					for _, alt := range resp.Alternatives {
						label := fmt.Sprintf("%s=%s", alt.Field, alt.Value)
						fmt.Fprintf(out, "%-28s %-30s %s\n", label, alt.Result.EstimatedDeadline, alt.Result.Message)
					}
				}
			}

			if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
				return NewExitError(ExitFailure, "input rejected; no estimate produced")
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
