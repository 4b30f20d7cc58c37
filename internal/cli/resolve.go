package cli

import (
	"github.com/spf13/cobra"

	"final-pay-engine/internal/model"
)

// NewResolveCommand creates the resolve command.
func NewResolveCommand(opts *RootOptions) *cobra.Command {
	flags := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Estimate the final paycheck deadline for one set of inputs",
		Example: `  finalpay resolve --jurisdiction CA --reason quit --last-day 2026-03-02 --frequency biweekly
  finalpay resolve -j ny -r fired -d 2026-03-02 -f weekly --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := opts.resolver()
			if err != nil {
				return err
			}
			resp := resolver.Process(flags.request(opts))
			out := cmd.OutOrStdout()

			if opts.Format == "json" {
				if err := writeJSON(out, resp); err != nil {
					return WrapExitError(ExitCommandError, "writing output", err)
				}
			} else {
				writeMessages(out, resp.CalculationResult.Messages)
				if resp.CalculationResult.Result != nil {
					writeResult(out, resp.CalculationResult.Result)
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
