package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"final-pay-engine/internal/model"
	"final-pay-engine/internal/rules"
)

// NewRulesCommand groups the rule table subcommands.
func NewRulesCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and check jurisdiction rule tables",
	}
	cmd.AddCommand(newRulesListCommand(opts))
	cmd.AddCommand(newRulesCheckCommand(opts))
	return cmd
}

func newRulesListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the active rule table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := opts.resolver()
			if err != nil {
				return err
			}
			js := resolver.Rules().Jurisdictions()
			infos := make([]model.JurisdictionInfo, 0, len(js))
			for _, j := range js {
				infos = append(infos, j.Info())
			}

			out := cmd.OutOrStdout()
			if opts.Format == "json" {
				return writeJSON(out, infos)
			}
			fmt.Fprintf(out, "%-4s %-18s %-12s %-12s %s\n", "CODE", "NAME", "QUIT", "FIRED", "LAID_OFF")
			for _, i := range infos {
				fmt.Fprintf(out, "%-4s %-18s %-12s %-12s %s\n", i.Code, i.Name, i.Quit, i.Fired, i.LaidOff)
			}
			return nil
		},
	}
}

func newRulesCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a YAML rule file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := rules.LoadFile(args[0])
			if err != nil {
				return WrapExitError(ExitFailure, "rule file invalid", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d jurisdictions\n", args[0], table.Len())
			return nil
		},
	}
}
