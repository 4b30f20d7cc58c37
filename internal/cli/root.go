package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"final-pay-engine/internal/config"
	"final-pay-engine/internal/engine"
	"final-pay-engine/internal/rules"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format    string // "json" | "text"
	RulesFile string
	LogLevel  string

	Env config.Env
	// Now is the evaluation clock; nil means time.Now.
	Now func() time.Time

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the finalpay CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Env: config.Load()})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "finalpay",
		Short:         "Estimate the statutory deadline for a final paycheck",
		Long:          "Estimates when an employee's final paycheck is due from their work state, reason for separation, last day worked and pay frequency. Estimates are not legal advice.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.LogLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.RulesFile, "rules", opts.Env.RulesFile, "YAML rule file replacing the built-in jurisdiction rules")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.Env.LogLevel, "log level (debug|info|warn|error)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewScenariosCommand(opts))
	cmd.AddCommand(NewRulesCommand(opts))

	return cmd
}

// resolver builds a resolver over the configured rule source.
func (o *RootOptions) resolver() (*engine.Resolver, error) {
	table, err := rules.Load(rules.Source{
		File:    o.RulesFile,
		URL:     o.Env.RulesURL,
		Timeout: o.Env.RulesTimeout,
	}, o.logger)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading rules", err)
	}
	return engine.New(table, o.Now), nil
}

func (o *RootOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
