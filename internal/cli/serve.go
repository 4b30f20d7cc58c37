package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"final-pay-engine/internal/handler"
)

// NewServeCommand creates the serve command.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := opts.resolver()
			if err != nil {
				return err
			}

			srv := &fasthttp.Server{
				Handler: handler.New(resolver, opts.logger).Handle,
				Name:    "final-pay-engine",
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe(":" + port)
			}()
			opts.logger.Info("final pay engine starting", "port", port)

			select {
			case err := <-errCh:
				return WrapExitError(ExitCommandError, "server failed", err)
			case <-ctx.Done():
				opts.logger.Info("shutting down")
				return srv.Shutdown()
			}
		},
	}

	cmd.Flags().StringVar(&port, "port", opts.Env.Port, "listen port")
	return cmd
}
