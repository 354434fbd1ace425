package cli

import (
	"context"
	"os/signal"
	"syscall"

	"git.famapp.in/fampay-inc/logbind/cmd/logbind/delivery/metrics"
	"git.famapp.in/fampay-inc/logbind/internal/config"
	"git.famapp.in/fampay-inc/logbind/pkg/facade"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type demoOptions struct {
	loggerName  string
	count       int
	metricsPort int
	serve       bool
}

func newDemoCommand() *cobra.Command {
	opts := &demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Log through the facade with a request scoped diagnostic context",
		Args:  cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			if !cmd.Flags().Changed("metrics-port") {
				opts.metricsPort = config.GetConfig().MetricsPort
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runDemo(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.loggerName, "logger", "logbind.demo", "name of the logger to request from the facade")
	cmd.Flags().IntVar(&opts.count, "count", 3, "number of entries to log")
	cmd.Flags().IntVar(&opts.metricsPort, "metrics-port", 0, "port for the Prometheus endpoint (default METRICS_PORT)")
	cmd.Flags().BoolVar(&opts.serve, "serve", false, "keep serving metrics until interrupted")
	return cmd
}

func runDemo(ctx context.Context, opts *demoOptions) error {
	log := facade.GetLogger(opts.loggerName)

	if opts.serve {
		metrics.StartMetricsServer(ctx, opts.metricsPort)
	}

	reqCtx := facade.WithContextMDC(ctx)
	remove, err := facade.PutCloseable(reqCtx, "request_id", uuid.NewString())
	if err != nil {
		return err
	}
	defer remove()

	scoped := facade.WithMDC(reqCtx, log)
	for i := 0; i < opts.count; i++ {
		scoped.Info("demo entry", "seq", i)
	}
	scoped.Debug("demo finished", "entries", opts.count)

	if opts.serve {
		log.Info("serving metrics until interrupted", "port", opts.metricsPort)
		<-ctx.Done()
		log.Info("shutting down")
	}
	return nil
}
