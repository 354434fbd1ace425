package cli

import (
	"git.famapp.in/fampay-inc/logbind/pkg/binding"
	"github.com/spf13/cobra"
)

// NewRootCommand wires the binding into the facade before any subcommand runs.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "logbind",
		Short:        "Inspect and exercise the zap binding of the logging facade",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return binding.Install()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			// stdout/stderr sinks report EINVAL on sync; nothing to do about it.
			_ = binding.GetLoggerBinder().Sync()
		},
	}

	cmd.AddCommand(newInfoCommand())
	cmd.AddCommand(newDemoCommand())
	return cmd
}
