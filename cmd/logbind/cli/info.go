package cli

import (
	"fmt"

	"git.famapp.in/fampay-inc/logbind/pkg/binding"
	"git.famapp.in/fampay-inc/logbind/pkg/facade"
	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the facade version and the backend types behind the binding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			requested := binding.GetLoggerBinder().RequestedAPIVersion()
			compat := "compatible"
			if !facade.IsCompatible(requested) {
				compat = "incompatible"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "facade version:   %s\n", facade.APIVersion)
			fmt.Fprintf(out, "binding version:  %s (%s)\n", requested, compat)
			fmt.Fprintf(out, "logger factory:   %s\n", facade.BoundFactoryTypeName())
			fmt.Fprintf(out, "context adapter:  %s\n", facade.BoundMDCAdapterTypeName())
			return nil
		},
	}
}
