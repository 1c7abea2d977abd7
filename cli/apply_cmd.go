package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yllada/redshift-tray/store"
)

// NewApplyCmd returns the `apply` command, which re-applies the stored
// override the way the tray does at startup.
func NewApplyCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "apply the stored override",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.ctrl.Startup(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Applied %dK, brightness %s\n",
				deps.tool.DayTemperature(), store.FormatFloat(deps.tool.Brightness()))
			return nil
		},
	}
}

// NewResetCmd returns the `reset` command, which hands control back to
// redshift's automatic schedule like the tray does on exit.
func NewResetCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "return redshift to its automatic schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.process.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Reset to automatic mode")
			return nil
		},
	}
}
