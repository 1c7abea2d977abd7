package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yllada/redshift-tray/store"
)

// NewSetCmd returns the `set` command, the terminal equivalent of the
// popup's Apply button.
//
//	redshift-tray set --temperature 4500
//	redshift-tray set -t 6500 -b 0.8
func NewSetCmd(deps *Deps) *cobra.Command {
	var (
		temperature int
		brightness  float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "store and apply a manual override",
		Long: `Write the temperature to temp-day and temp-night, the brightness to all
brightness keys, disable transitions, save redshift.conf and apply the
override. A flag that is not given keeps its stored value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps.load()

			if !cmd.Flags().Changed("temperature") {
				temperature = deps.tool.DayTemperature()
			}
			if !cmd.Flags().Changed("brightness") {
				brightness = deps.tool.Brightness()
			}

			if err := warnOnSaveError(cmd, deps.ctrl.ApplyOverride(temperature, brightness)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Applied %dK, brightness %s\n", temperature, store.FormatFloat(brightness))
			return nil
		},
	}

	cmd.Flags().IntVarP(&temperature, "temperature", "t", 0, "color temperature in Kelvin (1000-25000)")
	cmd.Flags().Float64VarP(&brightness, "brightness", "b", 0, "brightness ratio (0.1-1.0)")

	return cmd
}
