package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yllada/redshift-tray/config"
)

// NewBoundsCmd returns the `bounds` command, the terminal equivalent of
// the settings dialog.
//
//	redshift-tray bounds --min 5000 --max 6000
//	redshift-tray bounds --position top-right
func NewBoundsCmd(deps *Deps) *cobra.Command {
	var (
		lo, hi   int
		position string
	)

	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "set the slider range and popup position",
		Long: `Store the temperature slider range and the popup position. The stored
temperature is clamped into the new range; when that changes it,
redshift.conf is saved and the override re-applied. A flag that is not
given keeps its stored value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps.load()

			if !cmd.Flags().Changed("min") {
				lo = deps.settings.TemperatureMin()
			}
			if !cmd.Flags().Changed("max") {
				hi = deps.settings.TemperatureMax()
			}
			pos := deps.settings.WindowPosition()
			if cmd.Flags().Changed("position") {
				p, err := config.ParseWindowPosition(position)
				if err != nil {
					return err
				}
				pos = p
			}

			before := deps.tool.DayTemperature()
			if err := warnOnSaveError(cmd, deps.ctrl.UpdateSettings(lo, hi, pos)); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Range %d-%dK, position %s\n", lo, hi, pos)
			if after := deps.tool.DayTemperature(); after != before {
				fmt.Fprintf(out, "  Temperature clamped from %dK to %dK\n", before, after)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&lo, "min", 0, "lowest slider temperature in Kelvin")
	cmd.Flags().IntVar(&hi, "max", 0, "highest slider temperature in Kelvin")
	cmd.Flags().StringVarP(&position, "position", "p", "", positionFlagHelp())

	return cmd
}

// positionFlagHelp lists the accepted --position values.
func positionFlagHelp() string {
	help := "popup position:"
	for _, p := range config.WindowPositions() {
		help += fmt.Sprintf(" %d=%q", int(p), p.String())
	}
	return help
}
