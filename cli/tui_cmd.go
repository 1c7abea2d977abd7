package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yllada/redshift-tray/tui"
)

// ErrNotTerminal is returned by `tui` when stdout is not a terminal.
var ErrNotTerminal = errors.New("the terminal UI needs an interactive terminal")

// NewTUICmd returns the `tui` command.
func NewTUICmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "adjust temperature and brightness in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, ok := cmd.OutOrStdout().(*os.File)
			if !ok || !term.IsTerminal(int(out.Fd())) {
				return ErrNotTerminal
			}

			if err := deps.ctrl.Startup(); err != nil {
				return err
			}
			return tui.Run(cmd.Context(), deps.ctrl, cmd.InOrStdin(), out)
		},
	}
}
