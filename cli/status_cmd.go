package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yllada/redshift-tray/store"
)

// NewStatusCmd returns the `status` command.
//
//	redshift-tray status
func NewStatusCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "show the stored redshift values and tray settings",
		Long: `Show every key of redshift.conf and of the tray settings with its
effective value and whether it is stored or a default. Nothing is applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps.load()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tKEY\tVALUE\tSOURCE")
			fmt.Fprintln(w, "----\t---\t-----\t------")
			writeStore(w, deps.tool.Path(), deps.tool.Store)
			writeStore(w, deps.settings.Path(), deps.settings.Store)
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nWindow position: %s\n", deps.settings.WindowPosition())
			return nil
		},
	}
}

func writeStore(w *tabwriter.Writer, path string, s *store.Store) {
	for _, key := range s.Keys() {
		value, err := s.Get(key.Name)
		if err != nil {
			value = "-"
		}
		source := "default"
		if s.IsSet(key.Name) {
			source = "stored"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", filepath.Base(path), key.Name, value, source)
	}
}
