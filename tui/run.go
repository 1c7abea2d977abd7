package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yllada/redshift-tray/controller"
)

// Run shows the slider panel on the terminal until the user quits. It
// returns the error that ended the program early, such as a missing
// redshift binary.
func Run(ctx context.Context, ctrl *controller.Controller, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(ctrl),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal UI: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
