package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Run executes the command line and returns the process exit status.
// SIGINT and SIGTERM cancel the command context.
func Run(ctx context.Context, args []string, deps *Deps, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if deps == nil {
		deps = &Deps{}
	}
	if args == nil {
		args = []string{}
	}
	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return deps.exitCode
}
