// Package redshift provides access to redshift's own configuration file and
// launches the redshift binary.
// This file contains the Process type which issues one-shot commands.
package redshift

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/store"
)

// Launcher starts a program without waiting for it.
type Launcher interface {
	Launch(name string, args ...string) error
}

// ExecLauncher starts programs as detached child processes: own session,
// no stdio, never awaited by the caller.
type ExecLauncher struct{}

// Launch resolves name on PATH and starts it. It returns ErrToolNotInstalled
// when the binary cannot be found or executed.
func (ExecLauncher) Launch(name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrToolNotInstalled, name, err)
	}

	cmd := exec.Command(path, args...)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) || errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s: %v", common.ErrToolNotInstalled, name, err)
		}
		return fmt.Errorf("%w: %v", common.ErrLaunchFailed, err)
	}

	// Reap the child so it does not linger as a zombie.
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Process translates the current Config into redshift invocations.
// It does not track redshift's mode; redshift owns that state.
type Process struct {
	config   *Config
	binary   string
	launcher Launcher
}

// NewProcess creates a Process. An empty binary means "redshift" on PATH;
// a nil launcher means ExecLauncher.
func NewProcess(config *Config, binary string, launcher Launcher) *Process {
	if binary == "" {
		binary = common.ToolName
	}
	if launcher == nil {
		launcher = ExecLauncher{}
	}
	return &Process{
		config:   config,
		binary:   binary,
		launcher: launcher,
	}
}

// Binary returns the executable the process launches.
func (p *Process) Binary() string {
	return p.binary
}

// ApplyArgs returns the arguments for a one-shot manual override.
func ApplyArgs(temp int, brightness float64) []string {
	return []string{"-x", "-P", "-O", strconv.Itoa(temp), "-b", store.FormatFloat(brightness)}
}

// ResetArgs returns the arguments that clear any manual override.
func ResetArgs() []string {
	return []string{"-x", "-P"}
}

// Apply puts redshift into manual override using temp-day and brightness.
func (p *Process) Apply() error {
	temp := p.config.DayTemperature()
	brightness := p.config.Brightness()

	common.LogInfo("Applying manual override: %dK, brightness %s", temp, store.FormatFloat(brightness))
	if err := p.launcher.Launch(p.binary, ApplyArgs(temp, brightness)...); err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	return nil
}

// Reset returns redshift to its automatic schedule.
func (p *Process) Reset() error {
	common.LogInfo("Resetting redshift to automatic mode")
	if err := p.launcher.Launch(p.binary, ResetArgs()...); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}
