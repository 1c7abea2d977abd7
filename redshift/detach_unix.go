//go:build unix

package redshift

import (
	"os/exec"
	"syscall"
)

// detach starts cmd in its own session so it outlives the tray.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
