//go:build !unix

package redshift

import "os/exec"

func detach(cmd *exec.Cmd) {}
