//go:build !unix && !windows

package executor

import "os/exec"

func defaultShell() string {
	return "/bin/sh"
}

func setCommandLine(*exec.Cmd, string, string) {}

func killProcessGroup(*exec.Cmd) {}
