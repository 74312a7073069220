//go:build unix

package executor

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

func defaultShell() string {
	return "/bin/sh"
}

func setCommandLine(*exec.Cmd, string, string) {}

// killProcessGroup puts the shell in its own process group and makes
// cancellation kill the whole group, so background jobs and grandchildren
// holding the output pipes die with it. Only cancellable commands get a
// group of their own; the rest stay in the terminal's foreground group.
func killProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
}
