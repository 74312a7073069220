//go:build windows

package executor

import (
	"os"
	"os/exec"
	"syscall"
)

func defaultShell() string {
	if s := os.Getenv("ComSpec"); s != "" {
		return s
	}
	return "cmd.exe"
}

// setCommandLine hands the command to cmd.exe verbatim. cmd.exe does not
// understand the \" escaping exec applies to arguments.
func setCommandLine(cmd *exec.Cmd, shell, command string) {
	if !isCmdExe(shell) {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: cmdExeLine(shell, command)}
}

// cmdExeLine builds `shell /S /C "command"`. With /S, cmd.exe strips exactly
// the outer pair of quotes and runs the rest unchanged.
func cmdExeLine(shell, command string) string {
	return syscall.EscapeArg(shell) + ` /S /C "` + command + `"`
}

func killProcessGroup(*exec.Cmd) {}
