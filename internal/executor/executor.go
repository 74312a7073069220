// Package executor runs release shell commands and turns their exit status
// into errors. Confirm uses injectable io.Reader/io.Writer for testability.
package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// ExecutionError reports a command that could not be started, was killed by
// a signal, or exited with a non-zero status. Exactly one of Err, Signal and
// ExitCode describes the failure, checked in that order.
type ExecutionError struct {
	Command  string
	ExitCode int
	Signal   syscall.Signal
	Err      error
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("command '%s' ", e.Command)
	switch {
	case e.Err != nil:
		return msg + "execution failed: " + e.Err.Error()
	case e.Signal != 0:
		return msg + fmt.Sprintf("terminated by signal %d", int(e.Signal))
	default:
		return msg + fmt.Sprintf("failed with exit code %d", e.ExitCode)
	}
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// waitDelay bounds how long Run waits for output pipes after the command
// has been killed.
const waitDelay = time.Second

// Runner executes commands through a shell. The zero value uses /bin/sh
// (%ComSpec% on Windows) and inherits the process's standard streams.
type Runner struct {
	// Shell overrides the default shell when set. $SHELL is never consulted.
	Shell string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Timeout bounds each command when positive. Zero waits forever.
	Timeout time.Duration
}

// DefaultRunner returns a Runner wired to os.Stdin, os.Stdout and os.Stderr.
func DefaultRunner() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// SafeExec runs command through the host shell and blocks until it exits.
// It returns nil only when the command exits with status zero; every other
// outcome is an *ExecutionError.
func SafeExec(command string) error {
	return DefaultRunner().Run(context.Background(), command)
}

// Run executes command and checks its exit status. Output is passed through,
// not captured.
func (r *Runner) Run(ctx context.Context, command string) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	shell := r.Shell
	if shell == "" {
		shell = defaultShell()
	}

	logrus.WithFields(logrus.Fields{
		"command": command,
		"shell":   shell,
	}).Debug("Running command")

	cmd := exec.CommandContext(ctx, shell, shellFlag(shell), command)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	setCommandLine(cmd, shell, command)
	if ctx.Done() != nil {
		killProcessGroup(cmd)
		cmd.WaitDelay = waitDelay
	}

	return checkExit(ctx, command, cmd.Run())
}

func checkExit(ctx context.Context, command string, runErr error) error {
	if runErr == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &ExecutionError{Command: command, ExitCode: -1, Err: ctxErr}
		}
		return &ExecutionError{Command: command, Err: runErr}
	}

	execErr := &ExecutionError{Command: command, ExitCode: exitErr.ExitCode()}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		execErr.Signal = ws.Signal()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		execErr.Err = ctxErr
	}
	return execErr
}

// shellFlag returns the flag that makes shell read a command string.
func shellFlag(shell string) string {
	if isCmdExe(shell) {
		return "/C"
	}
	return "-c"
}

func isCmdExe(shell string) bool {
	base := strings.ToLower(filepath.Base(shell))
	return base == "cmd" || base == "cmd.exe"
}

// Confirm prompts the user for yes/no confirmation.
// defaultYes controls what happens when the user presses Enter without input.
func Confirm(prompt string, defaultYes bool, in io.Reader, out io.Writer) bool {
	hint := "[Y/n]"
	if !defaultYes {
		hint = "[y/N]"
	}
	_, _ = fmt.Fprintf(out, "%s %s: ", prompt, hint)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}

	switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}
