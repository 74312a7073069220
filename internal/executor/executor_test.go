package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"enter with default yes", "\n", true, true},
		{"enter with default no", "\n", false, false},
		{"explicit y", "y\n", false, true},
		{"explicit Y", "Y\n", false, true},
		{"explicit yes", "yes\n", false, true},
		{"explicit n", "n\n", true, false},
		{"explicit no", "no\n", true, false},
		{"garbage input", "asdf\n", true, false},
		{"empty input with spaces", "  \n", true, true},
		{"eof", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strings.NewReader(tt.input)
			out := &bytes.Buffer{}
			got := Confirm("Run?", tt.defaultYes, in, out)
			if got != tt.want {
				t.Errorf("Confirm(%q, defaultYes=%v) = %v, want %v",
					tt.input, tt.defaultYes, got, tt.want)
			}
		})
	}
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
}

func testRunner(stdout *bytes.Buffer) *Runner {
	return &Runner{Shell: "/bin/sh", Stdout: stdout, Stderr: stdout}
}

func TestRunSuccess(t *testing.T) {
	skipOnWindows(t)
	var out bytes.Buffer
	if err := testRunner(&out).Run(context.Background(), "echo stamped && exit 0"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "stamped" {
		t.Errorf("output = %q, want %q", got, "stamped")
	}
}

func TestRunExitCode(t *testing.T) {
	skipOnWindows(t)
	for _, code := range []int{1, 2, 3, 42, 127, 255} {
		t.Run(strconv.Itoa(code), func(t *testing.T) {
			command := "exit " + strconv.Itoa(code)
			err := testRunner(&bytes.Buffer{}).Run(context.Background(), command)

			var execErr *ExecutionError
			if !errors.As(err, &execErr) {
				t.Fatalf("Run(%q) error = %v, want *ExecutionError", command, err)
			}
			if execErr.ExitCode != code {
				t.Errorf("ExitCode = %d, want %d", execErr.ExitCode, code)
			}
			if execErr.Command != command {
				t.Errorf("Command = %q, want %q", execErr.Command, command)
			}
			if execErr.Signal != 0 || execErr.Err != nil {
				t.Errorf("unexpected Signal/Err: %v / %v", execErr.Signal, execErr.Err)
			}
			if !strings.Contains(err.Error(), "exit code "+strconv.Itoa(code)) {
				t.Errorf("Error() = %q, want exit code %d mentioned", err.Error(), code)
			}
		})
	}
}

func TestRunSignal(t *testing.T) {
	skipOnWindows(t)
	err := testRunner(&bytes.Buffer{}).Run(context.Background(), "kill -TERM $$")

	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("error = %v, want *ExecutionError", err)
	}
	if execErr.Signal != syscall.SIGTERM {
		t.Errorf("Signal = %v, want SIGTERM", execErr.Signal)
	}
	if !strings.Contains(err.Error(), "terminated by signal 15") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRunLaunchFailure(t *testing.T) {
	r := &Runner{Shell: "/nonexistent/shell/blastrel"}
	err := r.Run(context.Background(), "true")

	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("error = %v, want *ExecutionError", err)
	}
	if execErr.Err == nil {
		t.Fatal("Err should carry the launch failure")
	}
	if !strings.Contains(err.Error(), "execution failed") {
		t.Errorf("Error() = %q, want substring %q", err.Error(), "execution failed")
	}
}

func TestRunTimeout(t *testing.T) {
	skipOnWindows(t)
	r := &Runner{Shell: "/bin/sh", Timeout: 100 * time.Millisecond}

	start := time.Now()
	err := r.Run(context.Background(), "sleep 5")
	if time.Since(start) > 4*time.Second {
		t.Fatal("timeout did not stop the command")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestRunTimeoutCapturedOutput(t *testing.T) {
	skipOnWindows(t)
	// sleep runs as a grandchild of the shell and inherits the stdout pipe.
	var out bytes.Buffer
	r := &Runner{Shell: "/bin/sh", Stdout: &out, Stderr: &out, Timeout: 100 * time.Millisecond}

	start := time.Now()
	err := r.Run(context.Background(), "sleep 3; true")
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("Run took %v, timeout was not enforced", elapsed)
	}

	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("error = %v, want *ExecutionError", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestRunCancelledContext(t *testing.T) {
	skipOnWindows(t)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	var out bytes.Buffer
	start := time.Now()
	err := testRunner(&out).Run(ctx, "sleep 3 & wait")
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("Run took %v after cancel", elapsed)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRunIgnoresSHELL(t *testing.T) {
	skipOnWindows(t)
	// A stand-in login shell that swallows every command and succeeds.
	fake := filepath.Join(t.TempDir(), "fish")
	script := "#!/bin/sh\necho \"fake shell got: $2\"\nexit 0\n"
	if err := os.WriteFile(fake, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake shell: %v", err)
	}
	t.Setenv("SHELL", fake)

	var out bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &out}
	err := r.Run(context.Background(), "exit 7")

	var execErr *ExecutionError
	if !errors.As(err, &execErr) || execErr.ExitCode != 7 {
		t.Fatalf("error = %v, want exit code 7 from /bin/sh", err)
	}
	if strings.Contains(out.String(), "fake shell") {
		t.Errorf("command was run by $SHELL: %q", out.String())
	}
}

func TestRunPOSIXSyntax(t *testing.T) {
	skipOnWindows(t)
	t.Setenv("SHELL", "/usr/bin/tcsh")

	var out bytes.Buffer
	r := &Runner{Stdout: &out}
	if err := r.Run(context.Background(), `x=ok && echo "$x" 2>&1`); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "ok" {
		t.Errorf("output = %q, want %q", got, "ok")
	}
}

func TestExecutionErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ExecutionError
		want string
	}{
		{"exit", &ExecutionError{Command: "make", ExitCode: 2}, "command 'make' failed with exit code 2"},
		{"signal", &ExecutionError{Command: "make", ExitCode: -1, Signal: syscall.Signal(9)}, "command 'make' terminated by signal 9"},
		{"launch", &ExecutionError{Command: "make", Err: errors.New("no such file")}, "command 'make' execution failed: no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShellFlag(t *testing.T) {
	tests := map[string]string{
		"/bin/sh":                     "-c",
		"/usr/bin/zsh":                "-c",
		"cmd.exe":                     "/C",
		`C:\Windows\System32\cmd.exe`: "/C",
		"CMD":                         "/C",
	}
	for shell, want := range tests {
		if runtime.GOOS != "windows" && strings.Contains(shell, `\`) {
			continue
		}
		if got := shellFlag(shell); got != want {
			t.Errorf("shellFlag(%q) = %q, want %q", shell, got, want)
		}
	}
}
