package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hpkotak/blastrel/internal/config"
	"github.com/hpkotak/blastrel/internal/executor"
	"github.com/hpkotak/blastrel/internal/safety"
	"github.com/spf13/cobra"
)

var errCancelled = errors.New("command cancelled")

var (
	yesFlag     bool
	timeoutFlag time.Duration
)

var execCmd = &cobra.Command{
	Use:   "exec [flags] -- <command>...",
	Short: "Run a shell command and fail unless it exits 0",
	Long: `Run a command through the shell with inherited stdin, stdout and stderr.
A non-zero exit status is passed through as blastrel's own exit status.
Destructive commands (rm, git push --force, ...) ask for confirmation
unless --yes is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	execCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "run destructive commands without asking")
	execCmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "kill the command after this long (overrides exec_timeout)")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	command := strings.Join(args, " ")

	if !yesFlag && safety.Classify(command) == safety.Destructive {
		_, _ = fmt.Fprintf(ioOut, "\n  %s\n\n", command)
		_, _ = fmt.Fprintln(ioOut, "  Warning: this is a destructive command.")
		if !executor.Confirm("  Are you sure?", false, ioIn, ioOut) {
			_, _ = fmt.Fprintln(ioOut, "  Cancelled.")
			return errCancelled
		}
	}

	runner, err := newRunner(cfg)
	if err != nil {
		return err
	}
	return runCommand(runner, context.Background(), command)
}

func newRunner(cfg *config.Config) (*executor.Runner, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}
	if timeoutFlag > 0 {
		timeout = timeoutFlag
	}
	return &executor.Runner{
		Shell:   cfg.Shell,
		Stdin:   ioIn,
		Stdout:  ioOut,
		Stderr:  ioErr,
		Timeout: timeout,
	}, nil
}
