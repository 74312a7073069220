package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/hpkotak/blastrel/internal/config"
	"github.com/hpkotak/blastrel/internal/executor"
	"github.com/hpkotak/blastrel/internal/logging"
	"github.com/hpkotak/blastrel/internal/platform"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	logLevelFlag  string
	logFormatFlag string
)

// Package-level function variables for testability.
// Tests override these to avoid real processes and the real filesystem.
var (
	loadConfig     = config.LoadOrDefault
	runCommand     = (*executor.Runner).Run
	hostDescriptor = platform.Descriptor
)

var (
	stampFs afero.Fs  = afero.NewOsFs()
	ioIn    io.Reader = os.Stdin
	ioOut   io.Writer = os.Stdout
	ioErr   io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "blastrel",
	Short: "Helpers for cutting BLAST release archives",
	Long: `blastrel bundles the small steps of a BLAST release: running build
commands, stamping the version into config files, detecting the build
platform and naming the release archive.

Examples:
  blastrel platform
  blastrel stamp src/app/blast/ncbi_blast.ini 2.13.0
  blastrel tarball-name 2.13.0
  blastrel exec -- make -j8 all_r`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	DisableAutoGenTag: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "log format: text, color or json (overrides config)")
}

func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to a process exit status. A
// command that exited non-zero passes its own status through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var execErr *executor.ExecutionError
	if errors.As(err, &execErr) && execErr.Err == nil && execErr.Signal == 0 && execErr.ExitCode > 0 {
		return execErr.ExitCode
	}
	return 1
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, format := cfg.Log.Level, cfg.Log.Format
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	if logFormatFlag != "" {
		format = logFormatFlag
	}
	return logging.Configure(ioErr, level, format, cfg.Log.Timestamp)
}
