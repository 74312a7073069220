package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hpkotak/blastrel/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a configuration value",
	Long: `Update a configuration value. Supported keys:
  shell           shell used by exec (empty: /bin/sh, cmd.exe on Windows)
  exec_timeout    kill exec commands after this duration (0s: never)
  placeholder     token replaced by stamp (default BLAST_VERSION)
  strict_version  require semantic versions (true/false)
  log.level       log level (debug, info, warn, ...)
  log.format      log format (text, color, json)
  log.timestamp   print full timestamps (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Default()
	}

	switch key {
	case "shell":
		cfg.Shell = strings.TrimSpace(value)
	case "exec_timeout":
		cfg.ExecTimeout = strings.TrimSpace(value)
	case "placeholder":
		cfg.Placeholder = value
	case "strict_version":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for %s", value, key)
		}
		cfg.StrictVersion = b
	case "log.level":
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(value))
	case "log.format":
		cfg.Log.Format = strings.ToLower(strings.TrimSpace(value))
	case "log.timestamp":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for %s", value, key)
		}
		cfg.Log.Timestamp = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ioOut, "Set %s = %s\n", key, value)
	return nil
}
