package cmd

import (
	"fmt"

	"github.com/hpkotak/blastrel/internal/release"
	"github.com/hpkotak/blastrel/internal/stamp"
	"github.com/spf13/cobra"
)

var stampCmd = &cobra.Command{
	Use:   "stamp <file> <version>",
	Short: "Replace the version placeholder in a file",
	Long: `Replace every occurrence of the placeholder (BLAST_VERSION unless the
placeholder config key says otherwise) in <file> with <version>.
The file is rewritten through a temporary copy and only replaced once the
new content is on disk.`,
	Args: cobra.ExactArgs(2),
	RunE: runStamp,
}

func init() {
	rootCmd.AddCommand(stampCmd)
}

func runStamp(cmd *cobra.Command, args []string) error {
	path, version := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StrictVersion {
		if err := release.CheckVersion(version); err != nil {
			return err
		}
	}

	s := &stamp.Stamper{Fs: stampFs, Token: cfg.Placeholder}
	n, err := s.Stamp(path, version)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ioOut, "Stamped %s: %d occurrence(s) of %s -> %s\n", path, n, cfg.Placeholder, version)
	return nil
}
