package cmd

import (
	"fmt"

	"github.com/hpkotak/blastrel/internal/buildenv"
	"github.com/spf13/cobra"
)

var gatherSnapshot = buildenv.Gather

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the build host and source tree",
	Long: `Print the release platform, host descriptor, shell and version control
state of the current directory. Useful as a header in release build logs.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	snap := gatherSnapshot(hostDescriptor())
	_, _ = fmt.Fprint(ioOut, snap.Format())
	return nil
}
