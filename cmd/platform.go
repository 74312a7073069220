package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	descriptorFlag string
	verboseFlag    bool
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Print the release platform name of this host",
	Args:  cobra.NoArgs,
	RunE:  runPlatform,
}

func init() {
	platformCmd.Flags().StringVar(&descriptorFlag, "descriptor", "", "classify this descriptor instead of the host's")
	platformCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "also print the descriptor that was classified")
	rootCmd.AddCommand(platformCmd)
}

func runPlatform(cmd *cobra.Command, args []string) error {
	descriptor := descriptorFlag
	if descriptor == "" {
		descriptor = hostDescriptor()
	}

	tag, err := detect(descriptor)
	if err != nil {
		return err
	}

	if verboseFlag {
		_, _ = fmt.Fprintf(ioOut, "%s (%s)\n", tag, descriptor)
		return nil
	}
	_, _ = fmt.Fprintln(ioOut, tag)
	return nil
}
