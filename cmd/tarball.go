package cmd

import (
	"fmt"

	"github.com/hpkotak/blastrel/internal/platform"
	"github.com/hpkotak/blastrel/internal/release"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var platformFlag string

var tarballNameCmd = &cobra.Command{
	Use:   "tarball-name <version>",
	Short: "Print the release archive name for a version",
	Long: `Print the archive name for <version>, e.g. ncbi-blast-2.13.0+-x64-linux.

--platform takes a release platform name (Win32, Win64, Linux32, Linux64,
IntelMAC, SunOSSparc, SunOSx86; the first four also match as prefixes).
Without it the host platform is detected.`,
	Args: cobra.ExactArgs(1),
	RunE: runTarballName,
}

func init() {
	tarballNameCmd.Flags().StringVar(&platformFlag, "platform", "", "release platform name (default: detect)")
	rootCmd.AddCommand(tarballNameCmd)
}

func runTarballName(cmd *cobra.Command, args []string) error {
	version := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StrictVersion {
		if err := release.CheckVersion(version); err != nil {
			return err
		}
	}

	var name string
	if platformFlag != "" {
		name, err = release.TarballName(platformFlag, version)
	} else {
		var tag platform.Tag
		tag, err = detect(hostDescriptor())
		if err != nil {
			return err
		}
		name, err = release.ArchiveName(tag, version)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(ioOut, name)
	return nil
}

func detect(descriptor string) (platform.Tag, error) {
	logrus.WithField("descriptor", descriptor).Debug("Detecting platform")
	return platform.Detect(descriptor)
}
