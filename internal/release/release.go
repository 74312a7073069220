// Package release builds BLAST release archive names.
package release

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/hpkotak/blastrel/internal/platform"
)

const archivePrefix = "ncbi-blast-"

// Suffix returns the archive-name suffix for tag.
func Suffix(tag platform.Tag) (string, error) {
	switch tag {
	case platform.Win32:
		return "-ia32-win32", nil
	case platform.Win64:
		return "-x64-win64", nil
	case platform.Linux32:
		return "-ia32-linux", nil
	case platform.Linux64:
		return "-x64-linux", nil
	case platform.IntelMAC:
		return "-universal-macosx", nil
	case platform.SunOSSparc:
		return "-sparc64-solaris", nil
	case platform.SunOSx86:
		return "-x64-solaris", nil
	}
	return "", &platform.UnknownPlatformError{Input: tag.String()}
}

// ArchiveName returns the archive name for version built on tag, e.g.
// "ncbi-blast-2.13.0+-x64-linux".
func ArchiveName(tag platform.Tag, version string) (string, error) {
	suffix, err := Suffix(tag)
	if err != nil {
		return "", err
	}
	return archivePrefix + version + "+" + suffix, nil
}

// TarballName converts a platform name as used by the release scripts into an
// archive name. See platform.ParseTag for the accepted names.
func TarballName(platformName, version string) (string, error) {
	tag, err := platform.ParseTag(platformName)
	if err != nil {
		return "", err
	}
	return ArchiveName(tag, version)
}

// CheckVersion reports whether version is a semantic version. The naming
// functions never call it; versions are otherwise opaque.
func CheckVersion(version string) error {
	if _, err := semver.StrictNewVersion(version); err != nil {
		return fmt.Errorf("invalid release version %q: %w", version, err)
	}
	return nil
}
