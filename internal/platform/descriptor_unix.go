//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris

package platform

import (
	"runtime"
	"strings"

	"golang.org/x/sys/unix"
)

// Descriptor returns "<sysname>-<release>-<machine>" as reported by uname(2),
// falling back to GOOS-GOARCH when the call fails.
func Descriptor() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return fallbackDescriptor()
	}
	parts := []string{
		unix.ByteSliceToString(uts.Sysname[:]),
		unix.ByteSliceToString(uts.Release[:]),
		unix.ByteSliceToString(uts.Machine[:]),
	}
	// Solaris reports sun4u/sun4v as the machine; add the ISA so sparc hosts
	// are recognized.
	if runtime.GOOS == "solaris" && !strings.Contains(parts[2], "86") {
		parts = append(parts, "sparc")
	}
	return strings.Join(parts, "-")
}
