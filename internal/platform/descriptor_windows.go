//go:build windows

package platform

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

// Descriptor returns "Microsoft-Windows-<major>.<minor>-win32|win64". The
// build number is left out so it cannot be mistaken for a word size.
func Descriptor() string {
	bits := "win64"
	if runtime.GOARCH == "386" || runtime.GOARCH == "arm" {
		bits = "win32"
	}
	v := windows.RtlGetVersion()
	if v == nil {
		return "Microsoft-Windows-" + bits
	}
	return fmt.Sprintf("Microsoft-Windows-%d.%d-%s", v.MajorVersion, v.MinorVersion, bits)
}
