// Package platform provides host detection helpers and the canonical
// platform tags used to name BLAST release archives.
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Tag is a canonical OS/architecture combination recognized by the release
// packaging convention.
type Tag int

const (
	Win32 Tag = iota
	Win64
	Linux32
	Linux64
	IntelMAC
	SunOSSparc
	SunOSx86
)

var tagNames = [...]string{
	Win32:      "Win32",
	Win64:      "Win64",
	Linux32:    "Linux32",
	Linux64:    "Linux64",
	IntelMAC:   "IntelMAC",
	SunOSSparc: "SunOSSparc",
	SunOSx86:   "SunOSx86",
}

// Tags returns every canonical tag in declaration order.
func Tags() []Tag {
	return []Tag{Win32, Win64, Linux32, Linux64, IntelMAC, SunOSSparc, SunOSx86}
}

// Valid reports whether t is one of the declared tags.
func (t Tag) Valid() bool {
	return t >= Win32 && int(t) < len(tagNames)
}

func (t Tag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

// UnknownPlatformError is returned when an input matches none of the
// recognized platform patterns.
type UnknownPlatformError struct {
	Input string
}

func (e *UnknownPlatformError) Error() string {
	return fmt.Sprintf("unknown platform: %s", e.Input)
}

// ParseTag converts a platform name as used by release scripts into a Tag.
// The Windows and Linux names match on prefix (e.g. "Linux64-Centos"); the
// rest must match exactly.
func ParseTag(s string) (Tag, error) {
	for _, t := range []Tag{Win32, Win64, Linux32, Linux64} {
		if strings.HasPrefix(s, t.String()) {
			return t, nil
		}
	}
	for _, t := range []Tag{IntelMAC, SunOSSparc, SunOSx86} {
		if s == t.String() {
			return t, nil
		}
	}
	return 0, &UnknownPlatformError{Input: s}
}

// Detect classifies a platform descriptor (as produced by Descriptor) into a
// Tag. Matching is case-insensitive and the first matching family wins.
func Detect(descriptor string) (Tag, error) {
	p := strings.ToLower(descriptor)
	switch {
	case strings.Contains(p, "linux"):
		if strings.Contains(p, "x86_64") {
			return Linux64, nil
		}
		return Linux32, nil
	case strings.Contains(p, "sunos"):
		if strings.Contains(p, "sparc") {
			return SunOSSparc, nil
		}
		return SunOSx86, nil
	case strings.Contains(p, "microsoft"):
		if strings.Contains(p, "32") {
			return Win32, nil
		}
		return Win64, nil
	case strings.Contains(p, "darwin"):
		return IntelMAC, nil
	}
	return 0, &UnknownPlatformError{Input: p}
}

// DetectHost detects the Tag of the running host.
func DetectHost() (Tag, error) {
	return Detect(Descriptor())
}

func fallbackDescriptor() string {
	return runtime.GOOS + "-" + runtime.GOARCH
}

// OS returns the operating system name (e.g., "darwin", "linux").
func OS() string {
	return runtime.GOOS
}

// Shell returns the user's shell from $SHELL, defaulting to /bin/sh.
// On Windows it returns %ComSpec%, defaulting to cmd.exe.
func Shell() string {
	if runtime.GOOS == "windows" {
		if s := os.Getenv("ComSpec"); s != "" {
			return s
		}
		return "cmd.exe"
	}
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}
