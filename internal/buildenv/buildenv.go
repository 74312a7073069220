// Package buildenv gathers a snapshot of the build host for release logs.
// Gathering is best-effort: a failed probe leaves its field empty.
package buildenv

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/hpkotak/blastrel/internal/platform"
)

const cmdTimeout = 2 * time.Second

// Snapshot describes the host and source tree a release is built from.
type Snapshot struct {
	Descriptor string
	Tag        string // empty if the descriptor is not a release platform
	Arch       string
	Shell      string
	GitCommit  string
	GitBranch  string
	GitDirty   bool
	SVNRev     string
}

// execCommandFn is injectable for testing.
var execCommandFn = defaultExecCommand

func defaultExecCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}

// Gather collects the snapshot for the given platform descriptor.
func Gather(descriptor string) Snapshot {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()

	s := Snapshot{
		Descriptor: descriptor,
		Arch:       runtime.GOARCH,
		Shell:      platform.Shell(),
	}
	if tag, err := platform.Detect(descriptor); err == nil {
		s.Tag = tag.String()
	}

	s.GitCommit = probe(ctx, "git", "rev-parse", "--short", "HEAD")
	if s.GitCommit != "" {
		s.GitBranch = probe(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
		s.GitDirty = probe(ctx, "git", "status", "--porcelain") != ""
	}
	s.SVNRev = probe(ctx, "svnversion", "-n")
	if s.SVNRev == "Unversioned directory" {
		s.SVNRev = ""
	}
	return s
}

func probe(ctx context.Context, name string, args ...string) string {
	out, err := execCommandFn(ctx, name, args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// Format renders the snapshot one "key: value" per line.
func (s Snapshot) Format() string {
	var b strings.Builder

	tag := s.Tag
	if tag == "" {
		tag = "unknown"
	}
	fmt.Fprintf(&b, "Platform: %s\n", tag)
	fmt.Fprintf(&b, "Descriptor: %s\n", s.Descriptor)
	fmt.Fprintf(&b, "Arch: %s\n", s.Arch)
	fmt.Fprintf(&b, "Shell: %s\n", s.Shell)

	if s.GitCommit != "" {
		status := "clean"
		if s.GitDirty {
			status = "dirty"
		}
		fmt.Fprintf(&b, "Git: %s@%s (%s)\n", s.GitBranch, s.GitCommit, status)
	}
	if s.SVNRev != "" {
		fmt.Fprintf(&b, "SVN revision: %s\n", s.SVNRev)
	}
	return b.String()
}
