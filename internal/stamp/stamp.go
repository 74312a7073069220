// Package stamp rewrites a version placeholder inside text files.
//
// The new content is written to a temporary file beside the target and
// renamed over it only after it has been flushed, so a failed rewrite leaves
// the original untouched. Stamping the same path from several goroutines or
// processes at once is not supported.
package stamp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DefaultToken is the placeholder replaced in release config files.
const DefaultToken = "BLAST_VERSION"

// FileError reports a filesystem failure while stamping a file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Stamper replaces Token with a version string in files on Fs.
type Stamper struct {
	Fs    afero.Fs
	Token string
}

// New returns a Stamper for the OS filesystem and the default token.
func New() *Stamper {
	return &Stamper{Fs: afero.NewOsFs(), Token: DefaultToken}
}

// UpdateVersion replaces every BLAST_VERSION in the file at path with version.
func UpdateVersion(path, version string) error {
	_, err := New().Stamp(path, version)
	return err
}

// Stamp replaces every occurrence of s.Token in the file at path with version
// and returns the number of replacements. Line terminators are preserved, so
// a file without the token is left byte-identical.
func (s *Stamper) Stamp(path, version string) (n int, err error) {
	if s.Token == "" {
		return 0, &FileError{Op: "stamp", Path: path, Err: fmt.Errorf("empty placeholder token")}
	}

	info, err := s.Fs.Stat(path)
	if err != nil {
		return 0, &FileError{Op: "stat", Path: path, Err: err}
	}

	in, err := s.Fs.Open(path)
	if err != nil {
		return 0, &FileError{Op: "open", Path: path, Err: err}
	}
	defer in.Close()

	tmpPath := tempName(path)
	out, err := s.Fs.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return 0, &FileError{Op: "create", Path: tmpPath, Err: err}
	}

	closed := false
	defer func() {
		if !closed {
			_ = out.Close()
		}
		if err != nil {
			_ = s.Fs.Remove(tmpPath)
		}
	}()

	n, err = replaceLines(in, out, s.Token, version)
	if err != nil {
		return 0, &FileError{Op: "rewrite", Path: path, Err: err}
	}
	if err = out.Sync(); err != nil {
		return 0, &FileError{Op: "sync", Path: tmpPath, Err: err}
	}
	closed = true
	if err = out.Close(); err != nil {
		return 0, &FileError{Op: "close", Path: tmpPath, Err: err}
	}
	// OpenFile's mode is filtered by the umask.
	if err = s.Fs.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return 0, &FileError{Op: "chmod", Path: tmpPath, Err: err}
	}
	// Windows refuses to replace a file that is still open.
	_ = in.Close()
	if err = s.Fs.Rename(tmpPath, path); err != nil {
		return 0, &FileError{Op: "rename", Path: path, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"path":         path,
		"version":      version,
		"replacements": n,
	}).Debug("Stamped version")
	return n, nil
}

// tempName returns a unique hidden sibling of path, so the final rename stays
// on one filesystem.
func tempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
}

// replaceLines copies r to w line by line, replacing token with version.
func replaceLines(r io.Reader, w io.Writer, token, version string) (int, error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	count := 0
	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			c := strings.Count(line, token)
			if c > 0 {
				line = strings.ReplaceAll(line, token, version)
				count += c
			}
			if _, err := bw.WriteString(line); err != nil {
				return 0, err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return 0, readErr
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return count, nil
}
