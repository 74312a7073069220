// Package logging configures logrus for the blastrel command line.
package logging

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultLevel is used when no level is configured.
	DefaultLevel = "info"
	// DefaultFormat is used when no format is configured.
	DefaultFormat = FormatText

	FormatText  = "text"
	FormatColor = "color"
	FormatJSON  = "json"
)

// ValidFormat reports whether format is one Configure accepts.
func ValidFormat(format string) bool {
	switch format {
	case FormatText, FormatColor, FormatJSON:
		return true
	}
	return false
}

// ValidLevel reports whether level parses as a logrus level.
func ValidLevel(level string) bool {
	_, err := logrus.ParseLevel(level)
	return err == nil
}

// Configure sets the logrus level and formatter. Log output goes to out.
func Configure(out io.Writer, level, format string, logTimestamp bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}

	var formatter logrus.Formatter
	switch format {
	case FormatText:
		formatter = &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: logTimestamp,
		}
	case FormatColor:
		formatter = &logrus.TextFormatter{
			ForceColors:   true,
			FullTimestamp: logTimestamp,
		}
	case FormatJSON:
		formatter = &logrus.JSONFormatter{}
	default:
		return fmt.Errorf("not a valid log format: %q. Please specify one of (text, color, json)", format)
	}

	logrus.SetLevel(lvl)
	logrus.SetFormatter(formatter)
	logrus.SetOutput(out)
	return nil
}
