// Package minverlog is the leveled diagnostic sink consumed by every
// other package in this module. It carries no semantics of its own:
// nothing downstream branches on what gets logged, only on what gets
// returned. Built on logrus, with Enabled acting as the guard predicate
// callers use to skip formatting work when a level is disabled.
package minverlog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level is one of the five diagnostic levels the resolver logs at.
type Level int

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
)

// ParseLevel parses the --verbosity flag value, accepting the full
// names, their single-letter short forms (e/w/i/d/t), and the
// deprecated diag/diagnostic alias for Debug.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "error", "e":
		return Error, nil
	case "warn", "w":
		return Warn, nil
	case "info", "i":
		return Info, nil
	case "debug", "d", "diag", "diagnostic":
		return Debug, nil
	case "trace", "t":
		return Trace, nil
	default:
		return Info, &InvalidLevelError{Value: s}
	}
}

// InvalidLevelError reports an unrecognized --verbosity value.
type InvalidLevelError struct {
	Value string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("unknown verbosity level %q", e.Value)
}

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case Trace:
		return logrus.TraceLevel
	case Debug:
		return logrus.DebugLevel
	case Info:
		return logrus.InfoLevel
	case Warn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// Logger is the capability set every component depends on: a guard
// predicate plus one write method per level. Tests pass an in-memory
// buffer to New (see logger_test.go) or substitute their own recording
// implementation instead of touching standard error.
type Logger interface {
	Enabled(level Level) bool
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type logrusLogger struct {
	entry *logrus.Logger
}

// New builds a Logger that writes to w at the given minimum level,
// with every message prefixed "MinVer:" so callers can distinguish
// diagnostics from the single-line result the CLI prints to stdout.
// Lines use logrus's text format, so each one reads
// `level=<level> msg="MinVer: ..."`.
func New(level Level, w io.Writer) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level.logrusLevel())
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return &logrusLogger{entry: l}
}

// NewStderr is the CLI's default logger, writing to standard error.
func NewStderr(level Level) Logger {
	return New(level, os.Stderr)
}

func (l *logrusLogger) Enabled(level Level) bool {
	return l.entry.IsLevelEnabled(level.logrusLevel())
}

func (l *logrusLogger) Tracef(format string, args ...interface{}) {
	l.entry.Tracef("MinVer: "+format, args...)
}

func (l *logrusLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf("MinVer: "+format, args...)
}

func (l *logrusLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof("MinVer: "+format, args...)
}

func (l *logrusLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf("MinVer: "+format, args...)
}

func (l *logrusLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf("MinVer: "+format, args...)
}
