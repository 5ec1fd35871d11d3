package resolve

import (
	"github.com/bording/minver/minverlog"
	"github.com/bording/minver/semver"
)

// Config bundles every input Resolve needs into a single value.
type Config struct {
	// WorkDir is the directory Resolve starts its repository search
	// from.
	WorkDir string

	// TagPrefix is stripped from tag names before they are parsed as
	// SemVer.
	TagPrefix string

	// MinMajorMinor floors the result at this (major, minor) pair.
	MinMajorMinor semver.MajorMinor

	// BuildMetadata, if non-empty, is attached to the derived version.
	BuildMetadata string

	// AutoIncrement selects which part WithHeight bumps.
	AutoIncrement semver.VersionPart

	// DefaultPreReleaseIdentifiers seeds the pre-release sequence of
	// any version the resolver has to synthesize or bump.
	DefaultPreReleaseIdentifiers []string

	// IgnoreHeight, if true, skips folding height into the selected
	// candidate's version entirely.
	IgnoreHeight bool

	// VersionOverride, if non-empty, short-circuits the whole resolve
	// sequence: the Git layer is never consulted and this string is
	// parsed and returned verbatim.
	VersionOverride string

	// Logger receives every diagnostic. A nil Logger disables logging.
	Logger minverlog.Logger
}

func (c Config) logger() minverlog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Enabled(minverlog.Level) bool              { return false }
func (noopLogger) Tracef(format string, args ...interface{}) {}
func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Warnf(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}
