package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// VersionPart selects which component WithHeight bumps when a release
// version gains commits past its tag.
type VersionPart int

const (
	Patch VersionPart = iota
	Minor
	Major
)

// ParseVersionPart parses the --auto-increment flag value. An empty
// string yields the default, Patch.
func ParseVersionPart(s string) (VersionPart, error) {
	switch strings.ToLower(s) {
	case "", "patch":
		return Patch, nil
	case "minor":
		return Minor, nil
	case "major":
		return Major, nil
	default:
		return Patch, fmt.Errorf("unknown auto-increment part %q", s)
	}
}

// MajorMinor is a lower-bound gate on a version's (major, minor) pair.
type MajorMinor struct {
	Major, Minor uint64
}

var majorMinorPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)$`)

// ParseMajorMinor parses the --minimum-major-minor flag value, which
// takes the form "M.m".
func ParseMajorMinor(s string) (MajorMinor, error) {
	match := majorMinorPattern.FindStringSubmatch(s)
	if match == nil {
		return MajorMinor{}, fmt.Errorf("minimum-major-minor %q must have the form M.m", s)
	}
	major, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		return MajorMinor{}, fmt.Errorf("minimum-major-minor major component: %w", err)
	}
	minor, err := strconv.ParseUint(match[2], 10, 64)
	if err != nil {
		return MajorMinor{}, fmt.Errorf("minimum-major-minor minor component: %w", err)
	}
	return MajorMinor{Major: major, Minor: minor}, nil
}

// ParsePreReleaseIdentifiers splits a comma-separated list of default
// pre-release identifiers and validates each one against the SemVer 2.0
// pre-release identifier grammar.
func ParsePreReleaseIdentifiers(csv string) ([]string, error) {
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	for _, p := range parts {
		if !validPreReleaseIdentifier(p) {
			return nil, fmt.Errorf("invalid default pre-release identifier %q", p)
		}
	}
	return parts, nil
}

var preReleaseIdentifierPattern = regexp.MustCompile(`^(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)$`)

func validPreReleaseIdentifier(s string) bool {
	return s != "" && preReleaseIdentifierPattern.MatchString(s)
}

var buildMetadataIdentifierPattern = regexp.MustCompile(`^[0-9A-Za-z-]+$`)

// WithHeight folds the commit distance between HEAD and the selected
// ancestor into v. A height of zero leaves v unchanged. Otherwise: a
// version that is already a pre-release gets height appended to its
// pre-release sequence as a numeric identifier; a release version is
// bumped at the chosen part, given defaultPreReleaseIdentifiers as its
// new pre-release sequence, and then has height appended.
func (v Version) WithHeight(height uint64, part VersionPart, defaultPreReleaseIdentifiers []string) Version {
	if height == 0 {
		return v
	}

	if v.IsPreRelease() {
		v.Pre = appendHeight(v.Pre, height)
		return v
	}

	switch part {
	case Major:
		v.Major, v.Minor, v.Patch = v.Major+1, 0, 0
	case Minor:
		v.Minor, v.Patch = v.Minor+1, 0
	default:
		v.Patch++
	}

	v.Pre = appendHeight(append([]string{}, defaultPreReleaseIdentifiers...), height)
	return v
}

func appendHeight(pre []string, height uint64) []string {
	return append(append([]string{}, pre...), strconv.FormatUint(height, 10))
}

// AddBuildMetadata returns v with its build metadata set to the
// dot-split identifiers of bm. An empty bm leaves v unchanged. Each
// identifier must match [0-9A-Za-z-]+.
func (v Version) AddBuildMetadata(bm string) (Version, error) {
	if bm == "" {
		return v, nil
	}

	parts := strings.Split(bm, ".")
	for _, p := range parts {
		if !buildMetadataIdentifierPattern.MatchString(p) {
			return Version{}, fmt.Errorf("invalid build metadata identifier %q in %q", p, bm)
		}
	}

	v.Build = parts
	return v, nil
}

// Satisfying enforces a lower bound on (major, minor). If v already
// meets or exceeds minMajorMinor, v is returned unchanged. Otherwise
// the result is rewritten to minMajorMinor.Major.minMajorMinor.Minor.0
// with defaultPreReleaseIdentifiers as its pre-release sequence (which
// may be empty, yielding a release at that floor) and no build
// metadata.
func (v Version) Satisfying(min MajorMinor, defaultPreReleaseIdentifiers []string) Version {
	if compareUint(v.Major, min.Major) == Greater {
		return v
	}
	if v.Major == min.Major && compareUint(v.Minor, min.Minor) != Less {
		return v
	}

	return Version{
		Major: min.Major,
		Minor: min.Minor,
		Patch: 0,
		Pre:   append([]string{}, defaultPreReleaseIdentifiers...),
	}
}
