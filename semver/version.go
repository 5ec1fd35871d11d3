// Package semver implements the SemVer 2.0 value type used to represent
// and compare the versions that the resolver derives from Git history.
//
// This file contains code written for this project; the parsing and
// precedence rules follow semver.org v2.0.0 §§9-11 directly rather than
// delegating to a vendored library, because the resolver needs precise
// control over identifier lists that no off-the-shelf SemVer package
// exposes (see WithHeight, AddBuildMetadata and Satisfying in derive.go).
package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is an immutable SemVer 2.0 version. All derivation methods
// return a new Version; none mutate the receiver.
type Version struct {
	Major, Minor, Patch uint64
	Pre                 []string
	Build               []string
}

// semverPattern is the grammar from semver.org v2.0.0, Annex: BNF,
// reproduced exactly so leading zeros, empty identifiers and non-ASCII
// characters are rejected rather than tolerated.
var semverPattern = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
		`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// ParseError reports why a candidate string failed to parse as a
// SemVer 2.0 version.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q as semver: %s", e.Input, e.Reason)
}

// Parse parses text as a SemVer 2.0 version. If tagPrefix is non-empty,
// text must begin with it; the prefix is stripped before parsing and is
// not part of the resulting Version. An empty tagPrefix matches any
// input (no prefix required).
func Parse(text, tagPrefix string) (Version, error) {
	rest, ok := stripPrefix(text, tagPrefix)
	if !ok {
		return Version{}, &ParseError{Input: text, Reason: fmt.Sprintf("missing required prefix %q", tagPrefix)}
	}

	for _, r := range rest {
		if r > 0x7f {
			return Version{}, &ParseError{Input: text, Reason: "contains non-ASCII characters"}
		}
	}

	match := semverPattern.FindStringSubmatch(rest)
	if match == nil {
		return Version{}, &ParseError{Input: text, Reason: "does not match the SemVer 2.0 grammar"}
	}

	major, err := parseNumericComponent(match[1])
	if err != nil {
		return Version{}, &ParseError{Input: text, Reason: err.Error()}
	}
	minor, err := parseNumericComponent(match[2])
	if err != nil {
		return Version{}, &ParseError{Input: text, Reason: err.Error()}
	}
	patch, err := parseNumericComponent(match[3])
	if err != nil {
		return Version{}, &ParseError{Input: text, Reason: err.Error()}
	}

	var pre []string
	if match[4] != "" {
		pre = strings.Split(match[4], ".")
	}

	var build []string
	if match[5] != "" {
		build = strings.Split(match[5], ".")
	}

	return Version{Major: major, Minor: minor, Patch: patch, Pre: pre, Build: build}, nil
}

func stripPrefix(text, prefix string) (string, bool) {
	if prefix == "" {
		return text, true
	}
	if !strings.HasPrefix(text, prefix) {
		return "", false
	}
	return strings.TrimPrefix(text, prefix), true
}

func parseNumericComponent(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("numeric component %q out of range", s)
	}
	return v, nil
}

// Zero returns the 0.0.0 version carrying pre as its pre-release
// sequence, the synthetic version the search assigns to a root commit
// reached without any version tag.
func Zero(pre []string) Version {
	return Version{Pre: append([]string{}, pre...)}
}

// IsPreRelease reports whether v carries a pre-release identifier
// sequence; a version with none is a release.
func (v Version) IsPreRelease() bool {
	return len(v.Pre) > 0
}

// String renders v as M.m.p[-pre][+build].
func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Pre) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.Pre, "."))
	}
	if len(v.Build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.Build, "."))
	}
	return b.String()
}

// Ordering is the result of comparing two versions for precedence.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare returns the SemVer 2.0 §11 precedence ordering of a relative
// to b. Build metadata never participates.
func Compare(a, b Version) Ordering {
	if c := compareUint(a.Major, b.Major); c != Equal {
		return c
	}
	if c := compareUint(a.Minor, b.Minor); c != Equal {
		return c
	}
	if c := compareUint(a.Patch, b.Patch); c != Equal {
		return c
	}
	return comparePre(a.Pre, b.Pre)
}

func compareUint(a, b uint64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// comparePre implements SemVer 2.0 §11 rule 4. A release always
// outranks a pre-release of the same core version. Otherwise identifiers
// compare left to right; a shorter sequence that is a prefix of a
// longer one ranks lower.
func comparePre(a, b []string) Ordering {
	if len(a) == 0 && len(b) == 0 {
		return Equal
	}
	if len(a) == 0 {
		return Greater
	}
	if len(b) == 0 {
		return Less
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != Equal {
			return c
		}
	}

	return compareUint(uint64(len(a)), uint64(len(b)))
}

func compareIdentifier(a, b string) Ordering {
	aNum, aIsNum := numericValue(a)
	bNum, bIsNum := numericValue(b)

	switch {
	case aIsNum && bIsNum:
		return compareUint(aNum, bNum)
	case aIsNum && !bIsNum:
		return Less
	case !aIsNum && bIsNum:
		return Greater
	default:
		switch {
		case a < b:
			return Less
		case a > b:
			return Greater
		default:
			return Equal
		}
	}
}

func numericValue(s string) (uint64, bool) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
