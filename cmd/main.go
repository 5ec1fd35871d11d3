// Command minver prints the SemVer 2.0 version of the Git repository
// found at (or above) a working directory: a kong-declared flag struct
// that validates its inputs and calls straight into the resolve
// package.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/bording/minver/minverlog"
	"github.com/bording/minver/resolve"
	"github.com/bording/minver/semver"
)

type CLI struct {
	WorkDir string `arg:"" optional:"" default:"." help:"Directory to start the repository search from."`

	AutoIncrement                string `name:"auto-increment" enum:"major,minor,patch" default:"patch" help:"Version part to bump when height > 0."`
	BuildMetadata                string `name:"build-metadata" help:"Appended as SemVer build metadata."`
	DefaultPreReleaseIdentifiers string `name:"default-pre-release-identifiers" help:"Comma-separated identifiers, default alpha.0."`
	DefaultPreReleasePhase       string `name:"default-pre-release-phase" help:"Deprecated alias producing <phase>.0."`
	IgnoreHeight                 bool   `name:"ignore-height" help:"Do not fold commit height into the version."`
	MinimumMajorMinor            string `name:"minimum-major-minor" help:"Lower-bound gate, of the form M.m."`
	TagPrefix                    string `name:"tag-prefix" help:"Stripped from tag names before parsing."`
	Verbosity                    string `name:"verbosity" default:"warn" help:"error|warn|info|debug|trace (short forms e/w/i/d/t, diag/diagnostic)."`
	VersionOverride              string `name:"version-override" help:"Skip all computation and emit this value verbatim."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("minver"),
		kong.Description("Compute a SemVer 2.0 version from Git repository history."),
		kong.UsageOnError(),
	)

	version, err := cli.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "MinVer: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(version.String())
}

func (c *CLI) Run(ctx context.Context) (semver.Version, error) {
	level, err := minverlog.ParseLevel(c.Verbosity)
	if err != nil {
		return semver.Version{}, fmt.Errorf("parsing verbosity: %w", err)
	}
	logger := minverlog.NewStderr(level)

	autoIncrement, err := semver.ParseVersionPart(c.AutoIncrement)
	if err != nil {
		return semver.Version{}, fmt.Errorf("parsing auto-increment: %w", err)
	}

	var minMajorMinor semver.MajorMinor
	if c.MinimumMajorMinor != "" {
		minMajorMinor, err = semver.ParseMajorMinor(c.MinimumMajorMinor)
		if err != nil {
			return semver.Version{}, fmt.Errorf("parsing minimum-major-minor: %w", err)
		}
	}

	defaultPreReleaseIdentifiers, err := c.defaultPreReleaseIdentifiers()
	if err != nil {
		return semver.Version{}, err
	}

	cfg := resolve.Config{
		WorkDir:                      c.WorkDir,
		TagPrefix:                    c.TagPrefix,
		MinMajorMinor:                minMajorMinor,
		BuildMetadata:                c.BuildMetadata,
		AutoIncrement:                autoIncrement,
		DefaultPreReleaseIdentifiers: defaultPreReleaseIdentifiers,
		IgnoreHeight:                 c.IgnoreHeight,
		VersionOverride:              c.VersionOverride,
		Logger:                       logger,
	}

	return resolve.Resolve(ctx, cfg)
}

// defaultPreReleaseIdentifiers resolves --default-pre-release-identifiers,
// falling back to the deprecated --default-pre-release-phase alias, and
// finally to "alpha.0" when neither flag is set.
func (c *CLI) defaultPreReleaseIdentifiers() ([]string, error) {
	if c.DefaultPreReleaseIdentifiers != "" {
		return semver.ParsePreReleaseIdentifiers(c.DefaultPreReleaseIdentifiers)
	}
	if c.DefaultPreReleasePhase != "" {
		return semver.ParsePreReleaseIdentifiers(c.DefaultPreReleasePhase + ",0")
	}
	return semver.ParsePreReleaseIdentifiers("alpha,0")
}
