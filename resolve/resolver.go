// Package resolve orchestrates the version resolution described by
// this project: open a repository, index its tags as versions, search
// its ancestry for the best candidate, and derive the final SemVer
// version from it.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bording/minver/gitrepo"
	"github.com/bording/minver/minverlog"
	"github.com/bording/minver/semver"
)

// Resolve computes the SemVer version for the repository found at
// cfg.WorkDir, or above it. ctx is checked once at entry so an embedding
// caller can cancel before any work starts; the underlying Git adapter
// calls have no context-aware APIs to cancel individually once running.
func Resolve(ctx context.Context, cfg Config) (semver.Version, error) {
	if err := ctx.Err(); err != nil {
		return semver.Version{}, err
	}

	log := cfg.logger()

	if cfg.VersionOverride != "" {
		v, err := semver.Parse(cfg.VersionOverride, "")
		if err != nil {
			return semver.Version{}, fmt.Errorf("parsing version override %q: %w", cfg.VersionOverride, err)
		}
		log.Infof("using version override %s", cfg.VersionOverride)
		return v, nil
	}

	repo, err := gitrepo.TryOpen(cfg.WorkDir)
	if err != nil {
		if errors.Is(err, gitrepo.ErrNotARepository) {
			log.Warnf("%s is not inside a Git repository; using the default version", cfg.WorkDir)
			return semver.Zero(cfg.DefaultPreReleaseIdentifiers), nil
		}
		return semver.Version{}, err
	}

	head, err := repo.HeadCommit()
	if err != nil {
		if errors.Is(err, gitrepo.ErrUnbornHead) {
			log.Infof("HEAD has no commits yet; using the default version")
			return semver.Zero(cfg.DefaultPreReleaseIdentifiers), nil
		}
		return semver.Version{}, err
	}

	tagsByCommit, err := buildTagIndex(repo, cfg.TagPrefix, log)
	if err != nil {
		return semver.Version{}, err
	}

	candidates, err := Search(repo.IdOf(head), gitGraph{repo: repo}, tagsByCommit, cfg.DefaultPreReleaseIdentifiers)
	if err != nil {
		return semver.Version{}, err
	}

	selected := selectCandidate(candidates)
	log.Debugf("selected commit %s height %d tag %q version %s", selected.CommitID, selected.Height, selected.Tag, selected.Version)

	version := selected.Version
	if !cfg.IgnoreHeight && selected.Height > 0 {
		version = version.WithHeight(selected.Height, cfg.AutoIncrement, cfg.DefaultPreReleaseIdentifiers)
	}

	version, err = version.AddBuildMetadata(cfg.BuildMetadata)
	if err != nil {
		return semver.Version{}, err
	}

	// Satisfying never copies Build into a version it rewrites, and it
	// only rewrites when the core no longer matches, so build metadata
	// is dropped exactly when the input's core changes.
	final := version.Satisfying(cfg.MinMajorMinor, cfg.DefaultPreReleaseIdentifiers)

	return final, nil
}

// selectCandidate sorts candidates by (version ascending, index
// descending) and returns the last one: the highest version, and on
// ties the one discovered first (lowest index).
func selectCandidate(candidates []Candidate) Candidate {
	sort.Stable(byPrecedenceThenIndex(candidates))
	return candidates[len(candidates)-1]
}

func buildTagIndex(repo *gitrepo.Repository, tagPrefix string, log minverlog.Logger) (map[string][]TaggedVersion, error) {
	tags, err := repo.Tags()
	if err != nil {
		return nil, err
	}

	index := make(map[string][]TaggedVersion)
	for _, tag := range tags {
		version, err := semver.Parse(tag.Name, tagPrefix)
		if err != nil {
			log.Debugf("dropping tag %s: %v", tag.Name, err)
			continue
		}
		index[tag.CommitID] = append(index[tag.CommitID], TaggedVersion{Tag: tag.Name, Version: version})
	}
	return index, nil
}
