// Package gitrepo is a thin adapter over go-git exposing only the
// capabilities the resolver needs: the HEAD commit, the tag set peeled
// to commit ids, and parent traversal.
package gitrepo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNotARepository is returned by TryOpen when no ancestor of the
// given directory contains a .git entry.
var ErrNotARepository = errors.New("not a git repository")

// ErrUnbornHead is returned by HeadCommit when the current branch has
// no commits yet.
var ErrUnbornHead = errors.New("HEAD is unborn")

// Commit is a stable handle on a single commit, wrapping go-git's
// object.Commit so callers outside this package never import go-git
// directly.
type Commit struct {
	raw *object.Commit
}

// Tag pairs a tag's short name with the commit id it peels to.
type Tag struct {
	Name     string
	CommitID string
}

// Repository is a scoped handle on a Git repository, acquired by
// TryOpen and consulted for the duration of a single resolve call.
type Repository struct {
	repo *git.Repository
}

// TryOpen walks up from dir looking for a .git entry, exactly as
// go-git's DetectDotGit option does, and opens the repository it
// finds. It returns ErrNotARepository, wrapped, if none is found.
func TryOpen(dir string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotARepository)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	return &Repository{repo: repo}, nil
}

// HeadCommit returns the commit at HEAD, or ErrUnbornHead if the
// current branch has no commits.
func (r *Repository) HeadCommit() (Commit, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return Commit{}, ErrUnbornHead
		}
		return Commit{}, fmt.Errorf("resolving HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return Commit{}, fmt.Errorf("reading HEAD commit %s: %w", head.Hash(), err)
	}

	return Commit{raw: commit}, nil
}

// Tags returns every tag reference in the repository, peeled to the
// commit id it ultimately points at. Annotated tags are peeled through
// their tag object; lightweight tags already reference a commit
// directly. Tags pointing at non-commit objects (e.g. a tagged tree or
// blob) are skipped.
func (r *Repository) Tags() ([]Tag, error) {
	refs, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var tags []Tag
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		commitHash, ok, peelErr := peelToCommit(r.repo, ref.Hash())
		if peelErr != nil {
			return peelErr
		}
		if !ok {
			return nil
		}
		tags = append(tags, Tag{Name: ref.Name().Short(), CommitID: commitHash.String()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	return tags, nil
}

func peelToCommit(repo *git.Repository, hash plumbing.Hash) (plumbing.Hash, bool, error) {
	if tagObj, err := repo.TagObject(hash); err == nil {
		if tagObj.TargetType != plumbing.CommitObject {
			return plumbing.ZeroHash, false, nil
		}
		return tagObj.Target, true, nil
	} else if !errors.Is(err, plumbing.ErrObjectNotFound) {
		return plumbing.ZeroHash, false, err
	}

	if _, err := repo.CommitObject(hash); err != nil {
		return plumbing.ZeroHash, false, nil
	}
	return hash, true, nil
}

// CommitByID looks up a commit by its hex object id, as returned by
// IdOf or a Tag's CommitID.
func (r *Repository) CommitByID(id string) (Commit, error) {
	hash := plumbing.NewHash(id)
	commit, err := r.repo.CommitObject(hash)
	if err != nil {
		return Commit{}, fmt.Errorf("reading commit %s: %w", id, err)
	}
	return Commit{raw: commit}, nil
}

// ParentsOf returns c's parent commits in the order recorded on the
// commit object, first parent first.
func (r *Repository) ParentsOf(c Commit) ([]Commit, error) {
	parents := make([]Commit, 0, c.raw.NumParents())
	err := c.raw.Parents().ForEach(func(p *object.Commit) error {
		parents = append(parents, Commit{raw: p})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading parents of %s: %w", c.raw.Hash, err)
	}
	return parents, nil
}

// IdOf returns the stable hex object id of c.
func (r *Repository) IdOf(c Commit) string {
	return c.raw.Hash.String()
}
