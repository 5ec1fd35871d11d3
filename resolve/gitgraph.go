package resolve

import (
	"fmt"

	"github.com/bording/minver/gitrepo"
)

// gitGraph adapts a gitrepo.Repository to the Graph interface Search
// needs, translating commit ids to gitrepo.Commit handles on demand.
type gitGraph struct {
	repo *gitrepo.Repository
}

func (g gitGraph) ParentsOf(id string) ([]string, error) {
	commit, err := g.repo.CommitByID(id)
	if err != nil {
		return nil, fmt.Errorf("looking up commit %s: %w", id, err)
	}

	parents, err := g.repo.ParentsOf(commit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(parents))
	for i, p := range parents {
		ids[i] = g.repo.IdOf(p)
	}
	return ids, nil
}
