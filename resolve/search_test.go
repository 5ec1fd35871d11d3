package resolve

import (
	"testing"

	"github.com/bording/minver/semver"
	"github.com/stretchr/testify/require"
)

// fakeGraph is an in-memory adjacency list, letting Search be tested
// without touching a real Git repository.
type fakeGraph map[string][]string

func (g fakeGraph) ParentsOf(id string) ([]string, error) {
	return g[id], nil
}

func mustParseVersion(t *testing.T, s string) semver.Version {
	t.Helper()
	v, err := semver.Parse(s, "")
	require.NoError(t, err)
	return v
}

func TestSearchStopsAtTaggedCommit(t *testing.T) {
	// head -> tagged -> root, but tagged carries a version tag so its
	// parent (root) must never be visited.
	graph := fakeGraph{
		"head":   {"tagged"},
		"tagged": {"root"},
		"root":   {},
	}
	tags := map[string][]TaggedVersion{
		"tagged": {{Tag: "v1.2.3", Version: mustParseVersion(t, "1.2.3")}},
	}

	candidates, err := Search("head", graph, tags, []string{"alpha", "0"})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.Equal(t, "tagged", candidates[0].CommitID)
	require.Equal(t, uint64(1), candidates[0].Height)
	require.Equal(t, "v1.2.3", candidates[0].Tag)
}

func TestSearchEmitsSyntheticCandidateAtRoot(t *testing.T) {
	graph := fakeGraph{
		"head": {"root"},
		"root": {},
	}

	candidates, err := Search("head", graph, nil, []string{"alpha", "0"})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.Equal(t, "root", candidates[0].CommitID)
	require.Equal(t, uint64(1), candidates[0].Height)
	require.Empty(t, candidates[0].Tag)
	require.Equal(t, "0.0.0-alpha.0", candidates[0].Version.String())
}

func TestSearchMultipleTagsOnSameCommitEachBecomeCandidates(t *testing.T) {
	graph := fakeGraph{
		"head": {},
	}
	tags := map[string][]TaggedVersion{
		"head": {
			{Tag: "v1.0.0", Version: mustParseVersion(t, "1.0.0")},
			{Tag: "v1.0.0-alt", Version: mustParseVersion(t, "1.0.0-alt")},
		},
	}

	candidates, err := Search("head", graph, tags, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	require.Equal(t, uint64(0), candidates[0].Height)
	require.Equal(t, uint64(0), candidates[1].Height)
	require.NotEqual(t, candidates[0].Index, candidates[1].Index)
}

func TestSearchVisitsEachCommitAtMostOnce(t *testing.T) {
	// diamond: head has two parents that share a common grandparent.
	graph := fakeGraph{
		"head":  {"left", "right"},
		"left":  {"base"},
		"right": {"base"},
		"base":  {},
	}

	candidates, err := Search("head", graph, nil, nil)
	require.NoError(t, err)
	// base is reached twice (once via left, once via right) but must
	// only ever be processed once.
	require.Len(t, candidates, 1)
	require.Equal(t, "base", candidates[0].CommitID)
}

func TestSearchIsDeterministicAndFirstParentPreferred(t *testing.T) {
	// head's first parent leads to a tag one hop away; its second
	// parent leads to a different tag two hops away. First-parent
	// preference means the frontier discovers "near" before "far",
	// but both are still emitted as candidates.
	graph := fakeGraph{
		"head":  {"near", "far-1"},
		"near":  {},
		"far-1": {"far-2"},
		"far-2": {},
	}
	tags := map[string][]TaggedVersion{
		"near":  {{Tag: "v1.0.0", Version: mustParseVersion(t, "1.0.0")}},
		"far-2": {{Tag: "v2.0.0", Version: mustParseVersion(t, "2.0.0")}},
	}

	first, err := Search("head", graph, tags, nil)
	require.NoError(t, err)
	second, err := Search("head", graph, tags, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.Len(t, first, 2)
	require.Equal(t, "near", first[0].CommitID)
	require.Equal(t, uint64(1), first[0].Height)
	require.Equal(t, "far-2", first[1].CommitID)
	require.Equal(t, uint64(2), first[1].Height)
}
