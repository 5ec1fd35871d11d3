package resolve

import "github.com/bording/minver/semver"

// Graph is the capability set Search needs from a commit history: the
// ordered parent list of a commit, first parent first. Production code
// wires it to a Git repository via gitGraph; tests substitute an
// in-memory adjacency list without touching the filesystem.
type Graph interface {
	ParentsOf(id string) ([]string, error)
}

// TaggedVersion is one entry of the tag-version index: a tag name and
// the version its (prefix-stripped) name parses as.
type TaggedVersion struct {
	Tag     string
	Version semver.Version
}

type frontierItem struct {
	id     string
	height uint64
}

// Search performs the depth-first, LIFO-frontier traversal of ancestors
// from head described by the candidate search algorithm: it stops
// descending at any commit carrying a version tag (emitting one
// Candidate per tag there) and emits a synthetic Candidate at any root
// commit reached without one. Every commit id is visited at most once,
// and parents are pushed in reverse order so the first parent is
// explored first, giving deterministic, first-parent-preferred
// discovery order across merges.
func Search(head string, graph Graph, tagsByCommit map[string][]TaggedVersion, defaultPreReleaseIdentifiers []string) ([]Candidate, error) {
	frontier := []frontierItem{{id: head, height: 0}}
	visited := make(map[string]bool)

	var candidates []Candidate
	index := 0

	for len(frontier) > 0 {
		item := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		if tagged, ok := tagsByCommit[item.id]; ok && len(tagged) > 0 {
			for _, tv := range tagged {
				candidates = append(candidates, Candidate{
					CommitID: item.id,
					Height:   item.height,
					Tag:      tv.Tag,
					Version:  tv.Version,
					Index:    index,
				})
				index++
			}
			continue
		}

		parents, err := graph.ParentsOf(item.id)
		if err != nil {
			return nil, err
		}

		if len(parents) == 0 {
			candidates = append(candidates, Candidate{
				CommitID: item.id,
				Height:   item.height,
				Tag:      "",
				Version:  semver.Zero(defaultPreReleaseIdentifiers),
				Index:    index,
			})
			index++
			continue
		}

		for i := len(parents) - 1; i >= 0; i-- {
			frontier = append(frontier, frontierItem{id: parents[i], height: item.height + 1})
		}
	}

	return candidates, nil
}
