package resolve

import "github.com/bording/minver/semver"

// Candidate is an immutable record produced by Search: a commit that
// might be the version-bearing ancestor the resolver folds height onto.
type Candidate struct {
	CommitID string
	Height   uint64
	Tag      string
	Version  semver.Version
	Index    int
}

// byPrecedenceThenIndex sorts candidates by (version ascending, index
// descending), the tie-break the resolver relies on to make merge
// topology deterministic: across versions the highest version always
// wins, and among equal versions the higher index sorts first, so the
// earliest-discovered candidate (lowest index) ends up last and wins.
type byPrecedenceThenIndex []Candidate

func (c byPrecedenceThenIndex) Len() int { return len(c) }

func (c byPrecedenceThenIndex) Less(i, j int) bool {
	switch semver.Compare(c[i].Version, c[j].Version) {
	case semver.Less:
		return true
	case semver.Greater:
		return false
	default:
		return c[i].Index > c[j].Index
	}
}

func (c byPrecedenceThenIndex) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
