package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the similarity floor used by Suggest when the caller
// passes a non-positive threshold.
const DefaultThreshold = 0.6

// Candidate is a known name with its similarity to the queried name.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those at or above
// threshold, best first. Ties keep the input order. Duplicate names are
// reported once.
func Rank(name string, candidates []string, threshold float64) []Candidate {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	seen := make(map[string]struct{}, len(candidates))
	ranked := make([]Candidate, 0, len(candidates))

	for _, c := range candidates {
		if c == name {
			continue
		}

		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}

		score := Similarity(name, c)
		if score < threshold {
			continue
		}

		ranked = append(ranked, Candidate{Name: c, Score: score})
	}

	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return ranked
}

// Suggest returns at most limit candidate names close to name.
// A non-positive limit returns every match above DefaultThreshold.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates, DefaultThreshold)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = c.Name
	}

	return names
}
