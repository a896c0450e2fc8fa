package match

import (
	"sort"
)

// RankNearest returns up to limit names ranked by similarity to target
// (descending), ties broken lexicographically. The result is deterministic
// for identical inputs, which golden-file tests depend on.
func RankNearest(target string, names []string, limit int) []string {
	if limit <= 0 || len(names) == 0 {
		return nil
	}

	targetNorm := NormalizeIdent(target)

	type scored struct {
		name  string
		score float64
	}

	ranked := make([]scored, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, scored{
			name:  name,
			score: LevenshteinNormalized(NormalizeIdent(name), targetNorm),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]string, len(ranked))
	for i, r := range ranked {
		result[i] = r.name
	}

	return result
}
