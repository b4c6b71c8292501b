package match

import "sort"

// DefaultSuggestThreshold is the minimum similarity for a suggestion.
const DefaultSuggestThreshold = 0.6

type scored struct {
	key   string
	score float64
}

// Suggest returns up to limit known keys whose similarity to key is at
// least threshold, best first. Exact matches are not suggestions and are
// skipped. Ties keep the order of known.
func Suggest(key string, known []string, threshold float64, limit int) []string {
	var candidates []scored

	for _, k := range known {
		s := Similarity(key, k)
		if s >= 1.0 || s < threshold {
			continue
		}

		candidates = append(candidates, scored{key: k, score: s})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.key)
	}

	return out
}
