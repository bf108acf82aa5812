package match

import "sort"

// MinSimilarity is the score below which Suggest reports no candidate.
const MinSimilarity = 0.6

// Suggest returns the candidate closest to name, or false when nothing is
// similar enough to be a plausible typo. Ties resolve to the lexically
// smallest candidate so the result is deterministic.
func Suggest(name string, candidates []string) (string, bool) {
	if name == "" || len(candidates) == 0 {
		return "", false
	}

	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best, bestScore := "", 0.0

	for _, c := range sorted {
		score := Similarity(name, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity || best == name {
		return "", false
	}

	return best, true
}
