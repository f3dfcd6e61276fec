package align

import "math"

// compareProfilePositions scores two profile columns against each
// other (spec.md §4.6). The sort-order short-circuit is
// correctness-relevant, not just an optimisation: base_counts can be
// exactly zero, and once a zero is reached no later index (sorted
// descending) can contribute.
func compareProfilePositions(query, reference *AlignmentPosition, alphabet Alphabet) float64 {
	var score float64
	for _, index := range query.SortOrder {
		count := query.BaseCounts[index]
		if count == 0 {
			break
		}
		score += count * reference.Scores[index]
	}
	if alphabet == AMINO {
		if score == 0 {
			return -2.5
		}
		return (math.Log(score) - ScoreCenter) * query.UngappedWeight * reference.UngappedWeight
	}
	return score - ScoreCenter
}
