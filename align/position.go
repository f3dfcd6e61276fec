package align

import "sort"

// AlignmentPosition is the per-column statistical profile produced by
// the profile builder (spec.md §4.5): weighted residue frequencies,
// gap-open/close/ungapped weights, precomputed substitution scores,
// and position-specific gap penalties.
//
// ungapped_weight, gap_opens and gap_closes are stored sign-inverted
// (1 - raw): compareProfilePositions multiplies ungapped_weight factors
// together directly, so the inversion must be preserved rather than
// "fixed".
type AlignmentPosition struct {
	SortOrder     []int
	BaseCounts    []float64
	Scores        []float64
	UngappedWeight float64
	GapOpens      float64
	GapCloses     float64
	ScoreGapOpen  float64
	ScoreGapClose float64
}

// NewAlignmentPosition builds a position from fractional weighted
// counts and the already-inverted (1 - raw) ungapped/gap-open/gap-close
// weights, which it stores as given, computing sort order, substitution
// scores, and the derived gap-open/close DP scores.
func NewAlignmentPosition(alphabet Alphabet, counts []float64, ungappedWeight, gapOpens, gapCloses float64) *AlignmentPosition {
	pos := &AlignmentPosition{
		SortOrder:      indicesByDecreasingValue(counts),
		BaseCounts:     counts,
		Scores:         buildScores(alphabet, counts),
		UngappedWeight: ungappedWeight,
		GapOpens:       gapOpens,
		GapCloses:      gapCloses,
	}
	pos.ScoreGapOpen = pos.GapOpens * GapOpen / 2
	pos.ScoreGapClose = pos.GapCloses * GapOpen / 2
	return pos
}

// indicesByDecreasingValue returns indices into values sorted
// descending by value, ties broken by ascending index. Since the input
// index sequence is already ascending, a stable descending sort by
// value alone reproduces that tie-break for free.
func indicesByDecreasingValue(values []float64) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] > values[idx[b]]
	})
	return idx
}

func buildScores(alphabet Alphabet, counts []float64) []float64 {
	size := alphabet.Size()
	scores := make([]float64, size)
	for i := 0; i < size; i++ {
		row := alphabet.scoreRow(i)
		var s float64
		for j, count := range counts {
			s += count * row[j]
		}
		scores[i] = s
	}
	return scores
}

// NewCachedAlignmentPosition reconstructs a position directly from
// previously-serialized fields (cache/cache.go), trusting them as-is
// rather than recomputing scores from base counts: a cached position
// may have already had setTerminalGaps applied to its gap-open/close
// scores, which is not recoverable from gap_opens/gap_closes alone.
func NewCachedAlignmentPosition(sortOrder []int, baseCounts, scores []float64, ungappedWeight, gapOpens, gapCloses, scoreGapOpen, scoreGapClose float64) *AlignmentPosition {
	return &AlignmentPosition{
		SortOrder:      sortOrder,
		BaseCounts:     baseCounts,
		Scores:         scores,
		UngappedWeight: ungappedWeight,
		GapOpens:       gapOpens,
		GapCloses:      gapCloses,
		ScoreGapOpen:   scoreGapOpen,
		ScoreGapClose:  scoreGapClose,
	}
}

// setTerminalGaps (re)sets the gap scores for the start/end of a
// profile sequence in place, ahead of the aligner (spec.md §4.7). Note
// the guard on the last position checks ScoreGapOpen but mutates
// ScoreGapClose — that mismatch is in the tool being emulated and is
// reproduced deliberately (see spec.md §9).
func setTerminalGaps(positions []*AlignmentPosition) {
	if len(positions) == 0 {
		return
	}
	first := positions[0]
	last := positions[len(positions)-1]
	if first.ScoreGapOpen != ScoreGuard {
		first.ScoreGapOpen = 0
	}
	if len(positions) > 1 && last.ScoreGapOpen != ScoreGuard {
		last.ScoreGapClose = 0
	}
}
