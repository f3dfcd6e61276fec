package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAlignmentRejectsEmpty(t *testing.T) {
	_, err := NewAlignment(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyAlignment)
}

func TestNewAlignmentRejectsInconsistentLengths(t *testing.T) {
	_, err := NewAlignment([]string{"a", "b"}, []string{"ACGT", "ACG"})
	assert.ErrorIs(t, err, ErrInconsistentLengths)
}

func TestNewAlignmentWithCacheRejectsMismatchedWeightCount(t *testing.T) {
	_, err := NewAlignmentWithCache([]string{"a", "b"}, []string{"ACGT", "ACGT"}, []float64{1}, nil)
	assert.ErrorIs(t, err, ErrWeightCountMismatch)
}

func TestNewAlignmentWithCacheRejectsMismatchedPositionCount(t *testing.T) {
	_, err := NewAlignmentWithCache([]string{"a"}, []string{"ACGT"}, nil, []*AlignmentPosition{{}})
	assert.ErrorIs(t, err, ErrPositionCountMismatch)
}

func TestAlignmentDefaultsToAmino(t *testing.T) {
	al, err := NewAlignment([]string{"a"}, []string{"ACDE"})
	assert.NoError(t, err)
	assert.Equal(t, AMINO, al.Alphabet())
}

func TestGetPercentageIdentityPair(t *testing.T) {
	al, err := NewAlignment([]string{"a", "b"}, []string{"ACGT", "ACG-"})
	al.SetAlphabet(DNA)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, al.GetPercentageIdentityPair(0, 1), 1e-9)
}

func TestGetPercentageIdentityPairWithMismatch(t *testing.T) {
	al, err := NewAlignment([]string{"a", "b"}, []string{"ACGT", "ACGA"})
	al.SetAlphabet(DNA)
	assert.NoError(t, err)
	assert.InDelta(t, 0.75, al.GetPercentageIdentityPair(0, 1), 1e-9)
}

func TestGetSequenceByName(t *testing.T) {
	al, _ := NewAlignment([]string{"a", "b"}, []string{"ACGT", "ACGA"})
	seq, found := al.GetSequenceByName("b")
	assert.True(t, found)
	assert.Equal(t, "ACGA", seq.String())

	_, found = al.GetSequenceByName("missing")
	assert.False(t, found)
}

func TestEqualAndClone(t *testing.T) {
	al, _ := NewAlignment([]string{"a", "b"}, []string{"ACGT", "ACGA"})
	clone := al.Clone()
	assert.True(t, al.Equal(clone))

	clone.sequences[0][0] = 0
	assert.False(t, al.Equal(clone))
}

func TestGetFractionalWeightedCountsSingleSequence(t *testing.T) {
	al, _ := NewAlignment([]string{"a"}, []string{"A"})
	counts := al.GetFractionalWeightedCounts(0)
	assert.InDelta(t, 1.0, counts[al.Alphabet().residueIndex('A')], 1e-9)
}

func TestGetGapOpenAndCloseWeightTotals(t *testing.T) {
	al, _ := NewAlignment([]string{"a", "b"}, []string{"-ACGT", "AACGT"})
	al.SetAlphabet(DNA)
	assert.Greater(t, al.GetGapOpenWeightTotal(0), 0.0)
	assert.Equal(t, 0.0, al.GetGapCloseWeightTotal(4))
}

// TestGapWeightTotalsScenarioS4 pins spec.md §8 scenario S4: the raw
// (uninverted) gap_opens/gap_closes weight totals for a 3-sequence
// MSA under fixed, supplied weights (not tree-derived).
func TestGapWeightTotalsScenarioS4(t *testing.T) {
	al, err := NewAlignmentWithCache(
		[]string{"a", "b", "c"},
		[]string{"-ERF", "M-RF", "-E--"},
		[]float64{0.7, 0.2, 0.1},
		nil,
	)
	assert.NoError(t, err)

	wantOpens := []float64{0.8, 0.2, 0.1, 0.0}
	wantCloses := []float64{0.8, 0.2, 0.0, 0.1}
	for col := 0; col < al.ColumnCount(); col++ {
		assert.InDelta(t, wantOpens[col], al.GetGapOpenWeightTotal(col), 1e-9, "gap open col %d", col)
		assert.InDelta(t, wantCloses[col], al.GetGapCloseWeightTotal(col), 1e-9, "gap close col %d", col)
	}
}

// TestGetFractionalWeightedCountsScenarioS5 pins spec.md §8 scenario
// S5: AMINO wildcard splitting (B -> D/N, Z -> E/Q, X spread over all
// 20) under fixed, supplied weights.
func TestGetFractionalWeightedCountsScenarioS5(t *testing.T) {
	al, err := NewAlignmentWithCache(
		[]string{"A", "B"},
		[]string{"BA-", "AZX"},
		[]float64{0.2, 0.8},
		nil,
	)
	assert.NoError(t, err)
	al.SetAlphabet(AMINO)

	col0 := al.GetFractionalWeightedCounts(0)
	assert.InDelta(t, 0.8, col0[al.Alphabet().residueIndex('A')], 1e-9)
	assert.InDelta(t, 0.1, col0[al.Alphabet().residueIndex('D')], 1e-9)
	assert.InDelta(t, 0.1, col0[al.Alphabet().residueIndex('N')], 1e-9)

	col1 := al.GetFractionalWeightedCounts(1)
	assert.InDelta(t, 0.2, col1[al.Alphabet().residueIndex('A')], 1e-9)
	assert.InDelta(t, 0.4, col1[al.Alphabet().residueIndex('E')], 1e-9)
	assert.InDelta(t, 0.4, col1[al.Alphabet().residueIndex('Q')], 1e-9)

	col2 := al.GetFractionalWeightedCounts(2)
	for _, v := range col2 {
		assert.InDelta(t, 0.05, v, 1e-9)
	}
}

// TestGetFractionalWeightedCountsScenarioS6 pins spec.md §8 scenario
// S6: DNA wildcard splitting (R -> G/A, Y -> C/T, N spread over a
// 20-wide divisor) under fixed, supplied weights.
func TestGetFractionalWeightedCountsScenarioS6(t *testing.T) {
	al, err := NewAlignmentWithCache(
		[]string{"A", "B"},
		[]string{"RA-", "AYN"},
		[]float64{0.2, 0.8},
		nil,
	)
	assert.NoError(t, err)
	al.SetAlphabet(DNA)

	col0 := al.GetFractionalWeightedCounts(0)
	assert.InDelta(t, 0.1, col0[al.Alphabet().residueIndex('G')], 1e-9)
	assert.InDelta(t, 0.0, col0[al.Alphabet().residueIndex('C')], 1e-9)
	assert.InDelta(t, 0.9, col0[al.Alphabet().residueIndex('A')], 1e-9)
	assert.InDelta(t, 0.0, col0[al.Alphabet().residueIndex('T')], 1e-9)

	col1 := al.GetFractionalWeightedCounts(1)
	assert.InDelta(t, 0.0, col1[al.Alphabet().residueIndex('G')], 1e-9)
	assert.InDelta(t, 0.4, col1[al.Alphabet().residueIndex('C')], 1e-9)
	assert.InDelta(t, 0.2, col1[al.Alphabet().residueIndex('A')], 1e-9)
	assert.InDelta(t, 0.4, col1[al.Alphabet().residueIndex('T')], 1e-9)

	col2 := al.GetFractionalWeightedCounts(2)
	for _, v := range col2 {
		assert.InDelta(t, 0.05, v, 1e-9)
	}
}
