package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalAlignIdenticalSequences(t *testing.T) {
	query, _ := NewAlignment([]string{"q"}, []string{"ACDE"})
	reference, _ := NewAlignment([]string{"r"}, []string{"ACDE"})

	path := GlobalAlign(query.Positions(), reference.Positions(), AMINO)

	assert.Len(t, path.Edges, 4)
	for _, edge := range path.Edges {
		assert.Equal(t, ModMatch, edge.Type)
	}
}

func TestGlobalAlignInsertsReferenceOnlyColumns(t *testing.T) {
	query, _ := NewAlignment([]string{"q"}, []string{"AC"})
	reference, _ := NewAlignment([]string{"r"}, []string{"ACDE"})

	path := GlobalAlign(query.Positions(), reference.Positions(), AMINO)

	var insertions int
	for _, edge := range path.Edges {
		if edge.Type == ModInsertion {
			insertions++
		}
	}
	assert.Equal(t, 2, insertions)
}

func TestWrappingIndexNegative(t *testing.T) {
	positions := []*AlignmentPosition{{ScoreGapClose: 9}}
	got := wrappingIndex(positions, -1)
	assert.Equal(t, 9.0, got.ScoreGapClose)
}

func TestWrappingIndexNonNegative(t *testing.T) {
	positions := []*AlignmentPosition{{ScoreGapClose: 1}, {ScoreGapClose: 2}}
	got := wrappingIndex(positions, 1)
	assert.Equal(t, 2.0, got.ScoreGapClose)
}
