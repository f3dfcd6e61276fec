package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineAlignmentsRejectsAlphabetMismatch(t *testing.T) {
	query, _ := NewAlignment([]string{"q"}, []string{"ACGT"})
	query.SetAlphabet(DNA)
	reference, _ := NewAlignment([]string{"r"}, []string{"ACDE"})
	reference.SetAlphabet(AMINO)

	_, err := CombineAlignments(query, reference)
	assert.ErrorIs(t, err, ErrAlphabetMismatch)
}

func TestCombineAlignmentsPreservesAllNames(t *testing.T) {
	query, _ := NewAlignment([]string{"q1", "q2"}, []string{"AC", "AD"})
	reference, _ := NewAlignment([]string{"r1"}, []string{"ACDE"})

	result, err := CombineAlignments(query, reference)
	assert.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2", "r1"}, result.Names())

	sequences := result.Sequences()
	assert.Len(t, sequences, 3)
	for _, s := range sequences {
		assert.Equal(t, result.ColumnCount(), len(s))
	}
}

func TestGetAlignedPairUnknownReference(t *testing.T) {
	reference, _ := NewAlignment([]string{"r1"}, []string{"ACDE"})
	_, _, err := GetAlignedPair("ACDE", "missing", reference)
	assert.ErrorIs(t, err, ErrUnknownReferenceName)
}

func TestInsertIntoAlignmentMatchesLength(t *testing.T) {
	reference, _ := NewAlignment([]string{"r1", "r2"}, []string{"ACDE", "ACDA"})
	aligned, refs, err := InsertIntoAlignment("AC", reference)
	assert.NoError(t, err)
	assert.Len(t, refs, 2)
	for _, r := range refs {
		assert.Equal(t, len(aligned), len(r))
	}
}

// TestCombineAlignmentsScenarioS1 pins spec.md §8 scenario S1: merging
// a single query into a two-sequence reference alignment yields the
// exact literal merged sequences the spec gives as ground truth.
func TestCombineAlignmentsScenarioS1(t *testing.T) {
	query, err := NewAlignment([]string{"query"}, []string{"GTIV"})
	assert.NoError(t, err)
	reference, err := NewAlignment([]string{"A", "B"}, []string{"GT-DVG", "GTK-VG"})
	assert.NoError(t, err)

	result, err := CombineAlignments(query, reference)
	assert.NoError(t, err)

	want := map[string]string{
		"query": "GT--IV",
		"A":     "GT-DVG",
		"B":     "GTK-VG",
	}
	assert.Equal(t, want, result.ToDict())
}
