package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphabetFromString(t *testing.T) {
	cases := map[string]Alphabet{
		"amino": AMINO, "AA": AMINO, "protein": AMINO, "PROT": AMINO,
		"dna": DNA, "DNA": DNA,
		"rna": RNA, "RNA": RNA,
	}
	for s, want := range cases {
		got, err := AlphabetFromString(s)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestAlphabetFromStringUnknown(t *testing.T) {
	_, err := AlphabetFromString("bogus")
	assert.ErrorIs(t, err, ErrAlphabetMismatch)
}

func TestAlphabetSize(t *testing.T) {
	assert.Equal(t, 20, AMINO.Size())
	assert.Equal(t, 4, DNA.Size())
	assert.Equal(t, 4, RNA.Size())
}

func TestAlphabetIsResidueAndWildcard(t *testing.T) {
	assert.True(t, AMINO.IsResidue('A'))
	assert.False(t, AMINO.IsResidue('X'))
	assert.True(t, AMINO.IsWildcard('X'))
	assert.False(t, AMINO.IsWildcard('-'))

	assert.True(t, DNA.IsResidue('G'))
	assert.True(t, DNA.IsWildcard('N'))
	assert.True(t, RNA.IsWildcard('N'))
}

func TestIsGap(t *testing.T) {
	assert.True(t, IsGap('-'))
	assert.True(t, IsGap('.'))
	assert.False(t, IsGap('A'))
}
