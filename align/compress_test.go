package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompressPatternsDeduplicatesIdenticalColumns(t *testing.T) {
	al, _ := NewAlignment([]string{"a", "b"}, []string{"AAAA", "CCCC"})
	weights := al.CompressPatterns()

	assert.Equal(t, 1, al.ColumnCount())
	assert.Equal(t, []int{4}, weights)
}

func TestCompressPatternsKeepsDistinctColumns(t *testing.T) {
	al, _ := NewAlignment([]string{"a", "b"}, []string{"AC", "CA"})
	weights := al.CompressPatterns()

	assert.Equal(t, 2, al.ColumnCount())
	assert.Equal(t, []int{1, 1}, weights)
}

func TestCompressPatternsInvalidatesCaches(t *testing.T) {
	al, _ := NewAlignment([]string{"a", "b"}, []string{"AAAA", "CCCC"})
	_ = al.Weights()
	al.CompressPatterns()
	assert.Nil(t, al.tree)
	assert.Nil(t, al.weights)
	assert.Nil(t, al.positions)
}
