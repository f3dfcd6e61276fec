package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SJShaw/brawn/align"
	"github.com/stretchr/testify/assert"
)

func TestReadFASTABasic(t *testing.T) {
	input := ">seq1\nACGT\n>seq2\nAC\nGT\n"
	names, seqs, err := ReadFASTA(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, []string{"seq1", "seq2"}, names)
	assert.Equal(t, []string{"ACGT", "ACGT"}, seqs)
}

func TestReadFASTARejectsHeaderWithoutSequence(t *testing.T) {
	input := ">seq1\n>seq2\nACGT\n"
	_, _, err := ReadFASTA(strings.NewReader(input))
	assert.ErrorIs(t, err, align.ErrMissingSequence)
}

func TestReadFASTARejectsSequenceWithoutHeader(t *testing.T) {
	input := "ACGT\n>seq1\nACGT\n"
	_, _, err := ReadFASTA(strings.NewReader(input))
	assert.ErrorIs(t, err, align.ErrSequenceWithoutName)
}

func TestReadFASTARejectsTrailingHeaderWithoutSequence(t *testing.T) {
	input := ">seq1\nACGT\n>seq2\n"
	_, _, err := ReadFASTA(strings.NewReader(input))
	assert.ErrorIs(t, err, align.ErrMissingSequence)
}

func TestWriteFASTAWrapsLines(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFASTA(&buf, []string{"seq1"}, []string{"ACGTACGT"}, 4)
	assert.NoError(t, err)
	assert.Equal(t, ">seq1\nACGT\nACGT\n", buf.String())
}

func TestWriteFASTANoWrapping(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFASTA(&buf, []string{"seq1"}, []string{"ACGTACGT"}, 0)
	assert.NoError(t, err)
	assert.Equal(t, ">seq1\nACGTACGT\n", buf.String())
}
