package cache

import (
	"bytes"
	"testing"

	"github.com/SJShaw/brawn/align"
	"github.com/stretchr/testify/assert"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	original, err := align.NewAlignment([]string{"b", "a"}, []string{"ACGT", "ACGA"})
	assert.NoError(t, err)
	original.SetAlphabet(align.DNA)

	var buf bytes.Buffer
	assert.NoError(t, Save(&buf, original))

	loaded, err := Load(&buf)
	assert.NoError(t, err)
	assert.Equal(t, align.DNA, loaded.Alphabet())
	assert.Equal(t, []string{"a", "b"}, loaded.Names())

	seq, found := loaded.GetSequenceByName("a")
	assert.True(t, found)
	assert.Equal(t, "ACGA", seq.String())
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	_, err := Load(bytes.NewBufferString("not json"))
	assert.ErrorIs(t, err, align.ErrInvalidCacheFormat)
}

func TestLoadRejectsMismatchedVersion(t *testing.T) {
	_, err := Load(bytes.NewBufferString(`{"version":"999","alphabet":"DNA","sequences":{"a":"ACGT"},"weights":[1],"positions":[]}`))
	assert.ErrorIs(t, err, align.ErrMismatchedCacheVersion)
}
