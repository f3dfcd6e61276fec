package align

import "github.com/armon/go-radix"

// CompressPatterns deduplicates identical alignment columns in place,
// adapted from goalign's Alignment.Compress (align.go) to operate on
// brawn's gap-aware Sequence type (zero-rune gaps) instead of a plain
// rune slice. It returns, for each surviving distinct column pattern,
// the number of original columns that pattern replaces. Surviving
// columns (and their weights) are in the radix tree's lexicographic
// key order, not in the order the patterns first appeared.
//
// This does not change what an alignment means (multiplicities can be
// recovered from the returned weights) but it does invalidate any
// already-built Positions/Weights/tree, so it should only be called
// before those are first read.
func (al *Alignment) CompressPatterns() []int {
	tree := radix.New()
	patternCount := 0

	for col := 0; col < al.colCount; col++ {
		pattern := make([]rune, len(al.sequences))
		for seq := range al.sequences {
			pattern[seq] = al.sequences[seq][col]
		}
		key := string(pattern)
		raw, found := tree.Get(key)
		var count *int
		if !found {
			patternCount++
			zero := 0
			count = &zero
		} else {
			count = raw.(*int)
		}
		*count++
		tree.Insert(key, count)
	}

	weights := make([]int, patternCount)
	nextCol := 0
	tree.Walk(func(pattern string, raw interface{}) bool {
		weights[nextCol] = *(raw.(*int))
		runes := []rune(pattern)
		for seq := range al.sequences {
			al.sequences[seq][nextCol] = runes[seq]
		}
		nextCol++
		return false
	})

	for seq := range al.sequences {
		al.sequences[seq] = al.sequences[seq][:nextCol]
	}
	al.colCount = nextCol
	al.tree = nil
	al.weights = nil
	al.positions = nil

	return weights
}
