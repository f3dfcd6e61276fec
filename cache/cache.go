// Package cache serializes and deserializes an Alignment's computed
// weights and profiles to a JSON file, skipping guide-tree
// construction and profile building on replay (spec.md §6), the way
// goalign keeps on-disk format concerns in a package separate from
// align.
package cache

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/SJShaw/brawn/align"
)

type positionFile struct {
	SortOrder     []int     `json:"sort_order"`
	BaseCounts    []float64 `json:"base_counts"`
	Scores        []float64 `json:"scores"`
	UngappedWeight float64  `json:"ungapped_weight"`
	GapOpens      float64   `json:"gap_opens"`
	GapCloses     float64   `json:"gap_closes"`
	ScoreGapOpen  float64   `json:"score_gap_open"`
	ScoreGapClose float64   `json:"score_gap_close"`
}

type cacheFile struct {
	Version   string            `json:"version"`
	Alphabet  string            `json:"alphabet"`
	Sequences map[string]string `json:"sequences"`
	Weights   []float64         `json:"weights"`
	Positions []positionFile    `json:"positions"`
}

// Save writes al's sequences, weights, and positions to w as a cache
// file. Writing forces al's weights and positions to be built if they
// haven't been already.
func Save(w io.Writer, al *align.Alignment) error {
	names := append([]string{}, al.Names()...)
	sort.Strings(names)

	weights := al.Weights()
	byName := make(map[string]float64, len(names))
	for i, n := range al.Names() {
		byName[n] = weights[i]
	}

	sequences := make(map[string]string, len(names))
	orderedWeights := make([]float64, len(names))
	for i, n := range names {
		seq, _ := al.GetSequenceByName(n)
		sequences[n] = seq.String()
		orderedWeights[i] = byName[n]
	}

	positions := al.Positions()
	encodedPositions := make([]positionFile, len(positions))
	for i, p := range positions {
		encodedPositions[i] = positionFile{
			SortOrder:      p.SortOrder,
			BaseCounts:     p.BaseCounts,
			Scores:         p.Scores,
			UngappedWeight: p.UngappedWeight,
			GapOpens:       p.GapOpens,
			GapCloses:      p.GapCloses,
			ScoreGapOpen:   p.ScoreGapOpen,
			ScoreGapClose:  p.ScoreGapClose,
		}
	}

	data := cacheFile{
		Version:   align.CacheVersion,
		Alphabet:  al.Alphabet().String(),
		Sequences: sequences,
		Weights:   orderedWeights,
		Positions: encodedPositions,
	}
	return json.NewEncoder(w).Encode(data)
}

// Load reads a cache file from r and reconstructs the Alignment it
// describes, trusting the cached weights and positions rather than
// rebuilding them.
func Load(r io.Reader) (*align.Alignment, error) {
	var data cacheFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, align.NewInvalidCacheFormatError(err)
	}
	if data.Version != align.CacheVersion {
		return nil, align.NewMismatchedCacheVersionError(data.Version, align.CacheVersion)
	}

	names := make([]string, 0, len(data.Sequences))
	for name := range data.Sequences {
		names = append(names, name)
	}
	sort.Strings(names)

	raw := make([]string, len(names))
	for i, n := range names {
		raw[i] = data.Sequences[n]
	}

	positions := make([]*align.AlignmentPosition, len(data.Positions))
	for i, p := range data.Positions {
		positions[i] = align.NewCachedAlignmentPosition(
			p.SortOrder, p.BaseCounts, p.Scores,
			p.UngappedWeight, p.GapOpens, p.GapCloses,
			p.ScoreGapOpen, p.ScoreGapClose,
		)
	}

	alphabet, err := align.AlphabetFromString(data.Alphabet)
	if err != nil {
		return nil, err
	}

	al, err := align.NewAlignmentWithCache(names, raw, data.Weights, positions)
	if err != nil {
		return nil, err
	}
	al.SetAlphabet(alphabet)
	return al, nil
}
