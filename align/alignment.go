package align

// Alignment represents a multiple sequence alignment: a non-empty set
// of equal-length sequences over a shared alphabet. Weights, the guide
// tree, and per-column profiles are memoised lazily the first time
// they're read and are immutable once built, matching goalign's own
// lazy-build style (e.g. Alignment.seqbag caching in align.go).
type Alignment struct {
	alphabet Alphabet
	names    []string
	sequences []Sequence
	colCount int

	tree      *Tree
	weights   []float64
	positions []*AlignmentPosition
}

// NewAlignment constructs an alignment from parallel name/sequence
// slices. The alphabet defaults to AMINO; callers that want DNA or RNA
// must call SetAlphabet afterwards (see spec.md §9 open question: this
// default is deliberate, not an oversight).
func NewAlignment(names []string, raw []string) (*Alignment, error) {
	return NewAlignmentWithCache(names, raw, nil, nil)
}

// NewAlignmentWithCache constructs an alignment, optionally trusting
// precomputed weights and positions loaded from a cache file. Their
// lengths are validated against the sequence and column counts but
// their contents are otherwise trusted as-is.
func NewAlignmentWithCache(names []string, raw []string, weights []float64, positions []*AlignmentPosition) (*Alignment, error) {
	if len(names) == 0 || len(raw) == 0 {
		return nil, ErrEmptyAlignment
	}
	colCount := len(raw[0])
	for i, s := range raw {
		if len(s) != colCount {
			return nil, NewInconsistentLengthsError(names[i])
		}
	}
	if weights != nil && len(weights) != len(names) {
		return nil, NewWeightCountMismatchError(len(weights), len(names))
	}
	if positions != nil && len(positions) != colCount {
		return nil, NewPositionCountMismatchError(len(positions), colCount)
	}

	al := &Alignment{
		alphabet: AMINO,
		names:    append([]string{}, names...),
		colCount: colCount,
		weights:  weights,
		positions: positions,
	}
	al.sequences = make([]Sequence, len(raw))
	for i, s := range raw {
		al.sequences[i] = NewSequence(s, al.alphabet)
	}
	return al, nil
}

// Alphabet returns the alignment's residue alphabet.
func (al *Alignment) Alphabet() Alphabet { return al.alphabet }

// SetAlphabet overrides the alignment's alphabet. Must be called before
// Positions/Weights are first read, since profiles are built against
// whichever alphabet is set at that time.
func (al *Alignment) SetAlphabet(a Alphabet) { al.alphabet = a }

// ColumnCount returns the number of columns (the common sequence
// length) in the alignment.
func (al *Alignment) ColumnCount() int { return al.colCount }

// Names returns the sequence names, in their original order.
func (al *Alignment) Names() []string { return al.names }

// Sequences returns the alignment's sequences, in the same order as
// Names.
func (al *Alignment) Sequences() []Sequence { return al.sequences }

// GetSequenceByName returns the sequence registered under name.
func (al *Alignment) GetSequenceByName(name string) (Sequence, bool) {
	for i, n := range al.names {
		if n == name {
			return al.sequences[i], true
		}
	}
	return nil, false
}

// Weights returns the per-sequence weights, in sequence order, building
// the guide tree on first access if none were supplied at construction.
func (al *Alignment) Weights() []float64 {
	if al.weights == nil {
		if al.tree == nil {
			al.tree = buildTreeFromAlignment(al)
		}
		al.weights = al.tree.GetWeights()
	}
	return al.weights
}

// GetSequenceWeight returns the weight of the sequence at index i.
func (al *Alignment) GetSequenceWeight(i int) float64 {
	return al.Weights()[i]
}

// Positions returns the per-column profiles, building them on first
// access.
func (al *Alignment) Positions() []*AlignmentPosition {
	if al.positions == nil {
		al.positions = al.buildPositions()
	}
	return al.positions
}

func (al *Alignment) buildPositions() []*AlignmentPosition {
	positions := make([]*AlignmentPosition, al.colCount)
	for col := 0; col < al.colCount; col++ {
		counts := al.GetFractionalWeightedCounts(col)
		ungappedWeight := 1.0 - al.getColumnGapWeight(col)
		gapOpens := 1.0 - al.GetGapOpenWeightTotal(col)
		gapCloses := 1.0 - al.GetGapCloseWeightTotal(col)
		positions[col] = NewAlignmentPosition(al.alphabet, counts, ungappedWeight, gapOpens, gapCloses)
	}
	return positions
}

// GetPercentageIdentityPair returns the fraction of identical residues
// between sequences i and j, skipping any column where either has a
// gap (spec.md §4.3).
func (al *Alignment) GetPercentageIdentityPair(i, j int) float64 {
	first := al.sequences[i]
	second := al.sequences[j]
	count := 0
	same := 0
	for col := 0; col < al.colCount; col++ {
		a, b := first[col], second[col]
		if a != 0 && b != 0 {
			count++
			if a == b {
				same++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return float64(same) / float64(count)
}

// getColumnGapWeight returns the total sequence weight of sequences
// with a gap at the given column.
func (al *Alignment) getColumnGapWeight(column int) float64 {
	weights := al.Weights()
	var total float64
	for i, seq := range al.sequences {
		if seq[column] == 0 {
			total += weights[i]
		}
	}
	return total
}

// GetFractionalWeightedCounts returns the weighted residue frequency
// vector for a column (spec.md §4.5), including the wildcard-splitting
// rules for AMINO (B, Z, X) and DNA/RNA (R, Y, N and others).
func (al *Alignment) GetFractionalWeightedCounts(column int) []float64 {
	size := al.alphabet.Size()
	counts := make([]float64, size)
	weights := al.Weights()
	var totalWeight float64

	for i, seq := range al.sequences {
		c := seq[column]
		if c == 0 {
			continue
		}
		w := weights[i]

		if al.alphabet.IsWildcard(c) {
			switch al.alphabet {
			case AMINO:
				switch c {
				case 'B':
					counts[al.alphabet.residueIndex('D')] += w / 2
					counts[al.alphabet.residueIndex('N')] += w / 2
				case 'Z':
					counts[al.alphabet.residueIndex('E')] += w / 2
					counts[al.alphabet.residueIndex('Q')] += w / 2
				default:
					// X (including characters folded to X at ingestion):
					// spread equally across the whole alphabet,
					// independently for every X in the column (spec.md
					// §4.5).
					avg := w / float64(size)
					for k := range counts {
						counts[k] += avg
					}
				}
			case DNA, RNA:
				switch c {
				case 'R':
					counts[al.alphabet.residueIndex('G')] += w / 2
					counts[al.alphabet.residueIndex('A')] += w / 2
				case 'Y':
					counts[al.alphabet.residueIndex('C')] += w / 2
					counts[al.alphabet.residueIndex('T')] += w / 2
				default:
					// Divisor is 20, not 4 (size) — deliberate, matches
					// the tool being emulated (spec.md §9).
					avg := w / 20.0
					for k := range counts {
						counts[k] += avg
					}
				}
			default:
				panic(NewUnhandledAlphabetError(al.alphabet))
			}
		} else {
			counts[al.alphabet.residueIndex(c)] += w
		}
		totalWeight += w
	}

	if totalWeight > 0 {
		for k := range counts {
			counts[k] /= totalWeight
		}
	}
	return counts
}

// GetGapOpenWeightTotal returns the total sequence weight of sequences
// that open a gap at the given column: at column 0, any sequence
// starting with a gap; otherwise, a gap at column but not at column-1.
func (al *Alignment) GetGapOpenWeightTotal(column int) float64 {
	weights := al.Weights()
	var total float64
	if column < 1 {
		for i, seq := range al.sequences {
			if seq[column] == 0 {
				total += weights[i]
			}
		}
		return total
	}
	for i, seq := range al.sequences {
		if seq[column] == 0 && seq[column-1] != 0 {
			total += weights[i]
		}
	}
	return total
}

// GetGapCloseWeightTotal returns the total sequence weight of sequences
// that close a gap ending at the given column: at the last column, any
// sequence ending with a gap; otherwise, a gap at column and a residue
// at column+1.
func (al *Alignment) GetGapCloseWeightTotal(column int) float64 {
	weights := al.Weights()
	var total float64
	if column == al.colCount-1 {
		for i, seq := range al.sequences {
			if seq[column] == 0 {
				total += weights[i]
			}
		}
		return total
	}
	for i, seq := range al.sequences {
		if seq[column] == 0 && seq[column+1] != 0 {
			total += weights[i]
		}
	}
	return total
}

// ToDict returns a mapping of sequence name to sequence string (with
// '-' for gaps).
func (al *Alignment) ToDict() map[string]string {
	out := make(map[string]string, len(al.names))
	for i, name := range al.names {
		out[name] = al.sequences[i].String()
	}
	return out
}

// Equal reports whether two alignments have the same names, sequences
// (in the same order), and alphabet.
func (al *Alignment) Equal(other *Alignment) bool {
	if other == nil || al.alphabet != other.alphabet || len(al.names) != len(other.names) {
		return false
	}
	for i := range al.names {
		if al.names[i] != other.names[i] {
			return false
		}
		if al.sequences[i].String() != other.sequences[i].String() {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy of the alignment. Memoised
// weights/positions/tree are not copied; they're rebuilt lazily if the
// clone needs them, so mutating one does not affect the other.
func (al *Alignment) Clone() *Alignment {
	names := append([]string{}, al.names...)
	sequences := make([]Sequence, len(al.sequences))
	for i, s := range al.sequences {
		sequences[i] = s.Clone()
	}
	return &Alignment{
		alphabet:  al.alphabet,
		names:     names,
		sequences: sequences,
		colCount:  al.colCount,
	}
}
