package align

import "strings"

// buildQueryResult walks path emitting, for each edge, the next residue
// of sequence at Match and Deletion edges and a gap at Insertion edges
// (spec.md §4.9). A gap glyph is also emitted for any absent residue at
// Match/Deletion edges — preserved deliberately (spec.md §9).
func buildQueryResult(sequence Sequence, path Path) string {
	var b strings.Builder
	b.Grow(len(path.Edges))
	pos := 0
	for _, edge := range path.Edges {
		switch edge.Type {
		case ModMatch, ModDeletion:
			c := sequence[pos]
			pos++
			if c == 0 {
				b.WriteRune('-')
			} else {
				b.WriteRune(c)
			}
		case ModInsertion:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// buildReferenceResult is buildQueryResult's mirror: it emits the next
// residue at Match and Insertion edges, and a gap at Deletion edges.
func buildReferenceResult(sequence Sequence, path Path) string {
	var b strings.Builder
	b.Grow(len(path.Edges))
	pos := 0
	for _, edge := range path.Edges {
		switch edge.Type {
		case ModMatch, ModInsertion:
			c := sequence[pos]
			pos++
			if c == 0 {
				b.WriteRune('-')
			} else {
				b.WriteRune(c)
			}
		case ModDeletion:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// MergeResult is the lazily-built output of combining a query and
// reference alignment via a Path: the merged sequences of both inputs,
// query sequences first in original order followed by reference
// sequences in original order (spec.md §4.9).
type MergeResult struct {
	Path      Path
	query     *Alignment
	reference *Alignment

	queryBuilt     []string
	referenceBuilt []string
}

// CombineAlignments aligns query and reference via the profile-profile
// aligner, keeping every column of each input alignment intact.
func CombineAlignments(query, reference *Alignment) (*MergeResult, error) {
	if query.Alphabet() != reference.Alphabet() {
		return nil, ErrAlphabetMismatch
	}
	path := GlobalAlign(query.Positions(), reference.Positions(), reference.Alphabet())
	return &MergeResult{
		Path:           path,
		query:          query,
		reference:      reference,
		queryBuilt:     make([]string, len(query.Sequences())),
		referenceBuilt: make([]string, len(reference.Sequences())),
	}, nil
}

// ColumnCount returns the number of columns in the merged alignment.
func (r *MergeResult) ColumnCount() int { return len(r.Path.Edges) }

// Names returns the merged alignment's sequence names: query names
// first, then reference names, each in their original order.
func (r *MergeResult) Names() []string {
	names := make([]string, 0, len(r.query.Names())+len(r.reference.Names()))
	names = append(names, r.query.Names()...)
	names = append(names, r.reference.Names()...)
	return names
}

// Sequences returns the newly aligned sequences in the same order as
// Names.
func (r *MergeResult) Sequences() []string {
	sequences := make([]string, 0, len(r.queryBuilt)+len(r.referenceBuilt))
	for i, seq := range r.query.Sequences() {
		if r.queryBuilt[i] == "" {
			r.queryBuilt[i] = buildQueryResult(seq, r.Path)
		}
		sequences = append(sequences, r.queryBuilt[i])
	}
	for i, seq := range r.reference.Sequences() {
		if r.referenceBuilt[i] == "" {
			r.referenceBuilt[i] = buildReferenceResult(seq, r.Path)
		}
		sequences = append(sequences, r.referenceBuilt[i])
	}
	return sequences
}

// GetAlignedReferences returns a mapping of reference name to its
// newly (re-)aligned sequence.
func (r *MergeResult) GetAlignedReferences() map[string]string {
	out := make(map[string]string, len(r.reference.Names()))
	for i, seq := range r.reference.Sequences() {
		if r.referenceBuilt[i] == "" {
			r.referenceBuilt[i] = buildReferenceResult(seq, r.Path)
		}
		out[r.reference.Names()[i]] = r.referenceBuilt[i]
	}
	return out
}

// ToDict returns a mapping of name to merged sequence for every input
// sequence.
func (r *MergeResult) ToDict() map[string]string {
	names := r.Names()
	sequences := r.Sequences()
	out := make(map[string]string, len(names))
	for i, name := range names {
		out[name] = sequences[i]
	}
	return out
}

// InsertIntoAlignment inserts a single raw sequence into an existing
// alignment, returning the newly aligned query sequence and a mapping
// of reference name to newly aligned reference sequence.
func InsertIntoAlignment(querySequence string, alignment *Alignment) (string, map[string]string, error) {
	query, err := NewAlignment([]string{"query"}, []string{querySequence})
	if err != nil {
		return "", nil, err
	}
	query.SetAlphabet(alignment.Alphabet())
	result, err := CombineAlignments(query, alignment)
	if err != nil {
		return "", nil, err
	}
	references := result.GetAlignedReferences()
	queryAligned := buildQueryResult(query.Sequences()[0], result.Path)
	return queryAligned, references, nil
}

// GetAlignedPair inserts querySequence into alignment and returns the
// newly aligned query sequence alongside the newly aligned sequence of
// the named reference.
func GetAlignedPair(querySequence, referenceName string, alignment *Alignment) (string, string, error) {
	refSeq, found := alignment.GetSequenceByName(referenceName)
	if !found {
		return "", "", NewUnknownReferenceNameError(referenceName)
	}
	query, err := NewAlignment([]string{"query"}, []string{querySequence})
	if err != nil {
		return "", "", err
	}
	query.SetAlphabet(alignment.Alphabet())
	result, err := CombineAlignments(query, alignment)
	if err != nil {
		return "", "", err
	}
	queryAlign := buildQueryResult(query.Sequences()[0], result.Path)
	refAlign := buildReferenceResult(refSeq, result.Path)
	return queryAlign, refAlign, nil
}
