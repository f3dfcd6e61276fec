package align

// Modification is the DP traceback's tagged state: a column of the
// merged alignment came from a Match, a Deletion (query-only column),
// or an Insertion (reference-only column). Represented as a tagged
// variant rather than a type hierarchy, per spec.md §9.
type Modification int

const (
	ModMatch Modification = iota
	ModDeletion
	ModInsertion
)

// String renders the single-character code used in diagnostics: the
// first letter of the modification's name is enough to read a path.
func (m Modification) String() string {
	switch m {
	case ModMatch:
		return "M"
	case ModDeletion:
		return "D"
	case ModInsertion:
		return "I"
	default:
		return "?"
	}
}

// Edge is one step of a Path: its Type and the cumulative number of
// query/reference profile positions consumed up to and including it.
type Edge struct {
	Type            Modification
	QueryLength     int
	ReferenceLength int
}

// NewEdge constructs an Edge, panicking if either counter is negative —
// an internal invariant violation, not a recoverable input error.
func NewEdge(t Modification, queryLength, referenceLength int) Edge {
	if queryLength < 0 || referenceLength < 0 {
		panic("align: edge counters must be non-negative")
	}
	return Edge{Type: t, QueryLength: queryLength, ReferenceLength: referenceLength}
}

// Path is the ordered sequence of Edges produced by the aligner,
// running from the start of both profiles to their ends.
type Path struct {
	Edges []Edge
}
