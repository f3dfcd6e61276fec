package align

import "math"

// Affine gap penalties and scoring constants for the profile-profile
// aligner. See DESIGN.md for how these were derived from goalign's
// embedded BLOSUM62/EMBOSS tables and from original_source/brawn.
const (
	GapOpen     = -22.0
	GapExtend   = -1.0
	ScoreCenter = 2.0

	// ScoreGuard is a sentinel large enough in magnitude that no
	// legitimate DP path sum can reach it.
	ScoreGuard = -1e9

	// IDGuard marks an absent tree node index.
	IDGuard = -1

	// CacheVersion is written to and checked against cache files.
	CacheVersion = "1"
)

// LengthGuard marks an absent/unset edge length (the root of a guide
// tree has no parent edge, so its parent length stays this value).
var LengthGuard = math.Inf(1)

// aminoOrder is the canonical amino acid residue order used as the axis
// of aminoScoreMatrix and of BaseCounts/Scores in every
// AlignmentPosition. Reordering it silently changes every cached
// profile, so it is fixed here rather than derived at runtime.
const aminoOrder = "ACDEFGHIKLMNPQRSTVWY"

// otherOrder is the canonical DNA/RNA residue order.
const otherOrder = "GCAT"

// aminoScoreMatrix is goalign's embedded BLOSUM62 table
// (goalign's blosum62_subst_matrix, sourced from EMBOSS WATER), permuted
// into aminoOrder and converted from half-bit log-odds units into the
// positive odds-ratio space that compareProfilePositions needs before
// taking a log: value = 2^(score/2).
var aminoScoreMatrix = [20][20]float64{
	{4.000000, 1.000000, 0.500000, 0.707107, 0.500000, 1.000000, 0.500000, 0.707107, 0.707107, 0.707107, 0.707107, 0.500000, 0.707107, 0.707107, 0.707107, 1.414214, 1.000000, 1.000000, 0.353553, 0.500000},
	{1.000000, 22.627417, 0.353553, 0.250000, 0.500000, 0.353553, 0.353553, 0.707107, 0.353553, 0.707107, 0.707107, 0.353553, 0.353553, 0.353553, 0.353553, 0.707107, 0.707107, 0.707107, 0.500000, 0.500000},
	{0.500000, 0.353553, 8.000000, 2.000000, 0.353553, 0.707107, 0.707107, 0.353553, 0.707107, 0.250000, 0.353553, 1.414214, 0.707107, 1.000000, 0.500000, 1.000000, 0.707107, 0.353553, 0.250000, 0.353553},
	{0.707107, 0.250000, 2.000000, 5.656854, 0.353553, 0.500000, 1.000000, 0.353553, 1.414214, 0.353553, 0.500000, 1.000000, 0.707107, 2.000000, 1.000000, 1.000000, 0.707107, 0.500000, 0.353553, 0.500000},
	{0.500000, 0.500000, 0.353553, 0.353553, 8.000000, 0.353553, 0.707107, 1.000000, 0.353553, 1.000000, 1.000000, 0.353553, 0.250000, 0.353553, 0.353553, 0.500000, 0.500000, 0.707107, 1.414214, 2.828427},
	{1.000000, 0.353553, 0.707107, 0.500000, 0.353553, 8.000000, 0.500000, 0.250000, 0.500000, 0.250000, 0.353553, 1.000000, 0.500000, 0.500000, 0.500000, 1.000000, 0.500000, 0.353553, 0.500000, 0.353553},
	{0.500000, 0.353553, 0.707107, 1.000000, 0.707107, 0.500000, 16.000000, 0.353553, 0.707107, 0.353553, 0.500000, 1.414214, 0.500000, 1.000000, 1.000000, 0.707107, 0.500000, 0.353553, 0.500000, 2.000000},
	{0.707107, 0.707107, 0.353553, 0.353553, 1.000000, 0.250000, 0.353553, 4.000000, 0.353553, 2.000000, 1.414214, 0.353553, 0.353553, 0.353553, 0.353553, 0.500000, 0.707107, 2.828427, 0.353553, 0.707107},
	{0.707107, 0.353553, 0.707107, 1.414214, 0.353553, 0.500000, 0.707107, 0.353553, 5.656854, 0.500000, 0.707107, 1.000000, 0.707107, 1.414214, 2.000000, 1.000000, 0.707107, 0.500000, 0.353553, 0.500000},
	{0.707107, 0.707107, 0.250000, 0.353553, 1.000000, 0.250000, 0.353553, 2.000000, 0.500000, 4.000000, 2.000000, 0.353553, 0.353553, 0.500000, 0.500000, 0.500000, 0.707107, 1.414214, 0.500000, 0.707107},
	{0.707107, 0.707107, 0.353553, 0.500000, 1.000000, 0.353553, 0.500000, 1.414214, 0.707107, 2.000000, 5.656854, 0.500000, 0.500000, 1.000000, 0.707107, 0.707107, 0.707107, 1.414214, 0.707107, 0.707107},
	{0.500000, 0.353553, 1.414214, 1.000000, 0.353553, 1.000000, 1.414214, 0.353553, 1.000000, 0.353553, 0.500000, 8.000000, 0.500000, 1.000000, 1.000000, 1.414214, 1.000000, 0.353553, 0.250000, 0.500000},
	{0.707107, 0.353553, 0.707107, 0.707107, 0.250000, 0.500000, 0.500000, 0.353553, 0.707107, 0.353553, 0.500000, 0.500000, 11.313708, 0.707107, 0.500000, 0.707107, 0.707107, 0.500000, 0.250000, 0.353553},
	{0.707107, 0.353553, 1.000000, 2.000000, 0.353553, 0.500000, 1.000000, 0.353553, 1.414214, 0.500000, 1.000000, 1.000000, 0.707107, 5.656854, 1.414214, 1.000000, 0.707107, 0.500000, 0.500000, 0.707107},
	{0.707107, 0.353553, 0.500000, 1.000000, 0.353553, 0.500000, 1.000000, 0.353553, 2.000000, 0.500000, 0.707107, 1.000000, 0.500000, 1.414214, 5.656854, 0.707107, 0.707107, 0.353553, 0.353553, 0.500000},
	{1.414214, 0.707107, 1.000000, 1.000000, 0.500000, 1.000000, 0.707107, 0.500000, 1.000000, 0.500000, 0.707107, 1.414214, 0.707107, 1.000000, 0.707107, 4.000000, 1.414214, 0.500000, 0.353553, 0.500000},
	{1.000000, 0.707107, 0.707107, 0.707107, 0.500000, 0.500000, 0.500000, 0.707107, 0.707107, 0.707107, 0.707107, 1.000000, 0.707107, 0.707107, 0.707107, 1.414214, 5.656854, 1.000000, 0.500000, 0.500000},
	{1.000000, 0.707107, 0.353553, 0.500000, 0.707107, 0.353553, 0.353553, 2.828427, 0.500000, 1.414214, 1.414214, 0.353553, 0.500000, 0.500000, 0.353553, 0.500000, 1.000000, 4.000000, 0.353553, 0.707107},
	{0.353553, 0.500000, 0.250000, 0.353553, 1.414214, 0.500000, 0.500000, 0.353553, 0.353553, 0.500000, 0.707107, 0.250000, 0.250000, 0.500000, 0.353553, 0.353553, 0.500000, 0.353553, 45.254834, 2.000000},
	{0.500000, 0.500000, 0.353553, 0.500000, 2.828427, 0.353553, 2.000000, 0.707107, 0.500000, 0.707107, 0.707107, 0.500000, 0.353553, 0.707107, 0.500000, 0.500000, 0.500000, 0.707107, 2.000000, 11.313708},
}

// otherScoreMatrix is the non-ambiguous submatrix of goalign's embedded
// EMBOSS dnafull table (diag 5, mismatch -4), reordered to otherOrder.
// DNA/RNA comparisons are additive rather than log-odds, so this is
// used directly (see compareProfilePositions).
var otherScoreMatrix = [4][4]float64{
	{5, -4, -4, -4},
	{-4, 5, -4, -4},
	{-4, -4, 5, -4},
	{-4, -4, -4, 5},
}
