package align

// Traceback bit encoding: each (Q+1)x(R+1) cell packs three fields,
// one per predecessor state of a Match/Delete/Insert transition into
// that cell: two bits for Match (three possible predecessors) and one
// bit each for Delete and Insert (two possible predecessors each). Masks and values must match exactly
// (spec.md §4.7) — this is the wire format of a single int, not a
// convenience encoding.
const (
	bitMM   = 0x00
	bitDM   = 0x01
	bitIM   = 0x02
	maskM   = 0x03
	bitDD   = 0x00
	bitMD   = 0x04
	maskD   = 0x04
	bitII   = 0x00
	bitMI   = 0x08
	maskI   = 0x08
)

// GlobalAlign builds an affine-gap Needleman-Wunsch-style DP matrix
// over two profile sequences and returns the optimal traceback path
// (spec.md §4.7-§4.8). Terminal gap scores on both inputs are mutated
// in place by setTerminalGaps before the DP begins.
func GlobalAlign(queryPositions, referencePositions []*AlignmentPosition, alphabet Alphabet) Path {
	setTerminalGaps(queryPositions)
	setTerminalGaps(referencePositions)

	queryLength := len(queryPositions)
	referenceLength := len(referencePositions)
	pref1 := queryLength + 1
	pref2 := referenceLength + 1

	currentMatch := make([]float64, pref2)
	nextMatch := make([]float64, pref2)
	prevMatch := make([]float64, pref2)
	for i := range prevMatch {
		prevMatch[i] = ScoreGuard
	}
	deleteRow := make([]float64, pref2)
	for i := range deleteRow {
		deleteRow[i] = ScoreGuard
	}
	traceback := make([][]int, pref1)
	for i := range traceback {
		traceback[i] = make([]int, pref2)
	}

	recurseD := func(row []int, i, j int) {
		dd := deleteRow[j] + GapExtend
		md := prevMatch[j] + queryPositions[i-1].ScoreGapOpen
		if dd > md {
			deleteRow[j] = dd
		} else {
			deleteRow[j] = md
			row[j] = (row[j] &^ maskD) | bitMD
		}
	}

	recurseI := func(iij float64, row []int, j int) float64 {
		iij += GapExtend
		mi := currentMatch[j-1] + referencePositions[j-1].ScoreGapOpen
		if mi >= iij {
			iij = mi
			row[j] = (row[j] &^ maskI) | bitMI
		}
		return iij
	}

	recurseM := func(iij float64, i, j int) {
		dm := deleteRow[j] + queryPositions[i-1].ScoreGapClose
		im := iij + referencePositions[j-1].ScoreGapClose
		mm := currentMatch[j]
		var bit int
		switch {
		case mm >= dm && mm >= im:
			nextMatch[j+1] += mm
			bit = bitMM
		case dm >= mm && dm >= im:
			nextMatch[j+1] += dm
			bit = bitDM
		default:
			nextMatch[j+1] += im
			bit = bitIM
		}
		traceback[i+1][j+1] = (traceback[i+1][j+1] &^ maskM) | bit
	}

	setBitTBM := func(i, j int, modification Modification) {
		var bit int
		switch modification {
		case ModMatch:
			bit = bitMM
		case ModDeletion:
			bit = bitDM
		case ModInsertion:
			bit = bitIM
		default:
			panic("align: unexpected modification type")
		}
		traceback[i][j] = (traceback[i][j] &^ maskM) | bit
	}

	// start/init
	prevMatch[0] = 0
	currentMatch[0] = ScoreGuard
	currentMatch[1] = compareProfilePositions(queryPositions[0], referencePositions[0], alphabet)
	setBitTBM(1, 1, ModMatch)

	for j := 2; j < pref2; j++ {
		currentMatch[j] = compareProfilePositions(queryPositions[0], referencePositions[j-1], alphabet) +
			referencePositions[0].ScoreGapOpen +
			float64(j-2)*GapExtend +
			referencePositions[j-2].ScoreGapClose
		setBitTBM(1, j, ModInsertion)
	}

	// mid
	for i := 1; i < queryLength; i++ {
		row := traceback[i]
		iij := ScoreGuard
		deleteRow[0] = queryPositions[0].ScoreGapOpen + float64(i-1)*GapExtend
		currentMatch[0] = ScoreGuard

		if i == 1 {
			currentMatch[1] = compareProfilePositions(queryPositions[0], referencePositions[0], alphabet)
			setBitTBM(i, 1, ModMatch)
		} else {
			currentMatch[1] = compareProfilePositions(queryPositions[i-1], referencePositions[0], alphabet) +
				queryPositions[0].ScoreGapOpen +
				float64(i-2)*GapExtend +
				queryPositions[i-2].ScoreGapClose
			setBitTBM(i, 1, ModDeletion)
		}

		for j := 1; j < referenceLength; j++ {
			nextMatch[j+1] = compareProfilePositions(queryPositions[i], referencePositions[j], alphabet)
		}

		for j := 1; j < referenceLength; j++ {
			recurseD(row, i, j)
			iij = recurseI(iij, row, j)
			recurseM(iij, i, j)
		}

		recurseD(row, i, referenceLength)
		iij = recurseI(iij, row, referenceLength)

		prevMatch, currentMatch, nextMatch = currentMatch, nextMatch, prevMatch
	}

	// final row: only D and I recurrences, no M update past the last column
	row := traceback[queryLength]
	currentMatch[0] = ScoreGuard
	comparison := compareProfilePositions(queryPositions[queryLength-1], referencePositions[0], alphabet)
	currentMatch[1] = comparison + queryPositions[0].ScoreGapOpen
	currentMatch[1] += float64(queryLength-2)*GapExtend + wrappingIndex(queryPositions, queryLength-2).ScoreGapClose
	setBitTBM(queryLength, 1, ModDeletion)

	deleteRow[0] = ScoreGuard
	for j := 1; j < pref2; j++ {
		recurseD(row, queryLength, j)
	}

	iij := ScoreGuard
	for j := 1; j < pref2; j++ {
		iij = recurseI(iij, row, j)
	}

	dab := deleteRow[referenceLength]
	iab := iij

	score := currentMatch[referenceLength]
	edgeType := ModMatch

	if dab > score {
		score = dab
		edgeType = ModDeletion
	}
	if iab > score {
		edgeType = ModInsertion
	}

	return buildPath(traceback, queryLength, referenceLength, edgeType)
}

// wrappingIndex indexes positions the way the reference implementation's
// host language does for a negative index: query_length-2 is -1 when
// query_length is 1, which wraps around to the last (only) element
// rather than being an out-of-bounds access.
func wrappingIndex(positions []*AlignmentPosition, i int) *AlignmentPosition {
	if i < 0 {
		i += len(positions)
	}
	return positions[i]
}

// getModification decodes the next-edge type from a traceback cell's
// bits, using the current edge's type to select the correct field.
func getModification(bits int, previous Modification) Modification {
	switch previous {
	case ModMatch:
		switch bits & maskM {
		case bitMM:
			return ModMatch
		case bitDM:
			return ModDeletion
		case bitIM:
			return ModInsertion
		}
		panic("align: incompatible traceback bits for match")
	case ModDeletion:
		switch bits & maskD {
		case bitMD:
			return ModMatch
		case bitDD:
			return ModDeletion
		}
		panic("align: incompatible traceback bits for deletion")
	case ModInsertion:
		switch bits & maskI {
		case bitMI:
			return ModMatch
		case bitII:
			return ModInsertion
		}
		panic("align: incompatible traceback bits for insertion")
	default:
		panic("align: unknown modification type")
	}
}

// buildPath walks the traceback matrix from (queryLength,
// referenceLength) back to (0, 0), emitting edges from the most
// distant point first, then reverses them so the returned Path runs
// from the start of both sequences to their ends.
func buildPath(traceback [][]int, queryLength, referenceLength int, lastEdge Modification) Path {
	edge := NewEdge(lastEdge, queryLength, referenceLength)
	edges := []Edge{edge}
	for {
		bits := traceback[edge.QueryLength][edge.ReferenceLength]
		nextEdgeType := getModification(bits, edge.Type)

		switch edge.Type {
		case ModMatch:
			edge.QueryLength--
			edge.ReferenceLength--
		case ModDeletion:
			edge.QueryLength--
		case ModInsertion:
			edge.ReferenceLength--
		default:
			panic("align: unexpected modification type")
		}

		if edge.QueryLength == 0 && edge.ReferenceLength == 0 {
			break
		}

		edge.Type = nextEdgeType
		edges = append(edges, edge)
	}

	reversed := make([]Edge, len(edges))
	for i, e := range edges {
		reversed[len(edges)-1-i] = e
	}
	return Path{Edges: reversed}
}
