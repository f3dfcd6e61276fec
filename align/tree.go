package align

import "github.com/SJShaw/brawn/distance"

// Tree is a rooted binary guide tree over an alignment's sequences,
// stored as structure-of-arrays indexed 0..NodeCount-1: leaves occupy
// 0..LeafCount-1, internal nodes LeafCount..NodeCount-1 in creation
// order. Absent indices are IDGuard; absent/unset lengths are
// LengthGuard.
type Tree struct {
	NodeCount     int
	RootNodeIndex int
	Parents       []int
	Lefts         []int
	Rights        []int
	LeftLengths   []float64
	RightLengths  []float64
	ParentLengths []float64
	Names         []string
	LeafCount     int
}

func newTree(nodeCount, root int, lefts, rights []int, leftLengths, rightLengths, parentLengths []float64, parents []int, names []string) *Tree {
	t := &Tree{
		NodeCount:     nodeCount,
		RootNodeIndex: root,
		Parents:       parents,
		Lefts:         lefts,
		Rights:        rights,
		LeftLengths:   leftLengths,
		RightLengths:  rightLengths,
		ParentLengths: parentLengths,
		Names:         names,
		LeafCount:     (nodeCount + 1) / 2,
	}
	if t.NodeCount <= 0 {
		panic("tree: node count must be positive")
	}
	if len(t.Parents) != nodeCount || len(t.Lefts) != nodeCount || len(t.Rights) != nodeCount ||
		len(t.LeftLengths) != nodeCount || len(t.RightLengths) != nodeCount ||
		len(t.ParentLengths) != nodeCount {
		panic("tree: array length does not match node count")
	}
	if len(t.Names) != t.LeafCount {
		panic("tree: name count does not match leaf count")
	}
	if t.Parents[t.RootNodeIndex] != IDGuard {
		panic("tree: root node must have no parent")
	}
	return t
}

// GetParent returns the parent of the given node index.
func (t *Tree) GetParent(index int) int {
	parent := t.Parents[index]
	if parent < 0 || parent >= t.NodeCount {
		panic("tree: node has no valid parent")
	}
	return parent
}

// IsLeaf reports whether index identifies a leaf node.
func (t *Tree) IsLeaf(index int) bool {
	if index >= t.NodeCount {
		panic("tree: node index out of range")
	}
	return t.NodeCount == 1 || (t.Lefts[index] == IDGuard && t.Rights[index] == IDGuard)
}

// GetEdgeLength returns the length of the edge between two neighbouring
// nodes, regardless of which is the parent.
func (t *Tree) GetEdgeLength(first, second int) float64 {
	if t.Lefts[first] == second {
		return t.LeftLengths[first]
	}
	if t.Rights[first] == second {
		return t.RightLengths[first]
	}
	if t.Parents[first] != second {
		panic("tree: nodes are not neighbours")
	}
	return t.ParentLengths[first]
}

// NodeChildCounts returns, for each node, the number of leaves beneath
// it (a leaf counts itself).
func (t *Tree) NodeChildCounts() []int {
	counts := make([]int, t.NodeCount)
	if t.NodeCount == 1 {
		counts[0] = 1
		return counts
	}
	var find func(index int) int
	find = func(index int) int {
		if t.IsLeaf(index) {
			counts[index] = 1
			return 1
		}
		left := t.Lefts[index]
		right := t.Rights[index]
		count := find(left) + find(right)
		counts[index] = count
		return count
	}
	find(t.RootNodeIndex)
	return counts
}

// GetWeights derives normalised per-leaf sequence weights from the
// tree: strength(i) = edge_length(i, parent) / leaves_under(i) for
// every non-root node, summed root-ward per leaf, with a degenerate
// guard and a final normalisation to sum 1.
func (t *Tree) GetWeights() []float64 {
	leafCount := t.LeafCount
	if leafCount == 0 {
		return nil
	}
	if leafCount == 1 {
		return []float64{1.0}
	}
	if leafCount == 2 {
		return []float64{0.5, 0.5}
	}

	childCounts := t.NodeChildCounts()
	strengths := make([]float64, t.NodeCount)
	for i := 0; i < t.NodeCount; i++ {
		if i == t.RootNodeIndex {
			strengths[i] = 0
			continue
		}
		parent := t.GetParent(i)
		length := t.GetEdgeLength(i, parent)
		strengths[i] = length / float64(childCounts[i])
	}

	weights := make([]float64, leafCount)
	for node := 0; node < leafCount; node++ {
		weight := 0.0
		n := node
		for n != t.RootNodeIndex {
			weight += strengths[n]
			n = t.GetParent(n)
		}
		if weight < 0.0001 {
			weight = 1.0
		}
		weights[node] = weight
	}
	return normalise(weights)
}

func normalise(values []float64) []float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / total
	}
	return out
}

// flatTriangularIndex converts a 2D index for a strictly-lower
// triangular matrix (i != j) into a 1D index into a packed array.
func flatTriangularIndex(i, j int) int {
	if i >= j {
		return i*(i-1)/2 + j
	}
	return j*(j-1)/2 + i
}

// buildTreeFromAlignment builds a guide tree by UPGMA-like hybrid
// clustering over the alignment's pairwise Kimura-corrected distances,
// reproducing the reference tool's exact tie-break and blend rules
// (spec.md §4.3). Pairwise identity is computed over a column-pattern-
// compressed clone (CompressPatterns): since a compressed column's
// value at any two sequence indices is identical to every original
// column collapsed into it, weighting by occurrence count gives the
// exact same identity fractions as scanning every original column,
// for a fraction of the work on alignments with many repeated
// columns.
func buildTreeFromAlignment(al *Alignment) *Tree {
	leafCount := len(al.sequences)
	internalNodeCount := leafCount - 1

	compressed := al.Clone()
	columnWeights := compressed.CompressPatterns()

	distances := make([]float64, (leafCount*internalNodeCount)/2)

	nodeIndices := make([]int, leafCount)
	nearestNeighbours := make([]int, leafCount)
	minDists := make([]float64, leafCount)
	for i := range nodeIndices {
		nodeIndices[i] = i
		nearestNeighbours[i] = IDGuard
		minDists[i] = LengthGuard
	}

	lefts := make([]int, internalNodeCount)
	rights := make([]int, internalNodeCount)
	parents := make([]int, internalNodeCount)
	heights := make([]float64, internalNodeCount)
	leftLengths := make([]float64, internalNodeCount)
	rightLengths := make([]float64, internalNodeCount)
	for i := range lefts {
		lefts[i] = IDGuard
		rights[i] = IDGuard
		parents[i] = IDGuard
		heights[i] = LengthGuard
		leftLengths[i] = LengthGuard
		rightLengths[i] = LengthGuard
	}

	for i := 1; i < leafCount; i++ {
		rowStart := flatTriangularIndex(i, 0)
		for j := 0; j < i; j++ {
			pid := weightedPercentageIdentityPair(compressed, columnWeights, i, j)
			distances[rowStart+j] = distance.CalculateDistance(pid)
		}
		for j := 0; j < i; j++ {
			d := distances[rowStart+j]
			if d < minDists[i] {
				minDists[i] = d
				nearestNeighbours[i] = j
			}
			if d < minDists[j] {
				minDists[j] = d
				nearestNeighbours[j] = i
			}
		}
	}

	for internalNodeIndex := 0; internalNodeIndex < internalNodeCount; internalNodeIndex++ {
		leftMin := IDGuard
		rightMin := IDGuard
		minDist := LengthGuard
		for j := 0; j < leafCount; j++ {
			if nodeIndices[j] == IDGuard {
				continue
			}
			d := minDists[j]
			if d < minDist {
				minDist = d
				leftMin = j
				rightMin = nearestNeighbours[j]
			}
		}
		if leftMin == IDGuard || rightMin == IDGuard {
			panic("tree: failed to find a pair to merge")
		}

		newMinDist := LengthGuard
		newNearest := IDGuard
		for j := 0; j < leafCount; j++ {
			if j == leftMin || j == rightMin {
				continue
			}
			if nodeIndices[j] == IDGuard {
				continue
			}
			leftIndex := flatTriangularIndex(leftMin, j)
			distanceLeft := distances[leftIndex]
			distanceRight := distances[flatTriangularIndex(rightMin, j)]
			newDist := 0.1*((distanceLeft+distanceRight)/2) + 0.9*minFloat(distanceLeft, distanceRight)
			if nearestNeighbours[j] == rightMin {
				nearestNeighbours[j] = leftMin
			}
			distances[leftIndex] = newDist
			if newDist < newMinDist {
				newMinDist = newDist
				newNearest = j
			}
		}

		newHeight := distances[flatTriangularIndex(leftMin, rightMin)] / 2
		left := nodeIndices[leftMin]
		right := nodeIndices[rightMin]
		heightLeft := 0.0
		if left >= leafCount {
			heightLeft = heights[left-leafCount]
		}
		heightRight := 0.0
		if right >= leafCount {
			heightRight = heights[right-leafCount]
		}

		lefts[internalNodeIndex] = left
		rights[internalNodeIndex] = right
		leftLengths[internalNodeIndex] = newHeight - heightLeft
		rightLengths[internalNodeIndex] = newHeight - heightRight
		heights[internalNodeIndex] = newHeight

		nodeIndices[leftMin] = leafCount + internalNodeIndex
		nearestNeighbours[leftMin] = newNearest
		minDists[leftMin] = newMinDist

		nodeIndices[rightMin] = IDGuard
	}

	nodeCount := 2*leafCount - 1
	root := nodeCount - 1

	allLefts := make([]int, nodeCount)
	allRights := make([]int, nodeCount)
	allLeftLengths := make([]float64, nodeCount)
	allRightLengths := make([]float64, nodeCount)
	for i := 0; i < leafCount; i++ {
		allLefts[i] = IDGuard
		allRights[i] = IDGuard
		allLeftLengths[i] = LengthGuard
		allRightLengths[i] = LengthGuard
	}
	copy(allLefts[leafCount:], lefts)
	copy(allRights[leafCount:], rights)
	copy(allLeftLengths[leafCount:], leftLengths)
	copy(allRightLengths[leafCount:], rightLengths)

	allParents := make([]int, nodeCount)
	allParentLengths := make([]float64, nodeCount)
	for i := range allParents {
		allParents[i] = IDGuard
		allParentLengths[i] = LengthGuard
	}
	for i := leafCount; i < nodeCount; i++ {
		left := allLefts[i]
		right := allRights[i]
		allParents[left] = i
		allParents[right] = i
		allParentLengths[left] = allLeftLengths[i]
		allParentLengths[right] = allRightLengths[i]
	}

	names := make([]string, len(al.names))
	copy(names, al.names)

	return newTree(nodeCount, root, allLefts, allRights, allLeftLengths, allRightLengths, allParentLengths, allParents, names)
}

// weightedPercentageIdentityPair is GetPercentageIdentityPair over a
// column-compressed alignment: each column's contribution is scaled by
// how many original columns it stands in for.
func weightedPercentageIdentityPair(al *Alignment, columnWeights []int, i, j int) float64 {
	first := al.sequences[i]
	second := al.sequences[j]
	var count, same float64
	for col := 0; col < al.colCount; col++ {
		a, b := first[col], second[col]
		if a != 0 && b != 0 {
			w := float64(columnWeights[col])
			count += w
			if a == b {
				same += w
			}
		}
	}
	if count == 0 {
		return 0
	}
	return same / count
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
