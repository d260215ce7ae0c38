package spatialindex

import "github.com/dla/aggregate/pkg/geometry"

// DefaultCellSize buckets roughly one lattice neighbourhood per cell.
const DefaultCellSize = 4

type cellKey struct{ X, Y, Z int64 }

// Index is a coarse occupancy grid over stuck particle positions.
type Index struct {
	cellSize int64
	dim      geometry.Dim
	cells    map[cellKey][]int
}

// New returns an empty index bucketing by cellSize (must be >= 1).
func New(dim geometry.Dim, cellSize int64) *Index {
	if cellSize < 1 {
		cellSize = DefaultCellSize
	}
	return &Index{cellSize: cellSize, dim: dim, cells: make(map[cellKey][]int)}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		q--
	}
	return q
}

func (ix *Index) key(pos geometry.Pos) cellKey {
	k := cellKey{X: floorDiv(pos.X, ix.cellSize), Y: floorDiv(pos.Y, ix.cellSize)}
	if ix.dim == geometry.Dim3 {
		k.Z = floorDiv(pos.Z, ix.cellSize)
	}
	return k
}

// Insert records that the stuck particle at index idx occupies pos.
func (ix *Index) Insert(pos geometry.Pos, idx int) {
	k := ix.key(pos)
	ix.cells[k] = append(ix.cells[k], idx)
}

// Candidates returns the indices of stuck particles whose cell could
// contain pos. The caller must still compare positions exactly — this
// only prunes cells known to be empty, it does not resolve ties.
func (ix *Index) Candidates(pos geometry.Pos) []int {
	k := ix.key(pos)
	cell, ok := ix.cells[k]
	if !ok {
		return nil
	}
	return cell
}

// Len reports how many positions have been indexed.
func (ix *Index) Len() int {
	n := 0
	for _, c := range ix.cells {
		n += len(c)
	}
	return n
}
