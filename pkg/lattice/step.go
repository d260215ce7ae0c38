package lattice

import (
	"github.com/dla/aggregate/pkg/geometry"
	"github.com/dla/aggregate/pkg/rng"
)

// Advance draws one uniform value from stream and mutates pos by exactly
// one lattice-neighbour offset for the given lattice geometry and pos's
// Dim. Thresholds are compared lower-inclusive/upper-exclusive, in the
// declared order below; the final branch of each chain is an unconditional
// else that absorbs any numeric residue. This ordering must not be
// reshuffled — it is what makes a recorded draw sequence reproduce a
// specific move sequence.
func Advance(stream *rng.RNG, pos geometry.Pos, lat geometry.Lattice) geometry.Pos {
	r := stream.Float64()
	if pos.Dim == geometry.Dim2 {
		if lat == geometry.Square {
			return advanceSquare2D(pos, r)
		}
		return advanceTriangle2D(pos, r)
	}
	if lat == geometry.Square {
		return advanceSquare3D(pos, r)
	}
	return advanceTriangle3D(pos, r)
}

// advanceSquare2D: {(+1,0),(-1,0),(0,+1),(0,-1)}, each 1/4.
func advanceSquare2D(pos geometry.Pos, r float64) geometry.Pos {
	switch {
	case r < 0.25:
		return pos.Add(1, 0, 0)
	case r < 0.5:
		return pos.Add(-1, 0, 0)
	case r < 0.75:
		return pos.Add(0, 1, 0)
	default:
		return pos.Add(0, -1, 0)
	}
}

// advanceSquare3D: six axis-aligned unit moves, each 1/6.
func advanceSquare3D(pos geometry.Pos, r float64) geometry.Pos {
	switch {
	case r < 1.0/6:
		return pos.Add(1, 0, 0)
	case r < 2.0/6:
		return pos.Add(-1, 0, 0)
	case r < 3.0/6:
		return pos.Add(0, 1, 0)
	case r < 4.0/6:
		return pos.Add(0, -1, 0)
	case r < 5.0/6:
		return pos.Add(0, 0, 1)
	default:
		return pos.Add(0, 0, -1)
	}
}

// advanceTriangle2D: six neighbours, each 1/6.
func advanceTriangle2D(pos geometry.Pos, r float64) geometry.Pos {
	switch {
	case r < 1.0/6:
		return pos.Add(1, 0, 0)
	case r < 2.0/6:
		return pos.Add(-1, 0, 0)
	case r < 3.0/6:
		return pos.Add(1, 1, 0)
	case r < 4.0/6:
		return pos.Add(1, -1, 0)
	case r < 5.0/6:
		return pos.Add(-1, 1, 0)
	default:
		return pos.Add(-1, -1, 0)
	}
}

// advanceTriangle3D: eight moves, each 1/8. This move set is kept as-is
// even though it is not a true fcc/hcp neighbourhood.
func advanceTriangle3D(pos geometry.Pos, r float64) geometry.Pos {
	switch {
	case r < 1.0/8:
		return pos.Add(1, 1, 0)
	case r < 2.0/8:
		return pos.Add(1, -1, 0)
	case r < 3.0/8:
		return pos.Add(-1, -1, 0)
	case r < 4.0/8:
		return pos.Add(-1, 1, 0)
	case r < 5.0/8:
		return pos.Add(1, 0, 0)
	case r < 6.0/8:
		return pos.Add(-1, 0, 0)
	case r < 7.0/8:
		return pos.Add(0, 0, 1)
	default:
		return pos.Add(0, 0, -1)
	}
}

// MoveSet returns the full set of lattice-neighbour offsets for a given
// dimensionality and lattice geometry, in the same order Advance's
// threshold chain uses them. It exists for callers that need to check
// whether two positions are lattice-adjacent rather than draw a new step.
func MoveSet(dim geometry.Dim, lat geometry.Lattice) [][3]int64 {
	if dim == geometry.Dim2 {
		if lat == geometry.Square {
			return [][3]int64{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}
		}
		return [][3]int64{{1, 0, 0}, {-1, 0, 0}, {1, 1, 0}, {1, -1, 0}, {-1, 1, 0}, {-1, -1, 0}}
	}
	if lat == geometry.Square {
		return [][3]int64{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	}
	return [][3]int64{
		{1, 1, 0}, {1, -1, 0}, {-1, -1, 0}, {-1, 1, 0},
		{1, 0, 0}, {-1, 0, 0}, {0, 0, 1}, {0, 0, -1},
	}
}
