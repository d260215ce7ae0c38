package lattice

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dla/aggregate/pkg/geometry"
	"github.com/dla/aggregate/pkg/rng"
)

func TestAdvance_AlwaysMovesByOneLatticeStep(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dim := geometry.Dim2
		if rapid.Bool().Draw(t, "is3D") {
			dim = geometry.Dim3
		}
		lat := geometry.Square
		if rapid.Bool().Draw(t, "isTriangle") {
			lat = geometry.Triangle
		}
		start := geometry.P2(0, 0)
		if dim == geometry.Dim3 {
			start = geometry.P3(0, 0, 0)
		}

		stream := rng.NewRNG(rapid.Uint64().Draw(t, "seed"), "lattice_test", nil)
		next := Advance(stream, start, lat)

		if !isValidMove(start, next, MoveSet(dim, lat)) {
			t.Fatalf("Advance(%v, %v) produced %+v, not a declared move set offset", dim, lat, next)
		}
	})
}

func isValidMove(from, to geometry.Pos, moves [][3]int64) bool {
	for _, m := range moves {
		if from.Add(m[0], m[1], m[2]).Equal(to) {
			return true
		}
	}
	return false
}

func TestAdvance_Determinism(t *testing.T) {
	seed := uint64(42)
	s1 := rng.NewRNG(seed, "lattice_test", nil)
	s2 := rng.NewRNG(seed, "lattice_test", nil)

	p1, p2 := geometry.P3(0, 0, 0), geometry.P3(0, 0, 0)
	for i := 0; i < 1000; i++ {
		p1 = Advance(s1, p1, geometry.Triangle)
		p2 = Advance(s2, p2, geometry.Triangle)
		if !p1.Equal(p2) {
			t.Fatalf("step %d: deterministic streams diverged: %+v vs %+v", i, p1, p2)
		}
	}
}

func TestMoveSet_Sizes(t *testing.T) {
	cases := []struct {
		dim  geometry.Dim
		lat  geometry.Lattice
		want int
	}{
		{geometry.Dim2, geometry.Square, 4},
		{geometry.Dim2, geometry.Triangle, 6},
		{geometry.Dim3, geometry.Square, 6},
		{geometry.Dim3, geometry.Triangle, 8},
	}
	for _, c := range cases {
		if got := len(MoveSet(c.dim, c.lat)); got != c.want {
			t.Errorf("MoveSet(%v, %v) has %d moves, want %d", c.dim, c.lat, got, c.want)
		}
	}
}
