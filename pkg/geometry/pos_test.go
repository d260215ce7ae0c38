package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPos_Equal(t *testing.T) {
	if !P2(3, -4).Equal(P2(3, -4)) {
		t.Error("identical 2D positions should be equal")
	}
	if P2(3, -4).Equal(P2(3, 4)) {
		t.Error("differing 2D positions should not be equal")
	}
	if !P3(1, 2, 3).Equal(P3(1, 2, 3)) {
		t.Error("identical 3D positions should be equal")
	}
	if P3(1, 2, 3).Equal(P3(1, 2, 0)) {
		t.Error("differing 3D positions should not be equal")
	}
}

func TestPos_Add2D_IgnoresZ(t *testing.T) {
	p := P2(1, 1).Add(1, -1, 100)
	if p.Dim != Dim2 || p.X != 2 || p.Y != 0 || p.Z != 0 {
		t.Errorf("Add on a 2D Pos leaked a z component: %+v", p)
	}
}

func TestPos_AbsAndRSqd(t *testing.T) {
	p := P3(-3, 4, -12)
	if p.AbsX() != 3 || p.AbsY() != 4 || p.AbsZ() != 12 {
		t.Errorf("unexpected abs components: %+v", p)
	}
	if got, want := p.RSqd(), int64(9+16+144); got != want {
		t.Errorf("RSqd() = %d, want %d", got, want)
	}
	if got, want := p.MaxAbs(), int64(12); got != want {
		t.Errorf("MaxAbs() = %d, want %d", got, want)
	}
}

func TestPos_MaxAbs2D(t *testing.T) {
	p := P2(-7, 2)
	if got, want := p.MaxAbs(), int64(7); got != want {
		t.Errorf("MaxAbs() = %d, want %d", got, want)
	}
}

func TestSeedPositions_LineMatchesExpectedSpan(t *testing.T) {
	got := SeedPositions(Dim2, Line, 5)
	want := []Pos{P2(-2, 0), P2(-1, 0), P2(0, 0), P2(1, 0), P2(2, 0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SeedPositions(LINE, 5) mismatch (-want +got):\n%s", diff)
	}
}
