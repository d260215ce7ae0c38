package aggregate

import (
	"context"
	"testing"

	"github.com/dla/aggregate/pkg/geometry"
)

func TestNew_SeedsPointAggregate(t *testing.T) {
	a := mustNew(t, Config{
		Dim: geometry.Dim2, Lattice: geometry.Square, Attractor: geometry.Point,
		Stickiness: 1.0, Seed: 1,
	})
	if a.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 (just the seed)", a.Size())
	}
	if a.SpawnDiam() != DefaultBOffset {
		t.Errorf("SpawnDiam() = %d, want the default b_offset (%d)", a.SpawnDiam(), DefaultBOffset)
	}
}

func TestReserve_RejectsOverMaxParticles(t *testing.T) {
	a := mustNew(t, Config{
		Dim: geometry.Dim2, Lattice: geometry.Square, Attractor: geometry.Point,
		Stickiness: 1.0, Seed: 1, MaxParticles: 3,
	})
	if err := a.Reserve(3); err != nil {
		t.Fatalf("Reserve(3) returned error: %v", err)
	}
	if err := a.Generate(context.Background(), 4, nil); err == nil {
		t.Error("Generate(4) should fail when MaxParticles is 3")
	}
}

func TestApplyStick_SpawnDiamNeverShrinksForLine(t *testing.T) {
	a := mustNew(t, Config{
		Dim: geometry.Dim2, Lattice: geometry.Square, Attractor: geometry.Line,
		AttSize: 3, Stickiness: 1.0, Seed: 5,
	})
	before := a.SpawnDiam()

	// A stick on the negative-y side should still grow spawn_diam, not
	// shrink it — this is the resolved (absolute-value) behavior.
	parentIdx, _ := a.findMatch(a.SeedParticles()[0])
	a.applyStick(geometry.P2(a.SeedParticles()[0].X, -9), parentIdx, 3, 0)

	if a.SpawnDiam() < before {
		t.Fatalf("SpawnDiam() shrank from %d to %d after a negative-side stick", before, a.SpawnDiam())
	}
	if a.SpawnDiam() < a.BOffset() {
		t.Fatalf("SpawnDiam() = %d fell below BOffset() = %d", a.SpawnDiam(), a.BOffset())
	}
}

func TestFindMatch_UsesSpatialIndexWhenEnabled(t *testing.T) {
	a := mustNew(t, Config{
		Dim: geometry.Dim2, Lattice: geometry.Square, Attractor: geometry.Point,
		Stickiness: 1.0, Seed: 9, UseSpatialIndex: true,
	})
	idx, ok := a.findMatch(geometry.P2(0, 0))
	if !ok || idx != 0 {
		t.Fatalf("findMatch(origin) = (%d, %v), want (0, true)", idx, ok)
	}
	if _, ok := a.findMatch(geometry.P2(42, 42)); ok {
		t.Error("findMatch on an unoccupied position should report false")
	}
}

func TestCurrentStickiness_UsesScheduleWhenConfigured(t *testing.T) {
	a := mustNew(t, Config{
		Dim: geometry.Dim2, Lattice: geometry.Square, Attractor: geometry.Point,
		Stickiness: 1.0, Seed: 9,
		StickinessSchedule: &ScheduleConfig{Curve: "LINEAR", From: 0.1, To: 0.9},
	})
	if got := a.currentStickiness(0, 10); got != 0.1 {
		t.Errorf("currentStickiness(0, 10) = %f, want 0.1 (schedule start)", got)
	}
	if got := a.currentStickiness(10, 10); got != 0.9 {
		t.Errorf("currentStickiness(10, 10) = %f, want 0.9 (schedule end)", got)
	}
}
