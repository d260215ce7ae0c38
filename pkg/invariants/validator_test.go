package invariants

import (
	"context"
	"testing"

	"github.com/dla/aggregate/pkg/aggregate"
	"github.com/dla/aggregate/pkg/geometry"
)

func newRun(t *testing.T, cfg aggregate.Config, n int) *aggregate.Aggregate {
	t.Helper()
	a, err := aggregate.New(cfg)
	if err != nil {
		t.Fatalf("aggregate.New(%+v) returned error: %v", cfg, err)
	}
	if err := a.Generate(context.Background(), n, nil); err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}
	return a
}

func TestCheck_PassesForAHealthyRun(t *testing.T) {
	a := newRun(t, aggregate.Config{
		Dim: geometry.Dim2, Lattice: geometry.Square, Attractor: geometry.Point,
		Stickiness: 1.0, Seed: 1,
	}, 150)
	report := Check(a)
	if !report.Passed {
		t.Errorf("Check() failed for a healthy run:\n%s", report.Summary())
	}
}

func TestCheck_PassesForCircleSeedWithDuplicates(t *testing.T) {
	a := newRun(t, aggregate.Config{
		Dim: geometry.Dim2, Lattice: geometry.Triangle, Attractor: geometry.Circle,
		AttSize: 3, Stickiness: 1.0, Seed: 2,
	}, 30)
	report := Check(a)
	if !report.Passed {
		t.Errorf("Check() failed for a CIRCLE run (seed duplicates should be excluded):\n%s", report.Summary())
	}
}

func TestCheck_PassesFor3DPlane(t *testing.T) {
	a := newRun(t, aggregate.Config{
		Dim: geometry.Dim3, Lattice: geometry.Square, Attractor: geometry.Plane,
		AttSize: 3, Stickiness: 1.0, Seed: 3,
	}, 30)
	report := Check(a)
	if !report.Passed {
		t.Errorf("Check() failed for a PLANE run:\n%s", report.Summary())
	}
}

func TestReport_SummaryListsViolations(t *testing.T) {
	r := NewReport()
	r.Fail("distinctness", 4, "duplicates an earlier stuck position")
	if r.Passed {
		t.Fatal("Fail() should mark the report as not passed")
	}
	if len(r.Violations) != 1 {
		t.Fatalf("len(Violations) = %d, want 1", len(r.Violations))
	}
	summary := r.Summary()
	if summary == "" {
		t.Fatal("Summary() should not be empty for a failing report")
	}
}
