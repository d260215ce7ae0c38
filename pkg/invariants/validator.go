package invariants

import (
	"github.com/dla/aggregate/pkg/aggregate"
	"github.com/dla/aggregate/pkg/geometry"
	"github.com/dla/aggregate/pkg/lattice"
)

// Check runs every static invariant against the current state of a.
// "Static" means it inspects the aggregate as it stands now; it cannot
// observe whether spawn_diam was non-decreasing across the run that
// produced this state (that requires a caller to snapshot spawn_diam via
// a ProgressFunc and check the sequence itself). What it does check:
// length coherence, distinctness (seed duplicates excluded for
// CIRCLE/SPHERE), containment against the current boundary region, and
// lattice adjacency of every non-seed stuck particle to some
// earlier-stuck particle.
func Check(a *aggregate.Aggregate) *Report {
	r := NewReport()
	checkLengthCoherence(a, r)
	checkDistinctness(a, r)
	checkContainment(a, r)
	checkAdjacency(a, r)
	checkBounds(a, r)
	return r
}

func checkLengthCoherence(a *aggregate.Aggregate, r *Report) {
	seedLen := len(a.SeedParticles())
	nonSeed := a.Size() - seedLen
	steps, bcolls := a.RequiredSteps(), a.BoundaryCollisions()
	if len(steps) != nonSeed {
		r.Fail("length-coherence", -1, "len(requiredSteps) does not match stuck-minus-seed count")
	}
	if len(bcolls) != nonSeed {
		r.Fail("length-coherence", -1, "len(boundaryCollisions) does not match stuck-minus-seed count")
	}
}

func checkDistinctness(a *aggregate.Aggregate, r *Report) {
	seedLen := len(a.SeedParticles())
	att := a.AttractorShape()
	seedMayDuplicate := att == geometry.Circle || att == geometry.Sphere

	seen := make(map[geometry.Pos]struct{}, a.Size())
	for i := 0; i < a.Size(); i++ {
		p := a.ParticleAt(i)
		if i < seedLen && seedMayDuplicate {
			continue
		}
		if _, ok := seen[p]; ok {
			r.Fail("distinctness", i, "duplicates an earlier stuck position")
			continue
		}
		seen[p] = struct{}{}
	}
}

func checkContainment(a *aggregate.Aggregate, r *Report) {
	sp := geometry.SpawnParams{SpawnDiam: a.SpawnDiam(), AttSize: a.AttSize()}
	seedLen := len(a.SeedParticles())
	for i := seedLen; i < a.Size(); i++ {
		p := a.ParticleAt(i)
		if !geometry.InBounds(p, a.AttractorShape(), sp) {
			r.Fail("containment", i, "stuck position outside the current boundary region")
		}
	}
}

func checkAdjacency(a *aggregate.Aggregate, r *Report) {
	moves := lattice.MoveSet(a.Dim(), a.Lattice())
	seedLen := len(a.SeedParticles())
	for i := seedLen; i < a.Size(); i++ {
		p := a.ParticleAt(i)
		if !adjacentToAny(a, i, p, moves) {
			r.Fail("adjacency", i, "no earlier-stuck particle is a valid lattice move away")
		}
	}
}

func adjacentToAny(a *aggregate.Aggregate, upTo int, p geometry.Pos, moves [][3]int64) bool {
	for j := 0; j < upTo; j++ {
		q := a.ParticleAt(j)
		for _, m := range moves {
			if q.Add(m[0], m[1], m[2]).Equal(p) {
				return true
			}
		}
	}
	return false
}

// checkBounds re-derives the literal end-to-end scenario 6 relationship
// (max_r_sqd >= max_x^2 and >= max_y^2) for POINT/CIRCLE/SPHERE runs, plus
// spawn_diam's floor at b_offset.
func checkBounds(a *aggregate.Aggregate, r *Report) {
	if a.SpawnDiam() < a.BOffset() {
		r.Fail("monotone-bounds", -1, "spawn_diam is below b_offset")
	}
	att := a.AttractorShape()
	if att == geometry.Point || att == geometry.Circle || att == geometry.Sphere {
		if a.MaxRSqd() < a.MaxX()*a.MaxX() {
			r.Fail("monotone-bounds", -1, "maxRSqd is smaller than maxX^2")
		}
		if a.MaxRSqd() < a.MaxY()*a.MaxY() {
			r.Fail("monotone-bounds", -1, "maxRSqd is smaller than maxY^2")
		}
		if a.Dim() == geometry.Dim3 && a.MaxRSqd() < a.MaxZ()*a.MaxZ() {
			r.Fail("monotone-bounds", -1, "maxRSqd is smaller than maxZ^2")
		}
	}
}
