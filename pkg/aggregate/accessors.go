package aggregate

import (
	"github.com/google/uuid"

	"github.com/dla/aggregate/pkg/attach"
	"github.com/dla/aggregate/pkg/geometry"
)

// Size returns the total number of stuck positions, seed included.
func (a *Aggregate) Size() int {
	return len(a.stuck)
}

// ParticleAt returns the stuck position at index i (seed positions occupy
// [0, len(seed)); walker-stuck positions follow in the order they stuck).
// The caller must not mutate the returned value's backing state; Pos is a
// value type, so this is safe by construction.
func (a *Aggregate) ParticleAt(i int) geometry.Pos {
	return a.stuck[i]
}

// RequiredSteps returns, for every non-seed stuck particle in order, the
// number of lattice-step attempts it took to stick.
func (a *Aggregate) RequiredSteps() []int {
	return a.requiredSteps
}

// BoundaryCollisions returns, for every non-seed stuck particle in order,
// how many of its step attempts were reverted by the boundary enforcer.
func (a *Aggregate) BoundaryCollisions() []int {
	return a.boundaryCollisions
}

// SeedParticles returns the seed geometry captured at construction time.
func (a *Aggregate) SeedParticles() []geometry.Pos {
	return a.seed
}

// MaxX returns the largest |x| observed among stuck particles.
func (a *Aggregate) MaxX() int64 { return a.maxX }

// MaxY returns the largest |y| observed among stuck particles.
func (a *Aggregate) MaxY() int64 { return a.maxY }

// MaxZ returns the largest |z| observed among stuck particles. Always 0
// for a 2D aggregate.
func (a *Aggregate) MaxZ() int64 { return a.maxZ }

// MaxRSqd returns the largest squared radius observed among stuck
// particles, tracked only for POINT/CIRCLE/SPHERE attractors.
func (a *Aggregate) MaxRSqd() int64 { return a.maxRSqd }

// SpawnDiam returns the current spawn-surface diameter.
func (a *Aggregate) SpawnDiam() int64 { return a.spawnDiam }

// AttSize returns the seed's effective characteristic size (always 1 for
// POINT, regardless of any configured value).
func (a *Aggregate) AttSize() int64 { return a.attSize }

// BOffset returns the spawn-region margin constant this aggregate was
// constructed with.
func (a *Aggregate) BOffset() int64 { return a.bOffset }

// RunID identifies this aggregate's run, stable for its lifetime.
func (a *Aggregate) RunID() uuid.UUID { return a.runID }

// Dim, Lattice and AttractorShape expose the fixed construction-time
// parameters.
func (a *Aggregate) Dim() geometry.Dim                  { return a.dim }
func (a *Aggregate) Lattice() geometry.Lattice          { return a.lattice }
func (a *Aggregate) AttractorShape() geometry.Attractor { return a.attractor }

// AttachmentOf reports the stuck index a non-seed particle at index i
// attached to, if Config.TrackAttachment was set. The second return value
// is false when attachment tracking is disabled or i is a seed index.
func (a *Aggregate) AttachmentOf(i int) (int, bool) {
	if a.attachGraph == nil {
		return -1, false
	}
	return a.attachGraph.ParentOf(i)
}

// AttachGraph exposes the underlying attachment graph directly, or nil if
// Config.TrackAttachment was not set.
func (a *Aggregate) AttachGraph() *attach.Graph {
	return a.attachGraph
}
