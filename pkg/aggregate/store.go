package aggregate

import (
	"math"

	"github.com/google/uuid"

	"github.com/dla/aggregate/pkg/attach"
	"github.com/dla/aggregate/pkg/geometry"
	"github.com/dla/aggregate/pkg/rng"
	"github.com/dla/aggregate/pkg/schedule"
	"github.com/dla/aggregate/pkg/spatialindex"
)

// Aggregate is one DLA run: the spatial data model, its PRNG stream and
// its optional accelerators. Zero value is not usable — construct with
// New.
type Aggregate struct {
	cfg Config

	dim        geometry.Dim
	lattice    geometry.Lattice
	attractor  geometry.Attractor
	stickiness float64
	curve      schedule.Curve // nil unless Config.StickinessSchedule is set

	attSize   int64
	bOffset   int64
	spawnDiam int64

	stuck              []geometry.Pos
	seed               []geometry.Pos
	requiredSteps      []int
	boundaryCollisions []int

	maxX, maxY, maxZ int64
	maxRSqd          int64

	stream *rng.RNG
	runID  uuid.UUID

	attachGraph *attach.Graph       // nil unless Config.TrackAttachment
	spIndex     *spatialindex.Index // nil unless Config.UseSpatialIndex
}

// New creates an empty Aggregate and seeds the attractor geometry into it.
// It validates cfg and returns a contract-violation error for a
// disallowed (dim, attractor) pair, an
// out-of-range stickiness, or any other invalid field — never a panic,
// since this is caller-supplied configuration, not an internal invariant.
func New(cfg Config) (*Aggregate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seedValue := cfg.Seed
	if seedValue == 0 {
		seedValue = generateSeed()
	}

	a := &Aggregate{
		cfg:        cfg,
		dim:        cfg.Dim,
		lattice:    cfg.Lattice,
		attractor:  cfg.Attractor,
		stickiness: cfg.Stickiness,
		attSize:    cfg.effectiveAttSize(),
		bOffset:    cfg.effectiveBOffset(),
		stream:     rng.NewRNG(seedValue, "aggregate_walk", cfg.Hash()),
		runID:      uuid.New(),
	}
	a.spawnDiam = a.bOffset

	if cfg.StickinessSchedule != nil {
		curve, err := cfg.StickinessSchedule.Build()
		if err != nil {
			return nil, err
		}
		a.curve = curve
	}

	if cfg.TrackAttachment {
		a.attachGraph = attach.New()
	}
	if cfg.UseSpatialIndex {
		a.spIndex = spatialindex.New(a.dim, spatialindex.DefaultCellSize)
	}

	seedPositions := geometry.SeedPositions(a.dim, a.attractor, a.attSize)
	a.seed = make([]geometry.Pos, len(seedPositions))
	copy(a.seed, seedPositions)
	a.stuck = make([]geometry.Pos, 0, len(seedPositions))
	for i, p := range seedPositions {
		a.stuck = append(a.stuck, p)
		a.observeExtent(p)
		if a.spIndex != nil {
			a.spIndex.Insert(p, i)
		}
	}

	return a, nil
}

// Reserve pre-sizes particle and statistics storage for n additional
// particles. It is a hint only: Go slices still grow past
// it, but a subsequent Generate of at most n particles does not
// reallocate. It returns ErrMaxParticlesExceeded when n more particles
// would exceed Config.MaxParticles.
func (a *Aggregate) Reserve(n int) error {
	if a.cfg.MaxParticles > 0 && len(a.stuck)-len(a.seed)+n > a.cfg.MaxParticles {
		return ErrMaxParticlesExceeded
	}
	a.stuck = growPos(a.stuck, n)
	a.requiredSteps = growInt(a.requiredSteps, n)
	a.boundaryCollisions = growInt(a.boundaryCollisions, n)
	return nil
}

func growPos(s []geometry.Pos, extra int) []geometry.Pos {
	if cap(s)-len(s) >= extra {
		return s
	}
	grown := make([]geometry.Pos, len(s), len(s)+extra)
	copy(grown, s)
	return grown
}

func growInt(s []int, extra int) []int {
	if cap(s)-len(s) >= extra {
		return s
	}
	grown := make([]int, len(s), len(s)+extra)
	copy(grown, s)
	return grown
}

// extentGrowth reports which running growth metric (max_y, max_z, or
// max_r_sqd) a position newly maximizes (strict growth only — ties do
// not re-trigger a dependent update), so applyStick can drive
// spawn_diam updates off the same observation instead of duplicating
// the comparisons.
type extentGrowth struct {
	y, z, r bool
}

// observeExtent updates the max_x/max_y/max_z/max_r_sqd growth metrics for
// a newly-present position and reports which extent grew.
func (a *Aggregate) observeExtent(p geometry.Pos) extentGrowth {
	var g extentGrowth
	if p.AbsX() > a.maxX {
		a.maxX = p.AbsX()
	}
	if p.AbsY() > a.maxY {
		a.maxY = p.AbsY()
		g.y = true
	}
	if a.dim == geometry.Dim3 && p.AbsZ() > a.maxZ {
		a.maxZ = p.AbsZ()
		g.z = true
	}
	if a.attractor == geometry.Point || a.attractor == geometry.Circle || a.attractor == geometry.Sphere {
		if r := p.RSqd(); r > a.maxRSqd {
			a.maxRSqd = r
			g.r = true
		}
	}
	return g
}

// currentStickiness resolves the effective stickiness for the particle
// about to be attempted, honoring an optional schedule (pkg/schedule).
func (a *Aggregate) currentStickiness(sticksSoFar, target int) float64 {
	if a.curve == nil {
		return a.stickiness
	}
	progress := 0.0
	if target > 0 {
		progress = float64(sticksSoFar) / float64(target)
	}
	return a.curve.Evaluate(progress)
}

// findMatch scans stuck for a position equal to curr in insertion order;
// the first match ends the scan. With UseSpatialIndex, the scan is
// narrowed to the cell of curr first: equal positions always share a cell
// and each cell lists its indices in insertion order, so narrowing never
// changes which match is found.
func (a *Aggregate) findMatch(curr geometry.Pos) (int, bool) {
	if a.spIndex != nil {
		for _, idx := range a.spIndex.Candidates(curr) {
			if a.stuck[idx].Equal(curr) {
				return idx, true
			}
		}
		return -1, false
	}
	for i, p := range a.stuck {
		if p.Equal(curr) {
			return i, true
		}
	}
	return -1, false
}

// applyStick appends prev to stuck, records its statistics, and grows
// spawn_diam whenever the newly stuck particle extends the aggregate's
// footprint along the axis its attractor cares about. The growth trigger
// for LINE/PLANE uses the absolute coordinate (AbsY/AbsZ), matching the
// monotone, never-below-b_offset contract spawn_diam must hold: driving
// it off the signed coordinate instead would let a particle stuck on the
// negative side shrink spawn_diam back down, violating that contract.
func (a *Aggregate) applyStick(prev geometry.Pos, parentIdx, steps, bcolls int) {
	newIdx := len(a.stuck)
	a.stuck = append(a.stuck, prev)
	a.requiredSteps = append(a.requiredSteps, steps)
	a.boundaryCollisions = append(a.boundaryCollisions, bcolls)
	grew := a.observeExtent(prev)

	switch a.attractor {
	case geometry.Point:
		if grew.r {
			a.spawnDiam = 2*int64(math.Sqrt(float64(a.maxRSqd))) + a.bOffset
		}
	case geometry.Line:
		if a.dim == geometry.Dim2 && grew.y {
			a.spawnDiam = a.maxY + a.bOffset
		}
	case geometry.Plane:
		if grew.z {
			a.spawnDiam = a.maxZ + a.bOffset
		}
	case geometry.Circle, geometry.Sphere:
		// spawn_diam does not adapt dynamically for CIRCLE/SPHERE.
	}

	if a.spIndex != nil {
		a.spIndex.Insert(prev, newIdx)
	}
	if a.attachGraph != nil {
		a.attachGraph.Attach(newIdx, parentIdx)
	}
}
