package aggregate

import "errors"

// ErrStepBudgetExceeded is returned when a single walker exceeds
// Config.MaxStepsPerParticle without sticking. Generation is aborted and
// the aggregate is left holding whatever prefix of particles had already
// stuck; every invariant still holds for that prefix.
var ErrStepBudgetExceeded = errors.New("aggregate: walker exceeded max steps per particle without sticking")

// ErrMaxParticlesExceeded is returned when a requested Generate/Reserve
// count would exceed Config.MaxParticles.
var ErrMaxParticlesExceeded = errors.New("aggregate: requested particle count exceeds configured maximum")
