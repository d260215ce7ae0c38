package aggregate

import (
	"context"
	"fmt"

	"github.com/dla/aggregate/pkg/geometry"
	"github.com/dla/aggregate/pkg/lattice"
)

// ProgressFunc is an optional callback invoked after each particle sticks,
// reporting how many particles have stuck (sticksSoFar) against the
// requested target (n). It must not mutate the aggregate it was invoked
// against.
type ProgressFunc func(sticksSoFar, n int)

// Generate walks n new particles to completion and appends them to the
// aggregate. Cancellation is checked between particles, never mid-walk:
// ctx.Err() is returned and the aggregate is left holding whatever prefix
// of the n particles had already stuck, with every invariant intact for
// that prefix.
//
// A single walker that exceeds Config.MaxStepsPerParticle without
// sticking aborts generation with ErrStepBudgetExceeded, for the same
// reason: an unbounded stickiness=0 configuration must not spin forever.
func (a *Aggregate) Generate(ctx context.Context, n int, progress ProgressFunc) error {
	if err := a.Reserve(n); err != nil {
		return err
	}

	maxSteps := a.cfg.effectiveMaxSteps()
	sp := geometry.SpawnParams{SpawnDiam: a.spawnDiam, AttSize: a.attSize}

	for sticksSoFar := 0; sticksSoFar < n; sticksSoFar++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		sp.SpawnDiam = a.spawnDiam
		curr := geometry.Spawn(a.stream, a.dim, a.attractor, sp)
		steps, bcolls := 0, 0

		for {
			prev := curr
			curr = lattice.Advance(a.stream, curr, a.lattice)
			steps++

			sp.SpawnDiam = a.spawnDiam
			if !geometry.InBounds(curr, a.attractor, sp) {
				curr = prev
				bcolls++
			}

			stuckThisStep, parentIdx := a.attemptStick(prev, curr, sticksSoFar, n)
			if stuckThisStep {
				a.applyStick(prev, parentIdx, steps, bcolls)
				break
			}

			if int64(steps) >= maxSteps {
				return fmt.Errorf("particle %d: %w", sticksSoFar, ErrStepBudgetExceeded)
			}
		}

		if progress != nil {
			progress(sticksSoFar+1, n)
		}
	}

	return nil
}

// attemptStick runs one collision test: with probability currentStickiness,
// it checks whether curr coincides with an already-stuck particle. It
// returns whether this step causes a stick and, if so, the index of the
// particle the walker attached to. A walker whose prev position is itself
// already stuck (it passed onto the aggregate without sticking) does not
// stick there again, so no position is ever stuck twice.
func (a *Aggregate) attemptStick(prev, curr geometry.Pos, sticksSoFar, n int) (bool, int) {
	if a.stream.Float64() > a.currentStickiness(sticksSoFar, n) {
		return false, -1
	}
	parentIdx, found := a.findMatch(curr)
	if !found {
		return false, -1
	}
	if _, occupied := a.findMatch(prev); occupied {
		return false, -1
	}
	return true, parentIdx
}
