// Package invariants checks a finished (or in-progress) aggregate against
// the universally-quantified properties every run must hold: distinctness
// of stuck positions, length coherence between the statistics sequences,
// the current growth-metric bounds, boundary containment, and lattice
// adjacency. It inspects one state only, so it does not check that the
// growth metrics were non-decreasing over the run.
// It is a read-only auditor: it never mutates the aggregate it inspects
// and is meant to run in tests, not in the generation hot path.
package invariants
