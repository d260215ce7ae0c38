// Package geometry defines the aggregate's coordinate type and the
// dimension/lattice/attractor-specific predicates that depend on it: the
// spawn sampler, the boundary enforcer, and the attractor (seed) initializer.
//
// Position is realized as a single tagged-variant type (Pos) rather than
// separate 2D/3D types, so the small number of geometry-specific predicates
// dispatch on the Dim tag instead of the caller juggling two parallel APIs.
package geometry
