// Package lattice implements the lattice step generator: given a lattice
// geometry and dimensionality, it draws one uniform value
// from the aggregate's RNG stream and advances a walker position by one
// lattice-neighbour offset, chosen by cumulative-threshold selection in a
// fixed declared order so that test vectors are reproducible for a given
// PRNG stream.
package lattice
