// Package rng provides the deterministic random number stream used by an
// aggregate generator.
//
// # Overview
//
// The RNG type derives a reproducible seed from a master seed plus a
// discriminator (a stage name and a config hash), so the same
// (dim, lattice, attractor, stickiness) configuration fed the same seed
// always produces the same walk. A generation run uses exactly one RNG
// instance as its single draw stream: spawn, then repeated (step,
// stick-probability) draws, in that fixed order, until a particle
// sticks.
//
// # Sub-Seed Derivation
//
//	seed = H(masterSeed, stageName, configHash)
//
// where H is SHA-256 and the first 8 bytes become the uint64 seed for an
// underlying math/rand source.
//
// # Usage
//
//	stream := rng.NewSeeded(12345)       // deterministic, for tests
//	stream := rng.NewFromTime()          // wall-clock default
//
//	if stream.Float64() < stickiness { ... }
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. An aggregate owns exactly one RNG
// for the lifetime of a generation run (see pkg/aggregate), consistent
// with the single-threaded, synchronous execution model.
package rng
