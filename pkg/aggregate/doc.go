// Package aggregate is the core of the DLA simulation engine: the
// aggregate store, the collision/stick rule, and the generator driver
// that repeatedly spawns, walks, bounds-checks and attempts to stick a
// particle until the target count has stuck.
//
// Generation is single-threaded and synchronous. An Aggregate owns one
// RNG stream for its entire lifetime; every random draw across a run
// comes from that stream in the fixed order spawn → (step, stick-test)* .
// Given the same Config and the same seed, two Aggregates produce
// identical output.
package aggregate
