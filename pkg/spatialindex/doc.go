// Package spatialindex provides an optional occupancy-grid acceleration
// for the aggregate's membership scan: stuck particles
// are bucketed by an integer cell (their coordinates divided by a fixed
// cell size), so a lookup can skip any cell known to hold nothing instead
// of scanning the whole stuck sequence. It never changes the stick order
// or the tie-breaking rule — it only prunes which entries get compared.
package spatialindex
