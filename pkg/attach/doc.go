// Package attach provides an optional attachment graph for an aggregate:
// for every non-seed stuck particle it records which already-stuck
// particle it attached to. The collision rule already finds that particle
// as part of its membership scan, so recording it costs two
// map writes per stick (parent and children), not a second pass — it is off by default
// (Config.TrackAttachment) to keep the hot path allocation-free when
// unused.
package attach
