// Package schedule provides an optional stickiness-vs-progress curve for
// an aggregate generation run. By default stickiness is a single fixed
// constant; a Curve lets a caller instead vary stickiness as a function
// of how much of the target particle count has stuck so far — e.g.
// starting loose so early arms spread out, then tightening as the
// aggregate fills in, to shape density from core to edge.
package schedule
