// Package flowergoal maintains the dynamic FlowersNear goal set: every
// passable flower tile whose nectar stock ratio clears a hysteresis band
// becomes a goal, with a seed cost biased by how desirable the tile is
// (more stock and quality means a cheaper, more attractive seed). It runs
// on its own slow refresh clock, independent of the scheduler's per-frame
// budget.
package flowergoal

import "errors"

// ErrNilWorld is returned by New when given a nil world view.
var ErrNilWorld = errors.New("flowergoal: world is nil")
