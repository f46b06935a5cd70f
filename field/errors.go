// Package field computes, for a single goal, a goal-rooted shortest-path
// tree on a hex graph using incremental Dijkstra-style relaxation. Each
// Field is double-buffered: an "active" snapshot queries read, and an
// in-progress "build" buffer the incremental builder mutates. A swap
// publishes the build as the new active snapshot and bumps the stamp.
package field

import "errors"

// Sentinel errors for field build operations.
var (
	// ErrNoSeeds indicates a Start call produced an empty heap: every
	// supplied goal id was out of range and no warm-start dirty tile was
	// reachable in the previous snapshot.
	ErrNoSeeds = errors.New("field: no seeds to start build from")

	// ErrAlreadyBuilding indicates Start was called while a build was
	// already in progress for this Field.
	ErrAlreadyBuilding = errors.New("field: build already in progress")

	// ErrNotBuilding indicates Step was called with no build in progress.
	ErrNotBuilding = errors.New("field: no build in progress")

	// ErrHeapAllocFailed indicates the build's heap could not grow to
	// accept a push; the build is cancelled by the caller (scheduler) and
	// its warm-start seeds requeued to the cost model.
	ErrHeapAllocFailed = errors.New("field: heap allocation failed")

	// ErrDuplicateGoal indicates Start was given a goals list containing
	// the same tile id more than once.
	ErrDuplicateGoal = errors.New("field: duplicate goal tile id")
)
