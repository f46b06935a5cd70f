// Package costmodel maintains per-tile effective traversal costs from base
// terrain, smoothed crowd density, and hazard penalties, and tracks which
// tiles have drifted enough to invalidate a previously built field.
//
// Effective cost: eff[i] = clamp(base[i] + α·congestion[i] + γ·hazard[i]),
// congestion[i] = max(0, ρ-1)², ρ = crowd[i]/flowCapacity[i]. Every stored
// value lies in [EpsMin, EpsMax]; impassable tiles are pinned to EpsMax.
package costmodel

import "errors"

// Sentinel errors for costmodel operations.
var (
	// ErrNilWorld indicates a nil hexgrid.World was passed to New.
	ErrNilWorld = errors.New("costmodel: world is nil")

	// ErrTileOutOfRange indicates a tile id outside [0, N) was supplied to
	// an operation that validates its input (SetHazard, MarkDirty).
	ErrTileOutOfRange = errors.New("costmodel: tile id out of range")

	// ErrQueueAllocFailed indicates the dirty queue could not grow to
	// accommodate a new entry; that one enqueue is dropped and the queue's
	// existing entries are left untouched. A cost change that triggered the
	// push is still applied to eff, and ids enqueued earlier in the same
	// call stay queued.
	ErrQueueAllocFailed = errors.New("costmodel: dirty queue allocation failed")
)
