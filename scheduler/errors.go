// Package scheduler advances each goal's field build cooperatively within
// a per-frame time budget. It owns no graph data of its own: it holds a
// neighbor table and effective-cost array reference per goal, drains the
// cost model's dirty queue into a shared per-frame batch, and steps each
// goal's *field.Field forward by at most its share of the budget.
package scheduler

import "errors"

// Sentinel errors for scheduler operations.
var (
	// ErrUnknownGoal is returned when an operation names a goal outside the
	// fixed Goal enum.
	ErrUnknownGoal = errors.New("scheduler: unknown goal")

	// ErrNoGoalData is returned by ForceFullRecompute for a goal that has no
	// data bound via SetGoalData yet.
	ErrNoGoalData = errors.New("scheduler: goal has no data bound")

	// ErrDuplicateGoal is returned when SetGoalData is given a goal-id
	// list containing the same tile id more than once.
	ErrDuplicateGoal = errors.New("scheduler: duplicate goal tile id")
)
