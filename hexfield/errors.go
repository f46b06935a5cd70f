// Package hexfield is the module's root facade: it owns one World's
// hexgrid tables, cost model, per-goal fields, scheduler, and dynamic
// flower-goal maintainer behind a single Init/Update/Shutdown lifecycle, per
// spec.md §6. Nothing outside this package needs to know how a goal's
// direction field is built or kept warm — Core hides that behind
// QueryDirection and the Field* introspection accessors.
package hexfield

import "errors"

// ErrNilWorld is returned by Init when given a nil world view.
var ErrNilWorld = errors.New("hexfield: world is nil")

// ErrShutdown is returned by any Core method with an error result that is
// called after Shutdown.
var ErrShutdown = errors.New("hexfield: core is shut down")
