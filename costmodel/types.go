package costmodel

// Bounds on effective cost, per spec §3.
const (
	EpsMin float32 = 1e-3
	EpsMax float32 = 1e6
)

// Options configures a CostModel at construction time. Use DefaultOptions
// and override via functional Option values, the same pattern lvlath's
// dijkstra.Options/DefaultOptions use.
type Options struct {
	// Alpha weights the congestion term.
	Alpha float32
	// Gamma weights the hazard term.
	Gamma float32
	// EMALambda is the crowd EMA smoothing factor, in [0,1]. 0 freezes the
	// EMA; 1 overwrites it with each sample.
	EMALambda float32
	// DirtyThreshold (ε_r) is the relative drift threshold past which a
	// recomputed tile is reported dirty.
	DirtyThreshold float32
}

// Option is a functional option mutating Options before construction.
type Option func(*Options)

// DefaultOptions returns sane defaults: Alpha=1, Gamma=1, EMALambda=0.2,
// DirtyThreshold=0.05.
func DefaultOptions() Options {
	return Options{
		Alpha:          1,
		Gamma:          1,
		EMALambda:      0.2,
		DirtyThreshold: 0.05,
	}
}

// WithCoefficients sets the congestion and hazard weights. Negative inputs
// are clamped to zero.
func WithCoefficients(alpha, gamma float32) Option {
	return func(o *Options) {
		if alpha < 0 {
			alpha = 0
		}
		if gamma < 0 {
			gamma = 0
		}
		o.Alpha, o.Gamma = alpha, gamma
	}
}

// WithEMALambda sets the crowd EMA smoothing factor, clamped to [0,1].
func WithEMALambda(lambda float32) Option {
	return func(o *Options) {
		o.EMALambda = clampUnit(lambda)
	}
}

// WithDirtyThreshold sets the relative drift threshold ε_r. Negative
// inputs are clamped to zero.
func WithDirtyThreshold(epsilonR float32) Option {
	return func(o *Options) {
		if epsilonR < 0 {
			epsilonR = 0
		}
		o.DirtyThreshold = epsilonR
	}
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CostModel owns the per-tile base/crowd/hazard/effective arrays and the
// dirty-tile queue for a single World. It is not safe for concurrent use —
// the whole module is single-threaded and cooperative (spec §5).
type CostModel struct {
	n int

	alpha, gamma   float32
	emaLambda      float32
	dirtyThreshold float32

	impassable   []bool
	base         []float32
	flowCapacity []float32
	crowd        []float32
	hazard       []float32
	eff          []float32

	dirty dirtyQueue
}
