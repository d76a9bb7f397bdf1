package pointsample

import "fmt"

// NonDeterministicSeed is the RandomSeed sentinel requesting entropy-based
// seeding instead of deterministic per-example seeds.
const NonDeterministicSeed int64 = -1

// CenterMethod selects the center sampling policy.
type CenterMethod int

const (
	// CenterUniform draws centers uniformly at random from the valid points,
	// with replacement.
	CenterUniform CenterMethod = iota

	// CenterFarthest runs farthest point sampling: each new center is the
	// valid point maximizing its minimum distance to the centers chosen so
	// far.
	CenterFarthest
)

func (m CenterMethod) String() string {
	switch m {
	case CenterUniform:
		return "Uniform"
	case CenterFarthest:
		return "Farthest"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// NeighborMethod selects the neighbor sampling policy.
type NeighborMethod int

const (
	// NeighborUniform draws neighbors uniformly at random from the eligible
	// points, with replacement.
	NeighborUniform NeighborMethod = iota

	// NeighborClosest takes the eligible points in ascending distance order,
	// without replacement.
	NeighborClosest
)

func (m NeighborMethod) String() string {
	switch m {
	case NeighborUniform:
		return "Uniform"
	case NeighborClosest:
		return "Closest"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Options configure a Sampler. The sampling fields are fixed for the
// Sampler's lifetime; a Sampler never mutates its Options after New.
type Options struct {
	// CenterMethod selects the center sampling policy.
	CenterMethod CenterMethod

	// NeighborMethod selects the neighbor sampling policy.
	NeighborMethod NeighborMethod

	// NumCenters is the number of center slots produced per example.
	// Must be positive.
	NumCenters int

	// NumNeighbors is the number of neighbor slots produced per center.
	// Must be positive.
	NumNeighbors int

	// MaxDist bounds neighbor eligibility: a valid point is an eligible
	// neighbor of a center iff its Euclidean distance to the center is at
	// most MaxDist. Must not be negative.
	MaxDist float32

	// RandomSeed seeds the per-example generators. With a concrete seed,
	// Sample is bit-reproducible. NonDeterministicSeed requests entropy
	// seeding.
	RandomSeed int64

	// Logger receives debug output. Defaults to a noop logger.
	Logger *Logger

	// Parallelism bounds the number of examples sampled concurrently.
	// Defaults to GOMAXPROCS.
	Parallelism int
}

// Option mutates Options before validation in New.
type Option func(*Options)

// WithLogger configures the logger used for per-call debug output.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithParallelism bounds the number of examples sampled concurrently.
// Values below 1 restore the default (GOMAXPROCS).
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

func (o *Options) validate() error {
	if o.NumCenters <= 0 {
		return ErrInvalidNumCenters
	}
	if o.NumNeighbors <= 0 {
		return ErrInvalidNumNeighbors
	}
	if o.MaxDist < 0 {
		return ErrNegativeMaxDist
	}
	switch o.CenterMethod {
	case CenterUniform, CenterFarthest:
	default:
		return &ErrInvalidMethod{Kind: "center", Value: int(o.CenterMethod)}
	}
	switch o.NeighborMethod {
	case NeighborUniform, NeighborClosest:
	default:
		return &ErrInvalidMethod{Kind: "neighbor", Value: int(o.NeighborMethod)}
	}
	return nil
}
