package geom3

// DefaultEpsilon is the parallel tolerance used by Intersect.
//
// It is compared against the squared length of d1 × d2, so it is in squared
// units of the cross product, not a distance.
const DefaultEpsilon = 1e-8

// Option configures a Solve call.
//
// Example:
//
//	// Looser parallel test for coarse input
//	r := geom3.Solve(a, b, geom3.WithEpsilon(1e-6))
type Option func(*solveOptions)

// solveOptions holds optional configuration for Solve.
type solveOptions struct {
	epsilon float64
}

// defaultOptions returns the options Intersect uses.
func defaultOptions() solveOptions {
	return solveOptions{
		epsilon: DefaultEpsilon,
	}
}

// WithEpsilon sets the parallel tolerance.
// Values that are not positive leave the default in place.
func WithEpsilon(eps float64) Option {
	return func(o *solveOptions) {
		if eps > 0 {
			o.epsilon = eps
		}
	}
}
