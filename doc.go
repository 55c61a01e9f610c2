// Package geom3 computes intersections of line segments in 3D space.
//
// # Quick Start
//
//	import "github.com/gogpu/geom3"
//
//	a := geom3.Seg(geom3.V3(0, 0, 0), geom3.V3(1, 0, 0))
//	b := geom3.Seg(geom3.V3(1, 0, 0), geom3.V3(1, 1, 0))
//
//	if p, ok := geom3.Intersect(a, b); ok {
//	    fmt.Println(p) // (1, 0, 0)
//	} else {
//	    fmt.Println("No intersection point found.")
//	}
//
// # Squared Lengths
//
// Vec3.LengthSquared and Segment.SquaredLength return squared magnitudes.
// The parallel tolerance DefaultEpsilon is compared against a squared
// quantity as well. Euclidean lengths are only available through the
// separately named Length methods.
//
// # Algorithm
//
// Intersect solves the parametric equations of both lines using cross
// products. Segments whose direction cross product has a squared length
// below DefaultEpsilon are treated as parallel and never intersect; this
// includes collinear overlapping segments and degenerate (zero-length) ones.
// Endpoints are inclusive.
//
// The two lines are not checked for coplanarity. For skew input the point
// returned lies on the first segment only. Solve reports the distance to the
// second line in Result.Gap so callers can detect this.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. See SetLogger for the
// only piece of package state.
package geom3
