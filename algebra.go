package geom3

// Free-function forms of the vector products used by the solver.
// They are equivalent to the Vec3 methods of the same name.

// Cross returns the cross product a × b:
// (ay·bz − az·by, az·bx − ax·bz, ax·by − ay·bx).
func Cross(a, b Vec3) Vec3 {
	return a.Cross(b)
}

// Dot returns the dot product ax·bx + ay·by + az·bz.
func Dot(a, b Vec3) float64 {
	return a.Dot(b)
}

// Sub returns the component-wise difference a − b.
func Sub(a, b Vec3) Vec3 {
	return a.Sub(b)
}
