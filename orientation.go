package radixspline

// orient computes the sign of the 2D cross product of (dx1,dy1) and
// (dx2,dy2) and classifies it against orientationEpsilon: a positive
// signed area (within tolerance) means the second vector is clockwise of
// the first, a negative one counterclockwise, and anything inside the
// tolerance band is treated as collinear.
func orient(dx1, dy1, dx2, dy2 float64) orientation {
	e := dy1*dx2 - dy2*dx1
	switch {
	case e > orientationEpsilon:
		return clockwise
	case e < -orientationEpsilon:
		return counterclockwise
	default:
		return collinear
	}
}
