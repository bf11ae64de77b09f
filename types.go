package radixspline

// Key is the set of unsigned integer types radixspline can index. Widths
// from 8 to 64 bits (and the platform-dependent uintptr) are supported;
// a single Builder/RadixSpline instantiation indexes exactly one width.
type Key interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// coordinate is a single (x, y) sample of the empirical CDF: x is a key
// and y is its rank, stored as a float so cone arithmetic and
// interpolation share one code path.
type coordinate[K Key] struct {
	x K
	y float64
}

// orientation is the sign of the cross product used to test whether a
// point lies clockwise, counterclockwise, or collinear with a ray from
// the last emitted spline knot.
type orientation int

const (
	collinear orientation = iota
	clockwise
	counterclockwise
)

// Stats is a read-only snapshot of a built index's size, useful for
// judging how compactly a given max_error represents a key sequence.
type Stats struct {
	// NumPoints is the number of keys ingested, including duplicates.
	NumPoints int
	// NumSplinePoints is the number of knots retained by the spline.
	NumSplinePoints int
	// RadixTableSize is the length of the radix table.
	RadixTableSize int
	// MaxError is the error envelope the index was built with.
	MaxError float64
}
