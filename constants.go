package radixspline

import "math"

const (
	// RadixBits is the number of high-order bits of (key-min) used to
	// index the radix table. The table holds ((max-min)>>shift)+2
	// entries, which is at most 2^RadixBits+1.
	RadixBits = 10

	// LinearThreshold is the bucket width below which splineSegment
	// falls back to a linear scan instead of a binary search.
	LinearThreshold = 32

	// DefaultMaxError is the absolute error envelope applied when a
	// Builder is constructed without an explicit WithMaxError call.
	DefaultMaxError = 32.0
)

// orientationEpsilon is the tolerance used by the cross-product
// orientation test in orientation.go. The reference implementation uses
// the machine epsilon of its float type; we do the same for float64,
// which is conservative (treats only near-exact collinearity as
// collinear, favoring emitting extra knots over silently widening the
// error bound).
var orientationEpsilon = math.Nextafter(1, 2) - 1
