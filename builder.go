package radixspline

// Builder ingests keys of type K in non-decreasing order and fits a
// monotone piecewise-linear spline approximating their empirical CDF,
// constrained by a maximum absolute error bound. It owns all working
// state linearly; Build consumes it and returns an immutable
// RadixSpline.
type Builder[K Key] struct {
	min, max K
	width    int // bit width of K
	shift    uint
	maxError float64

	radixTable   []int
	splinePoints []coordinate[K]

	numPoints int
	distinct  int

	prevX K
	prevY float64

	prevPoint  coordinate[K]
	upperLimit coordinate[K]
	lowerLimit coordinate[K]

	prevPrefix int
}

// NewBuilder creates an empty Builder over the inclusive key range
// [min, max]. If min > max, the two are silently swapped.
func NewBuilder[K Key](min, max K) *Builder[K] {
	if min > max {
		min, max = max, min
	}
	width := bitWidth[K]()
	diff := uint64(max - min)
	shift := shiftBits(width, diff)
	maxPrefix := diff >> shift

	return &Builder[K]{
		min:        min,
		max:        max,
		width:      width,
		shift:      shift,
		maxError:   DefaultMaxError,
		radixTable: newRadixTable(maxPrefix),
		prevX:      min,
	}
}

// WithMaxError sets the absolute error envelope. It must be called
// before the first Push; calling it afterwards is a programmer error.
func (b *Builder[K]) WithMaxError(e float64) error {
	if b.numPoints != 0 {
		return builderErrorf("WithMaxError", ErrErrorAlreadySet)
	}
	b.maxError = e
	return nil
}

// Len returns the number of keys pushed so far, including duplicates.
func (b *Builder[K]) Len() int { return b.numPoints }

// Empty reports whether any key has been pushed yet.
func (b *Builder[K]) Empty() bool { return b.numPoints == 0 }

// Push appends one key. x must satisfy prevX <= x <= max, where prevX
// is min before the first push. Violating either bound returns an
// error rather than panicking, matching radixspline's fail-loud-but-
// recoverable error policy.
func (b *Builder[K]) Push(x K) error {
	if b.numPoints > 0 && x < b.prevX {
		return builderErrorf("Push", ErrOutOfOrder)
	}
	if x < b.min || x > b.max {
		return builderErrorf("Push", ErrKeyOutOfRange)
	}

	var y float64
	if b.numPoints == 0 {
		y = 0
	} else {
		y = b.prevY + 1
	}

	b.insert(x, y)

	b.numPoints++
	b.prevX = x
	b.prevY = y
	return nil
}

// insert runs the feasible-cone GreedySpline step for one distinct
// point, dispatching on distinct ∈ {0, 1, 2, ≥3} as a small state
// machine rather than nested zero-checks.
func (b *Builder[K]) insert(x K, y float64) {
	switch {
	case b.numPoints == 0:
		b.distinct = 1
		b.addKeyToSpline(coordinate[K]{x: x, y: y})
		b.setPrevCDF(x, y)
		return
	case x == b.prevX:
		// duplicate key: advances rank only, never touches the fitter.
		return
	}

	b.distinct++
	upperY := y + b.maxError
	lowerY := y - b.maxError
	if lowerY < 0 {
		lowerY = 0
	}

	if b.distinct == 2 {
		b.setUpperLimit(x, upperY)
		b.setLowerLimit(x, lowerY)
		b.setPrevCDF(x, y)
		return
	}

	last := b.splinePoints[len(b.splinePoints)-1]

	upperLimitXDiff := float64(b.upperLimit.x) - float64(last.x)
	lowerLimitXDiff := float64(b.lowerLimit.x) - float64(last.x)
	xDiff := float64(x) - float64(last.x)

	upperLimitYDiff := b.upperLimit.y - last.y
	lowerLimitYDiff := b.lowerLimit.y - last.y
	yDiff := y - last.y

	if orient(upperLimitXDiff, upperLimitYDiff, xDiff, yDiff) != clockwise ||
		orient(lowerLimitXDiff, lowerLimitYDiff, xDiff, yDiff) != counterclockwise {
		// point fell outside the cone: emit the last point we saw as a
		// knot and reset the cone from the new point's witnesses.
		b.addKeyToSpline(b.prevPoint)
		b.setUpperLimit(x, upperY)
		b.setLowerLimit(x, lowerY)
	} else {
		// point is still inside the cone: tighten whichever ray it
		// narrows.
		upperYDiff := upperY - last.y
		if orient(upperLimitXDiff, upperLimitYDiff, xDiff, upperYDiff) == clockwise {
			b.setUpperLimit(x, upperY)
		}
		lowerYDiff := lowerY - last.y
		if orient(lowerLimitXDiff, lowerLimitYDiff, xDiff, lowerYDiff) == counterclockwise {
			b.setLowerLimit(x, lowerY)
		}
	}
	b.setPrevCDF(x, y)
}

func (b *Builder[K]) setPrevCDF(x K, y float64)    { b.prevPoint = coordinate[K]{x: x, y: y} }
func (b *Builder[K]) setUpperLimit(x K, y float64) { b.upperLimit = coordinate[K]{x: x, y: y} }
func (b *Builder[K]) setLowerLimit(x K, y float64) { b.lowerLimit = coordinate[K]{x: x, y: y} }

// addKeyToSpline appends c as a new knot and back-fills the radix table
// up to c's prefix.
func (b *Builder[K]) addKeyToSpline(c coordinate[K]) {
	b.splinePoints = append(b.splinePoints, c)
	currPrefix := int(uint64(c.x-b.min) >> b.shift)
	b.fillRadixTable(currPrefix, len(b.splinePoints)-1)
}

// Build finalizes the spline: if the last ingested point is not already
// a knot, it is appended; the radix table's tail is then back-filled to
// point past the last knot. The Builder is left unusable afterwards —
// callers should discard it.
func (b *Builder[K]) Build() *RadixSpline[K] {
	if b.numPoints == 0 {
		return &RadixSpline[K]{}
	}

	if len(b.splinePoints) == 0 || b.splinePoints[len(b.splinePoints)-1].x != b.prevX {
		b.addKeyToSpline(coordinate[K]{x: b.prevX, y: b.prevY})
	}

	l := len(b.radixTable)
	start := b.prevPrefix + 1
	if start > l-1 {
		start = l - 1
	}
	for p := start; p < l; p++ {
		b.radixTable[p] = len(b.splinePoints)
	}

	return &RadixSpline[K]{
		min:          b.min,
		max:          b.max,
		width:        b.width,
		shift:        b.shift,
		maxError:     b.maxError,
		numPoints:    b.numPoints,
		radixTable:   b.radixTable,
		splinePoints: b.splinePoints,
	}
}
