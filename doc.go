// Package radixspline is a learned index over a sorted sequence of
// unsigned integer keys.
//
// 🚀 What is a radix spline?
//
//	A two-level structure that approximates the empirical CDF of a sorted
//	key sequence with a monotone piecewise-linear spline, then narrows a
//	key lookup down to a small bucket via a dense radix table keyed on the
//	high-order bits of the key. The result is a bounded sub-range of the
//	original array — `data[start:end]` — guaranteed to contain the key if
//	it is present, which a short linear or binary scan then resolves
//	exactly.
//
// ✨ Why use radixspline?
//
//   - Tiny footprint — the index stores only spline knots and a radix
//     table, never the keys themselves.
//   - Bounded error — the spline is fitted within max_error of one rank
//     per distinct key; a key repeated in a run longer than that
//     envelope has occurrences whose ranks lie further away.
//   - One pass — built online from sorted input in O(n) time via the
//     feasible-cone GreedySpline algorithm.
//   - Pure Go — no cgo, no hidden dependencies for the core algorithm.
//
// Under the hood:
//
//	Builder[K]       — ingests sorted keys, fits spline knots, fills the radix table.
//	RadixSpline[K]   — the built, read-only index; answers position queries.
//
// Quick-start:
//
//	b := radixspline.NewBuilder[uint32](data[0], data[len(data)-1])
//	for _, k := range data {
//	    if err := b.Push(k); err != nil {
//	        // out-of-order or out-of-range key
//	    }
//	}
//	rs := b.Build()
//	start, end := rs.SearchBound(8128)
//	// data[start:end] contains 8128 if it is present in data
//
//	go get github.com/jknodt/radixspline
package radixspline
