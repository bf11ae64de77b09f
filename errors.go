package radixspline

import (
	"errors"
	"fmt"
)

var (
	// ErrErrorAlreadySet indicates WithMaxError was called after at
	// least one key had already been pushed.
	ErrErrorAlreadySet = errors.New("radixspline: max error must be set before the first push")
	// ErrOutOfOrder indicates a pushed key is smaller than the
	// previously pushed key.
	ErrOutOfOrder = errors.New("radixspline: keys must be pushed in non-decreasing order")
	// ErrKeyOutOfRange indicates a pushed key falls outside [min, max]
	// declared at construction.
	ErrKeyOutOfRange = errors.New("radixspline: key outside [min, max] declared at construction")
)

// builderErrorf wraps cause with the method name that produced it,
// keeping failures structured and greppable.
func builderErrorf(method string, cause error) error {
	return fmt.Errorf("radixspline: %s: %w", method, cause)
}
