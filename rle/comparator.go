package rle

// EqualFunc is the pluggable equality predicate both encoders use to decide
// run continuation. Implementations must be consistent with equality
// (reflexive, symmetric, transitive) over the value domain; run merging
// correctness depends on it.
type EqualFunc[T any] func(a, b T) bool

// Equal returns the default comparator: structural equality via ==.
//
// Callers needing different semantics (e.g. tolerance for floating-point
// values) inject their own EqualFunc through EncodeFunc or
// NewStreamEncoderFunc instead.
func Equal[T comparable]() EqualFunc[T] {
	return func(a, b T) bool { return a == b }
}
