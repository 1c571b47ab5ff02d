package rle

// Run is a (length, value) pair meaning Value repeated Length times
// contiguously in the original sequence. Length is always >= 1 in a
// well-formed run sequence.
type Run[T any] struct {
	Value  T
	Length int32
}

// Lengths extracts the length column of a run sequence, in run order.
// The result is what WriteLengths serializes into the block header.
func Lengths[T any](runs []Run[T]) []int32 {
	if len(runs) == 0 {
		return nil
	}

	lengths := make([]int32, len(runs))
	for i, r := range runs {
		lengths[i] = r.Length
	}

	return lengths
}

// ExpandedLen returns the total number of values a run sequence expands to.
func ExpandedLen[T any](runs []Run[T]) int {
	total := 0
	for _, r := range runs {
		total += int(r.Length)
	}

	return total
}
