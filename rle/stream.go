package rle

import "github.com/colstore/runlen/errs"

// StreamEncoder run-length encodes a sequence one value at a time, without
// ever holding the full input.
//
// The encoder keeps at most one open run (pending value and count) plus the
// ordered list of committed runs. The state machine in Submit guarantees the
// committed runs are fully merged and maximal at every point, so Finalize
// only has to flush the pending run; it never re-inspects the committed
// tail. For any finite input the result equals Encode over the same values.
//
// Invariant: sum of committed run lengths + pending count == number of
// values submitted so far.
//
// A StreamEncoder is single-use: it is created for one column-build pass,
// consumed once via Finalize, and never reused. Submit after Finalize fails
// with errs.ErrEncoderFinalized. It is not safe for concurrent use.
type StreamEncoder[T any] struct {
	equal     EqualFunc[T]
	committed []Run[T]
	pending   T
	pendingN  int32
	count     int
	finalized bool
}

// NewStreamEncoder creates a streaming encoder using structural equality.
func NewStreamEncoder[T comparable]() *StreamEncoder[T] {
	return NewStreamEncoderFunc(Equal[T]())
}

// NewStreamEncoderFunc creates a streaming encoder with an injected comparator.
func NewStreamEncoderFunc[T any](equal EqualFunc[T]) *StreamEncoder[T] {
	return &StreamEncoder[T]{equal: equal}
}

// Submit consumes the next value of the sequence.
//
// If no run is open, it opens one. If the value equals the pending value
// under the active comparator, the open run is extended. Otherwise the open
// run is committed and a new one is opened. Amortized O(1); the only
// allocation is the occasional append to the committed run list.
func (e *StreamEncoder[T]) Submit(value T) error {
	if e.finalized {
		return errs.ErrEncoderFinalized
	}

	e.count++

	if e.pendingN == 0 {
		e.pending = value
		e.pendingN = 1

		return nil
	}

	if e.equal(e.pending, value) {
		e.pendingN++

		return nil
	}

	e.committed = append(e.committed, Run[T]{Value: e.pending, Length: e.pendingN})
	e.pending = value
	e.pendingN = 1

	return nil
}

// Len returns the number of values submitted so far.
func (e *StreamEncoder[T]) Len() int {
	return e.count
}

// NumRuns returns the number of runs the encoder would produce if finalized
// now: committed runs plus the open run, if any.
func (e *StreamEncoder[T]) NumRuns() int {
	if e.pendingN > 0 {
		return len(e.committed) + 1
	}

	return len(e.committed)
}

// Finalize flushes the open run, if any, and returns the completed run
// sequence. If no value was ever submitted it returns an empty sequence.
//
// The returned slice must be treated as immutable; it is owned by the column
// block that embeds it. After Finalize the encoder is spent: further Submit
// calls fail, and repeated Finalize calls return the same sequence without
// flushing again.
func (e *StreamEncoder[T]) Finalize() []Run[T] {
	if e.finalized {
		return e.committed
	}

	e.finalized = true

	if e.pendingN > 0 {
		e.committed = append(e.committed, Run[T]{Value: e.pending, Length: e.pendingN})
		e.pendingN = 0
	}

	return e.committed
}
