package rle

import (
	"fmt"
	"iter"
	"math"

	"github.com/colstore/runlen/buffer"
	"github.com/colstore/runlen/errs"
)

// Header region layout, fixed-width in the buffer's byte order:
//
//	[count: int32][length_0: int32]...[length_{count-1}: int32]
//
// The run values themselves are stored by the caller immediately after this
// region; the header carries only the lengths.

// HeaderSize returns the byte size of the length header region for the
// given run count: 4 + 4*count.
func HeaderSize(count int) int {
	return 4 + 4*count
}

// WriteLengths serializes the run lengths into the buffer at its current
// cursor position and advances the cursor by exactly HeaderSize(len(lengths))
// bytes. Bytes outside the written span are not touched.
//
// A non-positive length fails with errs.ErrMalformedRun before anything is
// written. A span that does not fit fails with errs.ErrBufferOverflow.
func WriteLengths(buf *buffer.Buffer, lengths []int32) error {
	for i, length := range lengths {
		if length <= 0 {
			return fmt.Errorf("%w: length %d at index %d", errs.ErrMalformedRun, length, i)
		}
	}

	if buf.Remaining() < HeaderSize(len(lengths)) {
		return fmt.Errorf("%w: header needs %d bytes, %d remaining",
			errs.ErrBufferOverflow, HeaderSize(len(lengths)), buf.Remaining())
	}

	if err := buf.PutUint32(uint32(len(lengths))); err != nil {
		return err
	}

	for _, length := range lengths {
		if err := buf.PutUint32(uint32(length)); err != nil {
			return err
		}
	}

	return nil
}

// ReadLengths consumes the length header at the buffer's current cursor
// position.
//
// It reads the run count, validates that the full header region fits inside
// the span, advances the primary cursor past the entire region (so the
// caller's next read starts at the value region), and returns a lazy
// LengthReader over just the length array.
//
// The LengthReader borrows a view cursor over the same backing memory as
// buf; no bytes are copied, and advancing either cursor never advances the
// other.
//
// A negative count fails with errs.ErrMalformedHeader. A count whose length
// array extends past the span fails with errs.ErrBufferUnderflow; both are
// detected here, before any lazy read.
func ReadLengths(buf *buffer.Buffer) (*LengthReader, error) {
	raw, err := buf.Uint32()
	if err != nil {
		return nil, err
	}

	if raw > math.MaxInt32 {
		// The wire field is int32; a high bit here is a negative count.
		return nil, fmt.Errorf("%w: negative run count %d", errs.ErrMalformedHeader, int32(raw))
	}

	count := int(raw)
	if buf.Remaining() < 4*count {
		return nil, fmt.Errorf("%w: %d runs need %d bytes, %d remaining",
			errs.ErrBufferUnderflow, count, 4*count, buf.Remaining())
	}

	// Borrow a view at the start of the length array, then advance the
	// primary cursor past the whole region.
	lengths := buf.View()
	if err := buf.Skip(4 * count); err != nil {
		return nil, err
	}

	return &LengthReader{cur: lengths, count: count}, nil
}

// LengthReader yields the run lengths of a header region on demand, one
// fixed-width read per length. It holds a borrowed view cursor and performs
// no allocation or copying of the underlying bytes.
type LengthReader struct {
	cur   *buffer.Buffer
	count int
	read  int
}

// Count returns the number of run lengths in the header.
func (r *LengthReader) Count() int {
	return r.count
}

// Next yields the next run length. It returns false once all Count lengths
// have been read.
//
// The span was validated by ReadLengths, so Next cannot underflow.
func (r *LengthReader) Next() (int32, bool) {
	if r.read >= r.count {
		return 0, false
	}

	v, err := r.cur.Uint32()
	if err != nil {
		return 0, false
	}
	r.read++

	return int32(v), true
}

// All returns an iterator over the remaining run lengths in order.
func (r *LengthReader) All() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for {
			v, ok := r.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
