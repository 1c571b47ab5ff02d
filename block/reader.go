package block

import (
	"fmt"
	"iter"

	"github.com/colstore/runlen/buffer"
	"github.com/colstore/runlen/compress"
	"github.com/colstore/runlen/errs"
	"github.com/colstore/runlen/rle"
)

// Reader parses one column block and reconstructs its runs.
//
// Parsing follows the block layout front to back: the fixed header, then
// the run-length header (consumed through rle.ReadLengths, which leaves the
// primary cursor at the value region), then the optionally compressed value
// region. Runs are materialized eagerly; the logical sequence expands
// lazily through All.
type Reader[T any] struct {
	header Header
	runs   []rle.Run[T]
}

// NewReader parses data as a column block using the given value codec.
//
// The codec must match the one the block was written with. The data slice
// is only read during NewReader; the returned Reader holds no reference to
// it afterwards.
func NewReader[T any](data []byte, values ValueCodec[T]) (*Reader[T], error) {
	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if int(hdr.BlockSize) != len(data) {
		return nil, fmt.Errorf("%w: header declares %d bytes, block has %d",
			errs.ErrInvalidHeaderSize, hdr.BlockSize, len(data))
	}

	buf := buffer.FromBytes(data, hdr.Engine())
	if err := buf.Skip(HeaderSize); err != nil {
		return nil, err
	}

	lengths, err := rle.ReadLengths(buf)
	if err != nil {
		return nil, err
	}

	if uint32(lengths.Count()) != hdr.RunCount {
		return nil, fmt.Errorf("%w: header declares %d runs, length region has %d",
			errs.ErrMalformedHeader, hdr.RunCount, lengths.Count())
	}

	// The primary cursor now sits at the value region.
	region, err := buf.Next(buf.Remaining())
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(hdr.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(region)
	if err != nil {
		return nil, fmt.Errorf("decompress value region: %w", err)
	}

	runs := make([]rle.Run[T], 0, lengths.Count())
	total := 0
	for length := range lengths.All() {
		if length <= 0 {
			return nil, fmt.Errorf("%w: length %d in run %d", errs.ErrMalformedRun, length, len(runs))
		}

		value, n, err := values.DecodeValue(payload, buf.Engine())
		if err != nil {
			return nil, fmt.Errorf("decode run %d value: %w", len(runs), err)
		}
		payload = payload[n:]

		runs = append(runs, rle.Run[T]{Value: value, Length: length})
		total += int(length)
	}

	if total != int(hdr.ValueCount) {
		return nil, fmt.Errorf("%w: runs expand to %d values, header declares %d",
			errs.ErrValueCountMismatch, total, hdr.ValueCount)
	}

	if len(payload) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after last run value",
			errs.ErrMalformedHeader, len(payload))
	}

	return &Reader[T]{header: hdr, runs: runs}, nil
}

// Header returns the parsed block header.
func (r *Reader[T]) Header() Header {
	return r.header
}

// Runs returns the block's run sequence. The returned slice is owned by the
// reader and must not be modified.
func (r *Reader[T]) Runs() []rle.Run[T] {
	return r.runs
}

// Values reconstructs the full logical sequence of the column.
func (r *Reader[T]) Values() ([]T, error) {
	return rle.Decode(r.runs)
}

// All returns an iterator over the logical sequence without materializing it.
func (r *Reader[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, run := range r.runs {
			for range run.Length {
				if !yield(run.Value) {
					return
				}
			}
		}
	}
}
