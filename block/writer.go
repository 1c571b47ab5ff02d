package block

import (
	"fmt"
	"math"

	"github.com/colstore/runlen/buffer"
	"github.com/colstore/runlen/compress"
	"github.com/colstore/runlen/endian"
	"github.com/colstore/runlen/format"
	"github.com/colstore/runlen/internal/hash"
	"github.com/colstore/runlen/internal/pool"
	"github.com/colstore/runlen/rle"
)

// Writer builds one run-length encoded column block.
//
// Values stream in one at a time through Push; Finish flushes the run
// encoder and assembles the finished block. A Writer is single-use, owned
// by one column-build pass, and not safe for concurrent use.
type Writer[T any] struct {
	enc         *rle.StreamEncoder[T]
	values      ValueCodec[T]
	engine      endian.EndianEngine
	columnID    uint64
	compression format.CompressionType
}

// NewWriter creates a block writer for a column, using structural equality
// to merge runs.
//
// The column ID stored in the header is the xxHash64 of columnName. The
// compression type selects the codec applied to the value region.
func NewWriter[T comparable](columnName string, values ValueCodec[T], compression format.CompressionType) *Writer[T] {
	return NewWriterFunc(columnName, values, compression, rle.Equal[T]())
}

// NewWriterFunc is NewWriter with an injected run comparator.
func NewWriterFunc[T any](columnName string, values ValueCodec[T], compression format.CompressionType, equal rle.EqualFunc[T]) *Writer[T] {
	return &Writer[T]{
		enc:         rle.NewStreamEncoderFunc(equal),
		values:      values,
		engine:      endian.GetLittleEndianEngine(),
		columnID:    hash.ID(columnName),
		compression: compression,
	}
}

// Push appends the next value of the column.
func (w *Writer[T]) Push(value T) error {
	return w.enc.Submit(value)
}

// Len returns the number of values pushed so far.
func (w *Writer[T]) Len() int {
	return w.enc.Len()
}

// Finish finalizes the run encoder and assembles the block:
// [header][run-length header][value region].
//
// The returned slice is newly allocated and owned by the caller. After
// Finish the writer is spent; further Push calls fail.
func (w *Writer[T]) Finish() ([]byte, error) {
	runs := w.enc.Finalize()

	codec, err := compress.GetCodec(w.compression)
	if err != nil {
		return nil, err
	}

	// Marshal one value per run into a pooled scratch buffer.
	valbuf := pool.GetColumnBuffer()
	defer pool.PutColumnBuffer(valbuf)

	for _, r := range runs {
		valbuf.B, err = w.values.AppendValue(valbuf.B, r.Value, w.engine)
		if err != nil {
			return nil, fmt.Errorf("marshal run value: %w", err)
		}
	}

	payload, err := codec.Compress(valbuf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress value region: %w", err)
	}

	lengths, cleanup := pool.GetInt32Slice(len(runs))
	defer cleanup()
	for i, r := range runs {
		lengths[i] = r.Length
	}

	valueCount := rle.ExpandedLen(runs)
	if uint64(valueCount) > math.MaxUint32 {
		return nil, fmt.Errorf("column of %d values exceeds block capacity", valueCount)
	}

	total := HeaderSize + rle.HeaderSize(len(runs)) + len(payload)

	hdr := NewHeader(w.columnID, w.compression)
	hdr.ValueCount = uint32(valueCount)
	hdr.RunCount = uint32(len(runs))
	hdr.ValueOffset = uint32(HeaderSize + rle.HeaderSize(len(runs)))
	hdr.BlockSize = uint32(total)

	buf := buffer.New(total, w.engine)
	if err := buf.PutBytes(hdr.Bytes()); err != nil {
		return nil, err
	}
	if err := rle.WriteLengths(buf, lengths); err != nil {
		return nil, err
	}
	if err := buf.PutBytes(payload); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
