// Package buffer provides a position-tracking cursor over a byte span.
//
// A Buffer wraps a backing byte slice together with a cursor position and an
// endian engine. Reads and writes are bounds-checked and advance the cursor;
// reading past the span fails with errs.ErrBufferUnderflow and writing past
// it fails with errs.ErrBufferOverflow. The backing span never reallocates,
// so slices returned by Next remain valid for the lifetime of the span.
//
// View creates a borrowed cursor over the same backing span: the two cursors
// share memory but advance independently. This is the zero-copy pattern used
// by the run-length header reader, which hands the caller a view positioned
// at the length array while the primary cursor moves on to the value region.
package buffer

import (
	"fmt"

	"github.com/colstore/runlen/endian"
	"github.com/colstore/runlen/errs"
)

// Buffer is a cursor over a fixed byte span.
//
// A Buffer is not safe for concurrent use. Views created from a Buffer share
// its backing memory; mutations through one cursor are visible through the
// other, but advancing one cursor never advances the other.
type Buffer struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// New creates a Buffer over a freshly allocated zeroed span of the given size.
func New(size int, engine endian.EndianEngine) *Buffer {
	return &Buffer{
		data:   make([]byte, size),
		engine: engine,
	}
}

// FromBytes wraps an existing byte span without copying. The cursor starts
// at position 0. The Buffer does not take ownership; the caller must keep
// the span alive and unshared for as long as the Buffer is in use.
func FromBytes(data []byte, engine endian.EndianEngine) *Buffer {
	return &Buffer{
		data:   data,
		engine: engine,
	}
}

// View returns a borrowed cursor over the same backing span, positioned at
// the current cursor position. The view shares memory with the receiver and
// maintains its own position.
func (b *Buffer) View() *Buffer {
	return &Buffer{
		data:   b.data,
		pos:    b.pos,
		engine: b.engine,
	}
}

// Engine returns the endian engine the buffer was created with.
func (b *Buffer) Engine() endian.EndianEngine {
	return b.engine
}

// Pos returns the current cursor position.
func (b *Buffer) Pos() int {
	return b.pos
}

// SetPos moves the cursor to an absolute position within the span.
func (b *Buffer) SetPos(pos int) error {
	if pos < 0 || pos > len(b.data) {
		return fmt.Errorf("%w: position %d outside span of %d bytes", errs.ErrBufferUnderflow, pos, len(b.data))
	}
	b.pos = pos

	return nil
}

// Remaining returns the number of bytes between the cursor and the end of the span.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.pos
}

// Cap returns the total size of the backing span.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Bytes returns the full backing span, independent of the cursor position.
// The returned slice shares memory with the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Skip advances the cursor by n bytes without reading them.
func (b *Buffer) Skip(n int) error {
	if n < 0 || b.Remaining() < n {
		return fmt.Errorf("%w: skip %d bytes with %d remaining", errs.ErrBufferUnderflow, n, b.Remaining())
	}
	b.pos += n

	return nil
}

// Next returns the next n bytes of the span without copying and advances the
// cursor past them. The returned slice shares memory with the buffer.
func (b *Buffer) Next(n int) ([]byte, error) {
	if n < 0 || b.Remaining() < n {
		return nil, fmt.Errorf("%w: read %d bytes with %d remaining", errs.ErrBufferUnderflow, n, b.Remaining())
	}
	p := b.data[b.pos : b.pos+n]
	b.pos += n

	return p, nil
}

// Uint32 reads a fixed-width uint32 at the cursor and advances it by 4 bytes.
func (b *Buffer) Uint32() (uint32, error) {
	if b.Remaining() < 4 {
		return 0, fmt.Errorf("%w: read 4 bytes with %d remaining", errs.ErrBufferUnderflow, b.Remaining())
	}
	v := b.engine.Uint32(b.data[b.pos : b.pos+4])
	b.pos += 4

	return v, nil
}

// Uint64 reads a fixed-width uint64 at the cursor and advances it by 8 bytes.
func (b *Buffer) Uint64() (uint64, error) {
	if b.Remaining() < 8 {
		return 0, fmt.Errorf("%w: read 8 bytes with %d remaining", errs.ErrBufferUnderflow, b.Remaining())
	}
	v := b.engine.Uint64(b.data[b.pos : b.pos+8])
	b.pos += 8

	return v, nil
}

// PutUint32 writes a fixed-width uint32 at the cursor and advances it by 4 bytes.
func (b *Buffer) PutUint32(v uint32) error {
	if b.Remaining() < 4 {
		return fmt.Errorf("%w: write 4 bytes with %d remaining", errs.ErrBufferOverflow, b.Remaining())
	}
	b.engine.PutUint32(b.data[b.pos:b.pos+4], v)
	b.pos += 4

	return nil
}

// PutUint64 writes a fixed-width uint64 at the cursor and advances it by 8 bytes.
func (b *Buffer) PutUint64(v uint64) error {
	if b.Remaining() < 8 {
		return fmt.Errorf("%w: write 8 bytes with %d remaining", errs.ErrBufferOverflow, b.Remaining())
	}
	b.engine.PutUint64(b.data[b.pos:b.pos+8], v)
	b.pos += 8

	return nil
}

// PutBytes copies p into the span at the cursor and advances it by len(p).
func (b *Buffer) PutBytes(p []byte) error {
	if b.Remaining() < len(p) {
		return fmt.Errorf("%w: write %d bytes with %d remaining", errs.ErrBufferOverflow, len(p), b.Remaining())
	}
	copy(b.data[b.pos:], p)
	b.pos += len(p)

	return nil
}
