package block

import (
	"github.com/colstore/runlen/endian"
	"github.com/colstore/runlen/errs"
	"github.com/colstore/runlen/format"
)

const (
	// HeaderSize is the fixed size of a column block header in bytes.
	HeaderSize = 32

	// MagicNumber identifies a runlen column block. The low bit of the
	// options field is reserved for the endianness flag and is not part of
	// the magic.
	MagicNumber uint16 = 0x52C0

	flagBigEndian uint16 = 0x0001
)

// Header is the fixed-size header section at the start of a column block.
type Header struct {
	// ColumnID is the xxHash64 of the column name.
	ColumnID uint64 // byte offset 4-11
	// ValueCount is the number of logical values the block expands to.
	ValueCount uint32 // byte offset 12-15
	// RunCount is the number of runs in the run-length header region.
	RunCount uint32 // byte offset 16-19
	// LengthsOffset is the byte offset of the run-length header region.
	LengthsOffset uint32 // byte offset 20-23
	// ValueOffset is the byte offset of the value region.
	// It records the offset after the run-length header region.
	ValueOffset uint32 // byte offset 24-27
	// BlockSize is the total size of the block in bytes.
	BlockSize uint32 // byte offset 28-31

	// Options is a packed field holding the magic number and endianness flag.
	Options uint16 // byte offset 0-1
	// Encoding is the value layout of the block.
	Encoding format.EncodingType // byte offset 2
	// Compression is the codec applied to the value region.
	Compression format.CompressionType // byte offset 3
}

// NewHeader creates a header for a run-length encoded, little-endian block.
// Counts, offsets and sizes are filled in by Writer.Finish.
func NewHeader(columnID uint64, compression format.CompressionType) Header {
	return Header{
		Options:       MagicNumber,
		Encoding:      format.EncodingRunLength,
		Compression:   compression,
		ColumnID:      columnID,
		LengthsOffset: HeaderSize,
	}
}

// IsValidMagicNumber reports whether the options field carries the runlen magic.
func (h *Header) IsValidMagicNumber() bool {
	return h.Options&^flagBigEndian == MagicNumber
}

// IsLittleEndian reports whether the block's multi-byte fields are little-endian.
func (h *Header) IsLittleEndian() bool {
	return h.Options&flagBigEndian == 0
}

// Engine returns the endian engine matching the header's endianness flag.
func (h *Header) Engine() endian.EndianEngine {
	if h.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Validate checks the magic number and the encoding and compression type bytes.
func (h *Header) Validate() error {
	if !h.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}
	if !h.Encoding.IsValid() {
		return errs.ErrInvalidEncodingType
	}
	if !h.Compression.IsValid() {
		return errs.ErrInvalidCompressionType
	}

	return nil
}

// Parse parses the header from a byte slice.
//
// Returns ErrInvalidHeaderSize if data is not 32 bytes, or a validation
// error for a bad magic number or unknown type bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The options field itself is always little-endian; it determines the
	// endianness of everything after it.
	h.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Encoding = format.EncodingType(data[2])
	h.Compression = format.CompressionType(data[3])

	engine := h.Engine()

	h.ColumnID = engine.Uint64(data[4:12])
	h.ValueCount = engine.Uint32(data[12:16])
	h.RunCount = engine.Uint32(data[16:20])
	h.LengthsOffset = engine.Uint32(data[20:24])
	h.ValueOffset = engine.Uint32(data[24:28])
	h.BlockSize = engine.Uint32(data[28:32])

	return h.Validate()
}

// Bytes serializes the header into a new 32-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Engine()

	b[0] = byte(h.Options)
	b[1] = byte(h.Options >> 8)
	b[2] = byte(h.Encoding)
	b[3] = byte(h.Compression)
	engine.PutUint64(b[4:12], h.ColumnID)
	engine.PutUint32(b[12:16], h.ValueCount)
	engine.PutUint32(b[16:20], h.RunCount)
	engine.PutUint32(b[20:24], h.LengthsOffset)
	engine.PutUint32(b[24:28], h.ValueOffset)
	engine.PutUint32(b[28:32], h.BlockSize)

	return b
}

// ParseHeader parses a Header from the start of a block.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
