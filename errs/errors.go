// Package errs defines the sentinel errors shared across the runlen module.
//
// Callers should match errors with errors.Is, since most call sites wrap
// these sentinels with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrMalformedRun indicates a run with a non-positive length was passed
	// to a decode operation.
	ErrMalformedRun = errors.New("malformed run: length must be positive")

	// ErrMalformedHeader indicates a run-length header with a negative or
	// otherwise implausible run count.
	ErrMalformedHeader = errors.New("malformed run-length header")

	// ErrBufferUnderflow indicates a read past the end of a buffer.
	ErrBufferUnderflow = errors.New("buffer underflow")

	// ErrBufferOverflow indicates a write past the capacity of a buffer.
	ErrBufferOverflow = errors.New("buffer overflow")

	// ErrEncoderFinalized indicates a Submit call on a stream encoder that
	// has already been finalized. Stream encoders are single-use.
	ErrEncoderFinalized = errors.New("stream encoder already finalized")

	// ErrInvalidHeaderSize indicates a column block header slice with the
	// wrong size.
	ErrInvalidHeaderSize = errors.New("invalid column header size")

	// ErrInvalidMagicNumber indicates a column block header that does not
	// start with the expected magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidEncodingType indicates an unknown encoding type byte in a
	// column block header.
	ErrInvalidEncodingType = errors.New("invalid encoding type")

	// ErrInvalidCompressionType indicates an unknown compression type byte
	// in a column block header.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrValueCountMismatch indicates that the sum of run lengths in a
	// column block does not equal the declared value count.
	ErrValueCountMismatch = errors.New("value count does not match run lengths")
)
