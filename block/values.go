package block

import (
	"fmt"
	"math"

	"github.com/colstore/runlen/endian"
	"github.com/colstore/runlen/errs"
)

// MaxStringLength is the maximum byte length of a string value, imposed by
// the uint8 length prefix of StringValues.
const MaxStringLength = 255

// ValueCodec marshals run values into the value region of a block and back.
//
// One value is stored per run, in run order. Implementations must be
// stateless; the same codec instance is shared between Writer and Reader.
type ValueCodec[T any] interface {
	// AppendValue appends the wire form of v to dst and returns the
	// extended slice.
	AppendValue(dst []byte, v T, engine endian.EndianEngine) ([]byte, error)

	// DecodeValue decodes one value from the front of data and returns it
	// together with the number of bytes consumed.
	DecodeValue(data []byte, engine endian.EndianEngine) (T, int, error)
}

// Float64Values stores each value as its IEEE 754 bit pattern in a fixed
// 8-byte field.
type Float64Values struct{}

var _ ValueCodec[float64] = Float64Values{}

func (Float64Values) AppendValue(dst []byte, v float64, engine endian.EndianEngine) ([]byte, error) {
	return engine.AppendUint64(dst, math.Float64bits(v)), nil
}

func (Float64Values) DecodeValue(data []byte, engine endian.EndianEngine) (float64, int, error) {
	if len(data) < 8 {
		return 0, 0, fmt.Errorf("%w: float64 value needs 8 bytes, %d remaining", errs.ErrBufferUnderflow, len(data))
	}

	return math.Float64frombits(engine.Uint64(data[:8])), 8, nil
}

// Uint64Values stores each value as a fixed 8-byte unsigned integer.
type Uint64Values struct{}

var _ ValueCodec[uint64] = Uint64Values{}

func (Uint64Values) AppendValue(dst []byte, v uint64, engine endian.EndianEngine) ([]byte, error) {
	return engine.AppendUint64(dst, v), nil
}

func (Uint64Values) DecodeValue(data []byte, engine endian.EndianEngine) (uint64, int, error) {
	if len(data) < 8 {
		return 0, 0, fmt.Errorf("%w: uint64 value needs 8 bytes, %d remaining", errs.ErrBufferUnderflow, len(data))
	}

	return engine.Uint64(data[:8]), 8, nil
}

// StringValues stores each value with a uint8 length prefix followed by the
// raw bytes. Strings longer than MaxStringLength are rejected at append time.
type StringValues struct{}

var _ ValueCodec[string] = StringValues{}

func (StringValues) AppendValue(dst []byte, v string, _ endian.EndianEngine) ([]byte, error) {
	if len(v) > MaxStringLength {
		return dst, fmt.Errorf("string length %d exceeds maximum %d", len(v), MaxStringLength)
	}

	dst = append(dst, uint8(len(v)))

	return append(dst, v...), nil
}

func (StringValues) DecodeValue(data []byte, _ endian.EndianEngine) (string, int, error) {
	if len(data) < 1 {
		return "", 0, fmt.Errorf("%w: string value needs a length prefix", errs.ErrBufferUnderflow)
	}

	n := int(data[0])
	if len(data) < 1+n {
		return "", 0, fmt.Errorf("%w: string value needs %d bytes, %d remaining", errs.ErrBufferUnderflow, 1+n, len(data))
	}

	return string(data[1 : 1+n]), 1 + n, nil
}
