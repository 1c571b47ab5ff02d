package block

import (
	"encoding/binary"
	"math/rand"
	"strings"
	"testing"

	"github.com/colstore/runlen/errs"
	"github.com/colstore/runlen/format"
	"github.com/colstore/runlen/internal/hash"
	"github.com/colstore/runlen/rle"
	"github.com/stretchr/testify/require"
)

func buildFloat64Block(t *testing.T, values []float64, compression format.CompressionType) []byte {
	t.Helper()

	w := NewWriter("test.column", Float64Values{}, compression)
	for _, v := range values {
		require.NoError(t, w.Push(v))
	}

	data, err := w.Finish()
	require.NoError(t, err)

	return data
}

func TestBlock_RoundTrip_AllCompressionTypes(t *testing.T) {
	values := []float64{1.5, 1.5, 1.5, 2.0, 3.25, 3.25, 1.5, 1.5}

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			data := buildFloat64Block(t, values, compression)

			r, err := NewReader(data, Float64Values{})
			require.NoError(t, err)

			hdr := r.Header()
			require.Equal(t, hash.ID("test.column"), hdr.ColumnID)
			require.Equal(t, compression, hdr.Compression)
			require.Equal(t, uint32(len(values)), hdr.ValueCount)
			require.Equal(t, uint32(4), hdr.RunCount)
			require.Equal(t, uint32(len(data)), hdr.BlockSize)

			decoded, err := r.Values()
			require.NoError(t, err)
			require.Equal(t, values, decoded)
		})
	}
}

func TestBlock_RunsMatchBatchEncode(t *testing.T) {
	values := []float64{1, 1, 2, 2, 2, 3}
	data := buildFloat64Block(t, values, format.CompressionNone)

	r, err := NewReader(data, Float64Values{})
	require.NoError(t, err)
	require.Equal(t, rle.Encode(values), r.Runs())
}

func TestBlock_All(t *testing.T) {
	values := []float64{4, 4, 4, 8, 8}
	data := buildFloat64Block(t, values, format.CompressionS2)

	r, err := NewReader(data, Float64Values{})
	require.NoError(t, err)

	got := make([]float64, 0, len(values))
	for v := range r.All() {
		got = append(got, v)
	}
	require.Equal(t, values, got)
}

func TestBlock_EmptyColumn(t *testing.T) {
	data := buildFloat64Block(t, nil, format.CompressionNone)

	r, err := NewReader(data, Float64Values{})
	require.NoError(t, err)
	require.Equal(t, uint32(0), r.Header().ValueCount)
	require.Empty(t, r.Runs())

	decoded, err := r.Values()
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestBlock_StringValues(t *testing.T) {
	values := []string{"idle", "idle", "busy", "busy", "busy", "idle"}

	w := NewWriter("state", StringValues{}, format.CompressionS2)
	for _, v := range values {
		require.NoError(t, w.Push(v))
	}

	data, err := w.Finish()
	require.NoError(t, err)

	r, err := NewReader(data, StringValues{})
	require.NoError(t, err)

	decoded, err := r.Values()
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestBlock_StringTooLong(t *testing.T) {
	w := NewWriter("state", StringValues{}, format.CompressionNone)
	require.NoError(t, w.Push(strings.Repeat("x", MaxStringLength+1)))

	_, err := w.Finish()
	require.Error(t, err)
}

func TestBlock_Uint64Values(t *testing.T) {
	values := []uint64{7, 7, 7, 7, 1, 9, 9}

	w := NewWriter("ids", Uint64Values{}, format.CompressionLZ4)
	for _, v := range values {
		require.NoError(t, w.Push(v))
	}

	data, err := w.Finish()
	require.NoError(t, err)

	r, err := NewReader(data, Uint64Values{})
	require.NoError(t, err)

	decoded, err := r.Values()
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestWriter_PushAfterFinish(t *testing.T) {
	w := NewWriter("test.column", Float64Values{}, format.CompressionNone)
	require.NoError(t, w.Push(1.0))

	_, err := w.Finish()
	require.NoError(t, err)

	err = w.Push(2.0)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrEncoderFinalized)
}

func TestWriter_CustomComparator(t *testing.T) {
	caseless := func(a, b string) bool { return strings.EqualFold(a, b) }

	w := NewWriterFunc("state", StringValues{}, format.CompressionNone, caseless)
	for _, v := range []string{"on", "ON", "off"} {
		require.NoError(t, w.Push(v))
	}

	data, err := w.Finish()
	require.NoError(t, err)

	r, err := NewReader(data, StringValues{})
	require.NoError(t, err)

	runs := r.Runs()
	require.Len(t, runs, 2)
	require.Equal(t, int32(2), runs[0].Length)
	require.Equal(t, "on", runs[0].Value)
}

func TestReader_CorruptBlocks(t *testing.T) {
	values := []float64{1, 1, 2}
	data := buildFloat64Block(t, values, format.CompressionNone)

	t.Run("Truncated block", func(t *testing.T) {
		_, err := NewReader(data[:len(data)-4], Float64Values{})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Value count mismatch", func(t *testing.T) {
		tampered := make([]byte, len(data))
		copy(tampered, data)
		// ValueCount lives at byte offset 12-15.
		binary.LittleEndian.PutUint32(tampered[12:16], 99)

		_, err := NewReader(tampered, Float64Values{})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueCountMismatch)
	})

	t.Run("Run count mismatch", func(t *testing.T) {
		tampered := make([]byte, len(data))
		copy(tampered, data)
		// RunCount lives at byte offset 16-19.
		binary.LittleEndian.PutUint32(tampered[16:20], 5)

		_, err := NewReader(tampered, Float64Values{})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrMalformedHeader)
	})

	t.Run("Bad magic", func(t *testing.T) {
		tampered := make([]byte, len(data))
		copy(tampered, data)
		tampered[0] = 0x00
		tampered[1] = 0x00

		_, err := NewReader(tampered, Float64Values{})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})
}

func TestBlock_RoundTrip_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for range 50 {
		values := make([]float64, rng.Intn(400))
		for i := range values {
			values[i] = float64(rng.Intn(4))
		}

		data := buildFloat64Block(t, values, format.CompressionS2)

		r, err := NewReader(data, Float64Values{})
		require.NoError(t, err)

		decoded, err := r.Values()
		require.NoError(t, err)

		if len(values) == 0 {
			require.Empty(t, decoded)
			continue
		}
		require.Equal(t, values, decoded)
	}
}
