package rle

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/colstore/runlen/errs"
	"github.com/stretchr/testify/require"
)

func TestEncode_Empty(t *testing.T) {
	require.Empty(t, Encode([]int{}))
	require.Empty(t, Encode[int](nil))
}

func TestEncode_SingleValue(t *testing.T) {
	runs := Encode([]string{"z"})

	require.Equal(t, []Run[string]{{Value: "z", Length: 1}}, runs)
}

func TestEncode_SingleRepeatedValue(t *testing.T) {
	runs := Encode([]string{"z", "z", "z"})

	require.Equal(t, []Run[string]{{Value: "z", Length: 3}}, runs)
}

func TestEncode_MixedRuns(t *testing.T) {
	xs := []string{"a", "a", "a", "a", "b", "c", "c", "a", "a", "d", "e", "e", "e", "e"}

	runs := Encode(xs)

	require.Equal(t, []Run[string]{
		{Value: "a", Length: 4},
		{Value: "b", Length: 1},
		{Value: "c", Length: 2},
		{Value: "a", Length: 2},
		{Value: "d", Length: 1},
		{Value: "e", Length: 4},
	}, runs)

	decoded, err := Decode(runs)
	require.NoError(t, err)
	require.Equal(t, xs, decoded)
}

func TestEncode_CanonicalForm(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 100 {
		xs := make([]int, rng.Intn(200))
		for i := range xs {
			xs[i] = rng.Intn(3)
		}

		runs := Encode(xs)

		total := 0
		for i, r := range runs {
			require.GreaterOrEqual(t, r.Length, int32(1))
			total += int(r.Length)
			if i > 0 {
				require.NotEqual(t, runs[i-1].Value, r.Value, "adjacent runs must not hold equal values")
			}
		}
		require.Equal(t, len(xs), total)
	}
}

func TestEncodeFunc_CustomComparator(t *testing.T) {
	caseless := func(a, b string) bool { return strings.EqualFold(a, b) }

	runs := EncodeFunc([]string{"a", "A", "a", "b"}, caseless)

	require.Len(t, runs, 2)
	require.Equal(t, int32(3), runs[0].Length)
	require.Equal(t, "a", runs[0].Value)
	require.Equal(t, int32(1), runs[1].Length)
}

func TestDecode_Empty(t *testing.T) {
	decoded, err := Decode([]Run[int]{})
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestDecode_MalformedRun(t *testing.T) {
	t.Run("Zero length", func(t *testing.T) {
		_, err := Decode([]Run[string]{{Value: "z", Length: 0}})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrMalformedRun)
	})

	t.Run("Negative length", func(t *testing.T) {
		_, err := Decode([]Run[string]{{Value: "a", Length: 2}, {Value: "b", Length: -1}})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrMalformedRun)
	})
}

func TestDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 100 {
		xs := make([]uint64, rng.Intn(500))
		for i := range xs {
			xs[i] = uint64(rng.Intn(4))
		}

		decoded, err := Decode(Encode(xs))
		require.NoError(t, err)

		if len(xs) == 0 {
			require.Empty(t, decoded)
			continue
		}
		require.Equal(t, xs, decoded)
	}
}

func TestLengths(t *testing.T) {
	require.Nil(t, Lengths[int](nil))

	runs := Encode([]int{1, 1, 2, 3, 3, 3})
	require.Equal(t, []int32{2, 1, 3}, Lengths(runs))
}

func TestExpandedLen(t *testing.T) {
	require.Equal(t, 0, ExpandedLen[int](nil))

	runs := Encode([]int{1, 1, 2, 3, 3, 3})
	require.Equal(t, 6, ExpandedLen(runs))
}
