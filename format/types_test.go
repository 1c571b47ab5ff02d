package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodingType_String(t *testing.T) {
	require.Equal(t, "Plain", EncodingPlain.String())
	require.Equal(t, "RunLength", EncodingRunLength.String())
	require.Equal(t, "Unknown", EncodingType(0xFF).String())
}

func TestEncodingType_IsValid(t *testing.T) {
	require.True(t, EncodingPlain.IsValid())
	require.True(t, EncodingRunLength.IsValid())
	require.False(t, EncodingType(0).IsValid())
	require.False(t, EncodingType(0xFF).IsValid())
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xFF).String())
}

func TestCompressionType_IsValid(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		require.True(t, c.IsValid())
	}
	require.False(t, CompressionType(0).IsValid())
}
