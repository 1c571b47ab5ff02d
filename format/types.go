package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	// EncodingPlain represents values stored one per logical position with
	// no run-length structure.
	EncodingPlain EncodingType = 0x1
	// EncodingRunLength represents values stored as (length, value) runs
	// with a fixed-width length header.
	EncodingRunLength EncodingType = 0x2

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case EncodingPlain:
		return "Plain"
	case EncodingRunLength:
		return "RunLength"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the encoding type is one of the defined values.
func (e EncodingType) IsValid() bool {
	return e == EncodingPlain || e == EncodingRunLength
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the compression type is one of the defined values.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}
