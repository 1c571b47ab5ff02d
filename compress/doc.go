// Package compress provides the value-region compression codecs for runlen
// column blocks.
//
// The run-length header region is already compact fixed-width data and is
// never compressed; only the value region that follows it passes through a
// Codec. Four codecs are built in, selected by format.CompressionType:
//
//   - None: bypass, zero copy
//   - Zstd: best ratio; cgo builds use valyala/gozstd, pure-Go builds use
//     klauspost/compress/zstd (build-tag split, same wire format)
//   - S2: fastest, snappy-compatible
//   - LZ4: fast with moderate ratio
//
// All built-in codecs are stateless value types and safe for concurrent use.
package compress
