// Package runlen provides the run-length encoding layer of a columnar
// in-memory storage format.
//
// A column's values compress into runs of (length, value) pairs, either in
// one batch call or incrementally as values stream in; the run lengths
// serialize into a compact fixed-width header that readers consume lazily
// and zero-copy, while the run values are stored separately in the block's
// value region.
//
// # Core Features
//
//   - Batch codec: rle.Encode / rle.Decode with the round-trip law
//     Decode(Encode(xs)) == xs
//   - Streaming encoder: rle.StreamEncoder produces the identical run
//     sequence one value at a time, without buffering the column
//   - Pluggable run comparator (structural equality by default)
//   - Fixed-width run-length header with zero-copy lazy reads through a
//     borrowed view cursor (rle.WriteLengths / rle.ReadLengths)
//   - Column blocks with hash-based column IDs (64-bit xxHash64) and
//     optional value-region compression (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Building a column block:
//
//	w := block.NewWriter("cpu.usage", block.Float64Values{}, format.CompressionS2)
//	for _, v := range values {
//	    _ = w.Push(v)
//	}
//	data, err := w.Finish()
//
// Reading it back:
//
//	r, err := block.NewReader(data, block.Float64Values{})
//	for v := range r.All() {
//	    // values in original order
//	}
//
// Code that already holds the full column in memory can use the batch codec
// directly:
//
//	runs := rle.Encode(values)
//	values, err := rle.Decode(runs)
package runlen

import "github.com/colstore/runlen/internal/hash"

// ColumnID computes the xxHash64 column ID for the given column name, as
// stored in column block headers.
func ColumnID(name string) uint64 {
	return hash.ID(name)
}
