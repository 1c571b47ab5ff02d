// Package rle implements the run-length encoding layer of the runlen
// columnar format.
//
// A run is a (length, value) pair representing a maximal contiguous
// repetition of one value. A well-formed run sequence is canonical: no two
// adjacent runs hold equal values under the active comparator, and
// concatenating each run's expansion reproduces the original sequence
// exactly.
//
// The package provides three codecs over that structure:
//
//   - Batch: Encode/Decode over a fully materialized slice. Encode is the
//     semantic reference; Decode(Encode(xs)) == xs for all finite xs.
//   - Streaming: StreamEncoder consumes values one at a time and produces
//     the same run sequence Encode would, without buffering the input.
//   - Header: WriteLengths/ReadLengths serialize the run lengths (not the
//     values) as a fixed-width [count][len_0..len_{count-1}] region inside
//     a shared buffer, with zero-copy lazy reads through a borrowed view
//     cursor.
//
// Run values themselves are stored by the embedding column block (see the
// block package), immediately after the length region.
package rle
