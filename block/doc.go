// Package block assembles and parses runlen column blocks.
//
// A column block is the binary unit a column builder produces for one
// column of values:
//
//	[header: 32 bytes][run-length header: 4 + 4*runs][value region]
//
// The fixed-size header carries the magic number, byte order, encoding and
// compression types, the xxHash64 column ID, and the value/run counts. The
// run-length header is written and read by the rle package. The value
// region stores one marshaled value per run, in run order, optionally
// compressed with one of the compress codecs.
//
// Writer streams values one at a time through an rle.StreamEncoder and
// produces the finished block in Finish. Reader parses a block, consumes
// the run-length header through a borrowed view cursor, and reconstructs
// runs or the full logical sequence.
package block
