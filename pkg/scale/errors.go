// Package scale implements SCALE (Simple Concatenated Aggregate
// Little-Endian), the binary codec used throughout the Substrate wire
// format: fixed-width little-endian integers, length-prefixed sequences,
// and a mode-tagged variable-length "compact" integer encoding.
package scale

import "errors"

// Sentinel errors returned by Reader and the compact codec. Callers should
// use errors.Is against these; wrapped context is added with fmt.Errorf.
var (
	// ErrShortRead is returned when fewer bytes remain in the stream than
	// the current read requires.
	ErrShortRead = errors.New("scale: short read")
	// ErrInvalidBool is returned when a byte other than 0x00/0x01 is read
	// as a bool.
	ErrInvalidBool = errors.New("scale: invalid bool byte")
	// ErrInvalidDiscriminant is returned when a variant's discriminator
	// byte does not correspond to any known variant.
	ErrInvalidDiscriminant = errors.New("scale: invalid variant discriminant")
	// ErrNonCanonicalCompact is returned when a compact integer was
	// encoded using more bytes than the shortest legal form.
	ErrNonCanonicalCompact = errors.New("scale: non-canonical compact integer encoding")
	// ErrCompactOverflow is returned when a compact integer is decoded
	// into a fixed-width type too small to hold it.
	ErrCompactOverflow = errors.New("scale: compact integer overflows requested width")
	// ErrTrailingBytes is returned by helpers that require the input to
	// be fully consumed when bytes remain after decoding.
	ErrTrailingBytes = errors.New("scale: trailing bytes after decode")
	// ErrSliceLengthOverflow is returned when a compact length prefix
	// claims more elements than could possibly fit in the remaining
	// stream, since every element consumes at least one byte.
	ErrSliceLengthOverflow = errors.New("scale: compact slice length exceeds remaining input")
)
