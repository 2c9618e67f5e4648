package scale

import (
	"encoding/binary"
	"math/big"
)

// Decodable is implemented by every type with a SCALE representation that
// can be decoded from a byte stream.
type Decodable interface {
	DecodeScale(r *Reader)
}

// Reader is a forward-only byte-stream cursor. Like Writer, it is
// sticky-error: once a read fails every subsequent read becomes a no-op
// returning the zero value, so a decoder can be written as a flat sequence
// of reads followed by a single error check. The stream offset is never
// rewound, matching the decode contract in the SCALE specification.
type Reader struct {
	buf []byte
	pos int
	err error
}

// NewReader wraps buf for sequential decoding. buf is not copied.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}

// Pos returns the current offset into the underlying buffer.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the unread tail of the underlying buffer.
func (r *Reader) Remaining() []byte {
	return r.buf[r.pos:]
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Fail records err as the reader's sticky error if one isn't already set.
// Decoders for higher-level types use it to report domain-specific
// validation failures (an out-of-range enum tag, a malformed era) through
// the same single error check their callers already perform.
func (r *Reader) Fail(err error) {
	r.fail(err)
}

// ReadByte reads and returns a single byte.
func (r *Reader) ReadByte() byte {
	if r.err != nil {
		return 0
	}
	if r.pos >= len(r.buf) {
		r.fail(ErrShortRead)
		return 0
	}
	b := r.buf[r.pos]
	r.pos++
	return b
}

// ReadBytes reads and returns exactly n raw bytes.
func (r *Reader) ReadBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.pos+n > len(r.buf) {
		r.fail(ErrShortRead)
		return nil
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out
}

// ReadBool reads a SCALE bool, failing on any byte other than 0x00/0x01.
func (r *Reader) ReadBool() bool {
	b := r.ReadByte()
	if r.err != nil {
		return false
	}
	switch b {
	case 0:
		return false
	case 1:
		return true
	default:
		r.fail(ErrInvalidBool)
		return false
	}
}

// ReadUint16LE reads two little-endian bytes.
func (r *Reader) ReadUint16LE() uint16 {
	b := r.ReadBytes(2)
	if r.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// ReadUint32LE reads four little-endian bytes.
func (r *Reader) ReadUint32LE() uint32 {
	b := r.ReadBytes(4)
	if r.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// ReadUint64LE reads eight little-endian bytes.
func (r *Reader) ReadUint64LE() uint64 {
	b := r.ReadBytes(8)
	if r.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// ReadCompactUint reads a compact integer and requires it to fit in 64
// bits, failing with ErrCompactOverflow otherwise.
func (r *Reader) ReadCompactUint() uint64 {
	v := r.ReadCompactBigInt()
	if r.err != nil {
		return 0
	}
	if !v.IsUint64() {
		r.fail(ErrCompactOverflow)
		return 0
	}
	return v.Uint64()
}

// ReadCompactBigInt reads a compact integer of arbitrary width.
func (r *Reader) ReadCompactBigInt() *big.Int {
	if r.err != nil {
		return nil
	}
	v, n, err := decodeCompact(r.buf[r.pos:])
	if err != nil {
		r.fail(err)
		return nil
	}
	r.pos += n
	return v
}

// ReadOption reads the SCALE Option<T> prefix and, when present, invokes
// dec to read the payload and reports presence.
func ReadOption(r *Reader, dec func(r *Reader)) bool {
	present := r.ReadBool()
	if r.err != nil {
		return false
	}
	if present {
		dec(r)
	}
	return present
}

// ReadCompactSlice reads a compact length prefix followed by that many
// elements decoded with dec. A zero length yields a nil slice.
func ReadCompactSlice[T any](r *Reader, dec func(r *Reader) T) []T {
	n := r.ReadCompactUint()
	if r.err != nil || n == 0 {
		return nil
	}
	// n comes straight off the wire and is otherwise unbounded; every
	// element consumes at least one byte, so a claimed length longer than
	// what's left in the stream is necessarily bogus. Caught here, before
	// make() turns it into a panic or an OOM on untrusted input.
	if n > uint64(len(r.Remaining())) {
		r.fail(ErrSliceLengthOverflow)
		return nil
	}
	out := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		if r.err != nil {
			return out
		}
		out = append(out, dec(r))
	}
	return out
}

// Decode wraps data in a Reader, invokes v.DecodeScale, and returns the
// reader's error, if any.
func Decode(data []byte, v Decodable) error {
	r := NewReader(data)
	v.DecodeScale(r)
	return r.Err()
}

// DecodeExact is like Decode but additionally fails with ErrTrailingBytes
// if data was not fully consumed.
func DecodeExact(data []byte, v Decodable) error {
	r := NewReader(data)
	v.DecodeScale(r)
	if r.Err() != nil {
		return r.Err()
	}
	if len(r.Remaining()) != 0 {
		return ErrTrailingBytes
	}
	return nil
}
