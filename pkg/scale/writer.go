package scale

import (
	"bytes"
	"encoding/binary"
	"math/big"
)

// Encodable is implemented by every type with a SCALE representation.
type Encodable interface {
	EncodeScale(w *Writer)
}

// Writer accumulates SCALE-encoded bytes. It keeps the first error it
// encounters and turns every subsequent write into a no-op, the same
// sticky-error style neo-go's io.BinWriter uses for its binary encoder:
// callers chain a sequence of writes and check the error once at the end.
type Writer struct {
	buf bytes.Buffer
	err error
}

// NewWriter returns an empty Writer ready for use.
func NewWriter() *Writer {
	return &Writer{}
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Bytes returns the accumulated output. Its result is undefined if Err is
// non-nil.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Fail records err as the writer's sticky error if one isn't already set.
func (w *Writer) Fail(err error) {
	w.fail(err)
}

// WriteByte writes a single raw byte.
func (w *Writer) WriteByte(b byte) {
	if w.err != nil {
		return
	}
	w.buf.WriteByte(b)
}

// WriteBytes writes a raw byte slice with no length prefix.
func (w *Writer) WriteBytes(b []byte) {
	if w.err != nil {
		return
	}
	w.buf.Write(b)
}

// WriteBool writes a SCALE bool: 0x01 for true, 0x00 for false.
func (w *Writer) WriteBool(b bool) {
	if b {
		w.WriteByte(1)
	} else {
		w.WriteByte(0)
	}
}

// WriteUint16LE writes v as two little-endian bytes.
func (w *Writer) WriteUint16LE(v uint16) {
	if w.err != nil {
		return
	}
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint32LE writes v as four little-endian bytes.
func (w *Writer) WriteUint32LE(v uint32) {
	if w.err != nil {
		return
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint64LE writes v as eight little-endian bytes.
func (w *Writer) WriteUint64LE(v uint64) {
	if w.err != nil {
		return
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteCompactUint writes v using the shortest legal compact encoding.
func (w *Writer) WriteCompactUint(v uint64) {
	if w.err != nil {
		return
	}
	w.buf.Write(EncodeCompactUint(v))
}

// WriteCompactBigInt writes v (which must be non-negative) using the
// shortest legal compact encoding, including big-integer mode for values
// that exceed 64 bits.
func (w *Writer) WriteCompactBigInt(v *big.Int) {
	if w.err != nil {
		return
	}
	enc, err := EncodeCompactBigInt(v)
	if err != nil {
		w.fail(err)
		return
	}
	w.buf.Write(enc)
}

// WriteOption writes the SCALE Option<T> prefix and, if present, invokes
// enc to write the payload.
func WriteOption(w *Writer, present bool, enc func(w *Writer)) {
	w.WriteBool(present)
	if present && w.err == nil {
		enc(w)
	}
}

// WriteCompactSlice writes a variable-length sequence as a compact length
// prefix followed by each element, encoded with enc.
func WriteCompactSlice[T any](w *Writer, items []T, enc func(w *Writer, v T)) {
	if w.err != nil {
		return
	}
	w.WriteCompactUint(uint64(len(items)))
	for _, it := range items {
		if w.err != nil {
			return
		}
		enc(w, it)
	}
}

// Encode runs v's EncodeScale against a fresh Writer and returns the
// resulting bytes.
func Encode(v Encodable) ([]byte, error) {
	w := NewWriter()
	v.EncodeScale(w)
	if w.Err() != nil {
		return nil, w.Err()
	}
	return w.Bytes(), nil
}
