package scale

// WriteFixedBytes writes exactly len(b) raw bytes, with no length prefix.
// Use it for fixed-width array fields such as a 32-byte AccountId or a
// 32-byte hash, where the width is implied by the type rather than encoded.
func (w *Writer) WriteFixedBytes(b []byte) {
	w.WriteBytes(b)
}

// ReadFixedBytes reads exactly n raw bytes, with no length prefix.
func (r *Reader) ReadFixedBytes(n int) []byte {
	return r.ReadBytes(n)
}

// WriteDiscriminant writes a variant's one-byte discriminator: its
// declaration order, 0-based.
func (w *Writer) WriteDiscriminant(d byte) {
	w.WriteByte(d)
}

// ReadDiscriminant reads a variant's one-byte discriminator. Callers
// dispatch on the result and fail with ErrInvalidDiscriminant themselves
// when it names no known variant, since only the caller knows the valid
// range.
func (r *Reader) ReadDiscriminant() byte {
	return r.ReadByte()
}
