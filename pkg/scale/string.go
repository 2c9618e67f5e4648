package scale

// WriteCompactBytes writes a Vec<u8>: a compact length prefix followed by
// the raw bytes.
func (w *Writer) WriteCompactBytes(b []byte) {
	if w.err != nil {
		return
	}
	w.WriteCompactUint(uint64(len(b)))
	w.WriteBytes(b)
}

// ReadCompactBytes reads a Vec<u8>. A zero length yields a nil slice.
func (r *Reader) ReadCompactBytes() []byte {
	n := r.ReadCompactUint()
	if r.err != nil || n == 0 {
		return nil
	}
	return r.ReadBytes(int(n))
}

// WriteString writes a String as a Vec<u8> of its UTF-8 bytes.
func (w *Writer) WriteString(s string) {
	w.WriteCompactBytes([]byte(s))
}

// ReadString reads a String encoded as a Vec<u8> of UTF-8 bytes.
func (r *Reader) ReadString() string {
	b := r.ReadCompactBytes()
	if r.err != nil {
		return ""
	}
	return string(b)
}

// WriteCompactStringSlice writes Vec<String>.
func (w *Writer) WriteCompactStringSlice(ss []string) {
	WriteCompactSlice(w, ss, func(w *Writer, s string) { w.WriteString(s) })
}

// ReadCompactStringSlice reads Vec<String>.
func (r *Reader) ReadCompactStringSlice() []string {
	return ReadCompactSlice(r, func(r *Reader) string { return r.ReadString() })
}
