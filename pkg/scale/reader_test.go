package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderFixedWidth(t *testing.T) {
	buf := []byte{
		0x01, 0x00,
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	r := NewReader(buf)
	assert.True(t, r.ReadBool())
	assert.False(t, r.ReadBool())
	assert.Equal(t, uint16(0x0102), r.ReadUint16LE())
	assert.Equal(t, uint32(0x01020304), r.ReadUint32LE())
	assert.Equal(t, uint64(0x0102030405060708), r.ReadUint64LE())
	require.NoError(t, r.Err())
	assert.Equal(t, 0, len(r.Remaining()))
}

func TestReaderInvalidBool(t *testing.T) {
	r := NewReader([]byte{0x02})
	r.ReadBool()
	assert.ErrorIs(t, r.Err(), ErrInvalidBool)
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	r.ReadUint32LE()
	assert.ErrorIs(t, r.Err(), ErrShortRead)
}

func TestDecodeExactRejectsTrailingBytes(t *testing.T) {
	r := NewReader([]byte{0x01, 0xFF})
	b := boolPair{}
	err := DecodeExact(r.buf, &b)
	assert.ErrorIs(t, err, ErrTrailingBytes)
}

func (p *boolPair) DecodeScale(r *Reader) {
	p.a = r.ReadBool()
	p.b = r.ReadBool()
}

func TestDecodeExactConsumesFully(t *testing.T) {
	p := boolPair{a: true, b: true}
	data, err := Encode(p)
	require.NoError(t, err)

	var got boolPair
	require.NoError(t, DecodeExact(data, &got))
	assert.Equal(t, p, got)
}

func TestReadOptionAbsent(t *testing.T) {
	r := NewReader([]byte{0x00})
	var called bool
	present := ReadOption(r, func(r *Reader) { called = true })
	require.NoError(t, r.Err())
	assert.False(t, present)
	assert.False(t, called)
}

func TestDiscriminantRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteDiscriminant(2)
	r := NewReader(w.Bytes())
	assert.Equal(t, byte(2), r.ReadDiscriminant())
}
