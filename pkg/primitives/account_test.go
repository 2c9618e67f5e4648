package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotscale/substrate-go/pkg/scale"
	"github.com/dotscale/substrate-go/pkg/ss58"
)

func TestAccountIDFromBytesLength(t *testing.T) {
	_, err := AccountIDFromBytes(make([]byte, 31))
	assert.ErrorIs(t, err, ErrAccountIDLength)

	id, err := AccountIDFromBytes(make([]byte, 32))
	require.NoError(t, err)
	assert.Equal(t, 32, len(id.Bytes()))
}

func TestAccountIDEncodeScaleRoundTrip(t *testing.T) {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i)
	}
	id, err := AccountIDFromBytes(raw)
	require.NoError(t, err)

	w := scale.NewWriter()
	id.EncodeScale(w)
	require.NoError(t, w.Err())
	assert.Equal(t, raw, w.Bytes())

	var got AccountID
	r := scale.NewReader(w.Bytes())
	got.DecodeScale(r)
	require.NoError(t, r.Err())
	assert.Equal(t, id, got)
}

func TestAccountIDFromSS58RoundTrip(t *testing.T) {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i * 3)
	}
	want, err := AccountIDFromBytes(raw)
	require.NoError(t, err)

	addr := ss58.Encode(ss58.PolkadotAccount, raw)
	got, err := AccountIDFromSS58(addr)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAccountIDFromSS58RejectsBadAddress(t *testing.T) {
	_, err := AccountIDFromSS58("not-an-ss58-address")
	assert.Error(t, err)
}

func TestAccountIDHex(t *testing.T) {
	var id AccountID
	id[0] = 0xAB
	assert.Equal(t, "0xab00000000000000000000000000000000000000000000000000000000000000", id.Hex())
}
