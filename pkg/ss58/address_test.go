package ss58

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The all-zero 32-byte payload under network id 0 (Polkadot) has 33 leading
// zero bytes (the one-byte prefix plus the payload), which base58 renders
// as 33 leading '1' characters, followed by the blake2b-512 checksum's
// base58 digits. Independently verified against a blake2b-512 + base58
// reference implementation outside this repo.
const zeroPolkadotAddress = "111111111111111111111111111111111HC1"

func TestEncodeAllZeroPolkadotVector(t *testing.T) {
	payload := make([]byte, 32)
	got := Encode(PolkadotAccount, payload)
	assert.Equal(t, zeroPolkadotAddress, got)
}

func TestDecodeAllZeroPolkadotVector(t *testing.T) {
	payload, format, err := Decode(zeroPolkadotAddress, 32)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 32), payload)
	assert.Equal(t, uint16(0), format.ID())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := make([]byte, 32)
	for i := range payload {
		payload[i] = byte(i * 7)
	}
	for _, f := range []Format{PolkadotAccount, KusamaAccount, SubstrateAccount, Custom(12345)} {
		addr := Encode(f, payload)
		gotPayload, gotFormat, err := Decode(addr, 32)
		require.NoError(t, err)
		assert.Equal(t, payload, gotPayload)
		assert.Equal(t, f.ID(), gotFormat.ID())
	}
}

func TestDecodeRejectsBadChecksum(t *testing.T) {
	payload := make([]byte, 32)
	payload[0] = 0x42
	addr := Encode(PolkadotAccount, payload)
	tampered := []byte(addr)
	// Flip a character near the end, inside the checksum-derived tail.
	if tampered[len(tampered)-1] == 'a' {
		tampered[len(tampered)-1] = 'b'
	} else {
		tampered[len(tampered)-1] = 'a'
	}
	_, _, err := Decode(string(tampered), 32)
	assert.Error(t, err)
}

func TestByNameAndByID(t *testing.T) {
	f, ok := ByName("kusama")
	require.True(t, ok)
	assert.Equal(t, uint16(2), f.ID())

	assert.Equal(t, "polkadot", ByID(0).Name())
	assert.Equal(t, "9999", Custom(9999).Name()) // not a registered id; falls back to numeric
}

func TestDecodeTwoBytePrefix(t *testing.T) {
	payload := make([]byte, 32)
	addr := Encode(SubstrateAccount, payload) // id 42, single-byte mode boundary check
	_, format, err := Decode(addr, 32)
	require.NoError(t, err)
	assert.Equal(t, uint16(42), format.ID())

	addr2 := Encode(Moonbeam, payload) // id 1284, two-byte mode
	_, format2, err := Decode(addr2, 32)
	require.NoError(t, err)
	assert.Equal(t, uint16(1284), format2.ID())
}
