package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/dotscale/substrate-go/pkg/primitives"
)

// fixedOverheadBytes is the size of everything in a SignaturePayload
// besides the call's own argument blob: a 2-byte call header, a 3-byte
// immortal/zero-nonce/zero-payment Payload, and a 72-byte
// ExtraSignaturePayload (4+4+32+32).
const fixedOverheadBytes = 2 + 3 + 72

func payloadWithArgsLength(n int) SignaturePayload[RawCall] {
	return SignaturePayload[RawCall]{
		Call: RawCall{ModuleID: 0, DispatchID: 0, ArgsScale: make([]byte, n)},
		Payload: Payload{
			Mortality: primitives.ImmortalMortality(),
			Nonce:     0,
			Payment:   primitives.BalanceFromUint64(0),
		},
		Extra: ExtraSignaturePayload{SpecVersion: 0, TxVersion: TxVersion},
	}
}

func TestSignaturePayloadBoundaryAt256SignsRawBytes(t *testing.T) {
	sp := payloadWithArgsLength(256 - fixedOverheadBytes)
	raw, err := sp.Bytes()
	require.NoError(t, err)
	require.Len(t, raw, 256)

	signing, err := sp.SigningBytes()
	require.NoError(t, err)
	assert.Equal(t, raw, signing)
}

func TestSignaturePayloadBoundaryAt257SignsDigest(t *testing.T) {
	sp := payloadWithArgsLength(257 - fixedOverheadBytes)
	raw, err := sp.Bytes()
	require.NoError(t, err)
	require.Len(t, raw, 257)

	signing, err := sp.SigningBytes()
	require.NoError(t, err)
	want := blake2b.Sum256(raw)
	assert.Equal(t, want[:], signing)
	assert.Len(t, signing, 32)
}
