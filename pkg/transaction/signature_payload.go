package transaction

import (
	"golang.org/x/crypto/blake2b"

	"github.com/dotscale/substrate-go/pkg/scale"
)

// signaturePayloadThreshold is the byte length above which a signature
// payload is hashed before signing instead of signed directly. Substrate
// nodes apply the same rule when verifying, so a signer that got this
// wrong would produce signatures no node accepts.
const signaturePayloadThreshold = 256

// SignaturePayload is the ephemeral triple a transaction's signature
// actually covers: the call, the mutable Payload that also travels in the
// envelope, and the ExtraSignaturePayload that is signed but never
// transmitted. It exists only long enough to be turned into signing
// bytes; nothing holds one after Build.
type SignaturePayload[C scale.Encodable] struct {
	Call    C
	Payload Payload
	Extra   ExtraSignaturePayload
}

// Bytes concatenates the SCALE encoding of all three fields in order.
func (s SignaturePayload[C]) Bytes() ([]byte, error) {
	w := scale.NewWriter()
	s.Call.EncodeScale(w)
	s.Payload.EncodeScale(w)
	s.Extra.EncodeScale(w)
	if w.Err() != nil {
		return nil, w.Err()
	}
	return w.Bytes(), nil
}

// SigningBytes returns what a signer must actually sign: the raw
// concatenated bytes when they are 256 bytes or fewer, or their
// BLAKE2b-256 digest when they exceed that threshold. Both sides of the
// boundary are exercised by this package's tests.
func (s SignaturePayload[C]) SigningBytes() ([]byte, error) {
	b, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) <= signaturePayloadThreshold {
		return b, nil
	}
	digest := blake2b.Sum256(b)
	return digest[:], nil
}
