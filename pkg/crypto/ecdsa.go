package crypto

import (
	"bytes"
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secp256k1ecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// ErrECDSARecovery describes a compact ECDSA signature whose embedded
// recovery id doesn't yield a public key matching the one it's checked
// against. Verify does not return it: such a signature is reported as
// invalid (false with a nil error).
var ErrECDSARecovery = errors.New("crypto: ecdsa signature does not recover to the expected public key")

// Substrate's compact ECDSA encoding always uses a compressed public key,
// so the recovery id is biased the same way libsecp256k1's compact-sig
// convention biases it for a compressed key.
const compactRecoveryBias = 27 + 4

// signECDSADigest signs an already-hashed 32-byte digest, returning a
// 65-byte signature: 32-byte r, 32-byte s, and a trailing 1-byte recovery
// id in [0,3].
func signECDSADigest(priv *secp256k1.PrivateKey, digest [32]byte) (MultiSignature, error) {
	compact := secp256k1ecdsa.SignCompact(priv, digest[:], true)
	if len(compact) != 65 {
		return MultiSignature{}, errors.New("crypto: unexpected compact ecdsa signature length")
	}
	header := compact[0]
	recID := header - compactRecoveryBias

	out := make([]byte, 65)
	copy(out[0:32], compact[1:33])  // r
	copy(out[32:64], compact[33:65]) // s
	out[64] = recID

	return MultiSignature{scheme: ECDSA, bytes: out}, nil
}

// verifyECDSADigest recovers the signer's compressed public key from sig
// and digest and reports whether it matches wantCompressedPub.
func verifyECDSADigest(sig []byte, digest [32]byte, wantCompressedPub []byte) (bool, error) {
	if len(sig) != 65 {
		return false, errors.New("crypto: ecdsa signature must be 65 bytes")
	}
	recID := sig[64]
	compact := make([]byte, 65)
	compact[0] = compactRecoveryBias + recID
	copy(compact[1:33], sig[0:32])
	copy(compact[33:65], sig[32:64])

	pub, _, err := secp256k1ecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return false, err
	}
	return bytes.Equal(pub.SerializeCompressed(), wantCompressedPub), nil
}
