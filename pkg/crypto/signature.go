package crypto

import (
	"crypto/ed25519"
	"errors"

	"github.com/ChainSafe/go-schnorrkel"
	"golang.org/x/crypto/blake2b"

	"github.com/dotscale/substrate-go/pkg/scale"
)

// MultiSignature is a tagged union over the three signature schemes: 64
// raw bytes for Ed25519 and Sr25519, 65 bytes (r, s, recovery id) for
// ECDSA.
type MultiSignature struct {
	scheme Scheme
	bytes  []byte
}

// Scheme returns which signature scheme produced this signature.
func (s MultiSignature) Scheme() Scheme {
	return s.scheme
}

// Bytes returns the raw signature bytes.
func (s MultiSignature) Bytes() []byte {
	out := make([]byte, len(s.bytes))
	copy(out, s.bytes)
	return out
}

// EncodeScale writes the one-byte scheme discriminant followed by the
// fixed-width signature bytes.
func (s MultiSignature) EncodeScale(w *scale.Writer) {
	w.WriteDiscriminant(byte(s.scheme))
	w.WriteFixedBytes(s.bytes)
}

// DecodeScale reads the scheme discriminant and the fixed-width signature
// bytes it implies.
func (s *MultiSignature) DecodeScale(r *scale.Reader) {
	d := r.ReadDiscriminant()
	if r.Err() != nil {
		return
	}
	var n int
	switch Scheme(d) {
	case Ed25519, Sr25519:
		n = 64
	case ECDSA:
		n = 65
	default:
		r.Fail(scale.ErrInvalidDiscriminant)
		return
	}
	b := r.ReadFixedBytes(n)
	if r.Err() != nil {
		return
	}
	s.scheme = Scheme(d)
	s.bytes = b
}

// Verify reports whether sig is a valid signature over message by the
// holder of pubKey (32 raw bytes for Ed25519/Sr25519, 33-byte compressed
// for ECDSA) under scheme. It fails with ErrSchemeMismatch without
// attempting verification if sig was produced by a different scheme —
// Substrate never cross-checks a signature against the wrong algorithm.
func Verify(sig MultiSignature, message []byte, scheme Scheme, pubKey []byte) (bool, error) {
	if sig.scheme != scheme {
		return false, ErrSchemeMismatch
	}
	switch scheme {
	case Ed25519:
		if len(pubKey) != ed25519.PublicKeySize {
			return false, errors.New("crypto: ed25519 public key must be 32 bytes")
		}
		return ed25519.Verify(ed25519.PublicKey(pubKey), message, sig.bytes), nil
	case Sr25519:
		if len(pubKey) != 32 {
			return false, errors.New("crypto: sr25519 public key must be 32 bytes")
		}
		var rawPub [32]byte
		copy(rawPub[:], pubKey)
		pub := new(schnorrkel.PublicKey)
		if err := pub.Decode(rawPub); err != nil {
			return false, err
		}
		var rawSig [64]byte
		copy(rawSig[:], sig.bytes)
		parsedSig := new(schnorrkel.Signature)
		if err := parsedSig.Decode(rawSig); err != nil {
			return false, err
		}
		transcript := schnorrkel.NewSigningContext(substrateContext, message)
		return pub.Verify(parsedSig, transcript)
	case ECDSA:
		digest := blake2b.Sum256(message)
		return verifyECDSADigest(sig.bytes, digest, pubKey)
	default:
		return false, errors.New("crypto: unknown signature scheme")
	}
}
