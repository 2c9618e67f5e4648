// Package crypto implements the three signature schemes a Substrate-style
// chain accepts — Ed25519, Sr25519 (Schnorrkel), and ECDSA over secp256k1 —
// behind a single tagged-union MultiKeyPair/MultiSignature, the way
// MultiSigner/MultiSignature work in the reference implementation.
package crypto

import "errors"

// Scheme names one of the three signature algorithms a Substrate-style
// chain accepts.
type Scheme int

const (
	// Ed25519 is the bare Edwards25519 scheme: signatures cover the raw
	// message with no signing context.
	Ed25519 Scheme = iota
	// Sr25519 is Schnorrkel/Ristretto25519: signatures are built over a
	// signing transcript bound to the fixed context "substrate".
	Sr25519
	// ECDSA is secp256k1: the signed payload is always its BLAKE2b-256
	// digest (never the raw message), and signatures carry a recovery id.
	ECDSA
)

// String implements fmt.Stringer.
func (s Scheme) String() string {
	switch s {
	case Ed25519:
		return "Ed25519"
	case Sr25519:
		return "Sr25519"
	case ECDSA:
		return "Ecdsa"
	default:
		return "Unknown"
	}
}

// ErrSchemeMismatch is returned when a MultiSignature is verified against a
// public key (or AccountID) of a different scheme. Substrate never
// cross-verifies: an Sr25519 signature is simply invalid against an
// Ed25519 key, even if the underlying bytes would otherwise parse.
var ErrSchemeMismatch = errors.New("crypto: signature scheme does not match key scheme")

// ErrInvalidSeedLength is returned when a seed isn't 32 bytes long. Every
// seed constructor takes exactly 32 bytes (Ed25519 seed, Sr25519
// mini-secret, secp256k1 scalar); a 64-byte Sr25519 secret key is not
// accepted.
var ErrInvalidSeedLength = errors.New("crypto: seed must be 32 bytes")
