package crypto

import (
	"crypto/ed25519"
	"errors"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/blake2b"

	"github.com/dotscale/substrate-go/pkg/primitives"
)

// MultiKeyPair is a tagged union over the three signature schemes. The
// zero value is not valid; build one with NewEd25519KeyPairFromSeed,
// NewSr25519KeyPairFromSeed, NewECDSAKeyPairFromSeed, or
// NewMultiKeyPairFromMnemonic.
type MultiKeyPair struct {
	scheme Scheme

	ed25519Priv ed25519.PrivateKey
	ed25519Pub  ed25519.PublicKey

	sr25519Priv *schnorrkel.SecretKey
	sr25519Pub  *schnorrkel.PublicKey

	ecdsaPriv *secp256k1.PrivateKey
}

// Scheme returns which of the three signature schemes this key pair uses.
func (k MultiKeyPair) Scheme() Scheme {
	return k.scheme
}

// NewEd25519KeyPairFromSeed builds an Ed25519 MultiKeyPair from a 32-byte
// seed.
func NewEd25519KeyPairFromSeed(seed []byte) (MultiKeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return MultiKeyPair{}, ErrInvalidSeedLength
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return MultiKeyPair{
		scheme:      Ed25519,
		ed25519Priv: priv,
		ed25519Pub:  priv.Public().(ed25519.PublicKey),
	}, nil
}

// NewSr25519KeyPairFromSeed builds an Sr25519 MultiKeyPair from a 32-byte
// mini-secret seed.
func NewSr25519KeyPairFromSeed(seed []byte) (MultiKeyPair, error) {
	if len(seed) != 32 {
		return MultiKeyPair{}, ErrInvalidSeedLength
	}
	var raw [32]byte
	copy(raw[:], seed)
	mini, err := schnorrkel.NewMiniSecretKeyFromRaw(raw)
	if err != nil {
		return MultiKeyPair{}, err
	}
	secret := mini.ExpandEd25519()
	pub, err := secret.Public()
	if err != nil {
		return MultiKeyPair{}, err
	}
	return MultiKeyPair{scheme: Sr25519, sr25519Priv: secret, sr25519Pub: pub}, nil
}

// NewECDSAKeyPairFromSeed builds an ECDSA (secp256k1) MultiKeyPair from a
// 32-byte seed, used directly as the scalar private key.
func NewECDSAKeyPairFromSeed(seed []byte) (MultiKeyPair, error) {
	if len(seed) != 32 {
		return MultiKeyPair{}, ErrInvalidSeedLength
	}
	priv := secp256k1.PrivKeyFromBytes(seed)
	return MultiKeyPair{scheme: ECDSA, ecdsaPriv: priv}, nil
}

// ToPublicKey returns the raw public key bytes: 32 bytes for Ed25519 and
// Sr25519, 33 bytes (SEC1 compressed) for ECDSA.
func (k MultiKeyPair) ToPublicKey() []byte {
	switch k.scheme {
	case Ed25519:
		out := make([]byte, len(k.ed25519Pub))
		copy(out, k.ed25519Pub)
		return out
	case Sr25519:
		b := k.sr25519Pub.Encode()
		return b[:]
	case ECDSA:
		return k.ecdsaPriv.PubKey().SerializeCompressed()
	default:
		return nil
	}
}

// ToAccountID derives the account id this key pair signs for: the public
// key itself for Ed25519/Sr25519, or the BLAKE2b-256 digest of the
// 33-byte compressed public key for ECDSA.
func (k MultiKeyPair) ToAccountID() (primitives.AccountID, error) {
	switch k.scheme {
	case Ed25519, Sr25519:
		return primitives.AccountIDFromBytes(k.ToPublicKey())
	case ECDSA:
		digest := blake2b.Sum256(k.ToPublicKey())
		return primitives.AccountIDFromBytes(digest[:])
	default:
		return primitives.AccountID{}, errors.New("crypto: key pair has no scheme")
	}
}

// Sign produces a MultiSignature over message, applying each scheme's own
// message-transformation rule: Ed25519 signs the raw message; Sr25519
// signs a transcript bound to the fixed context "substrate"; ECDSA signs
// the message's BLAKE2b-256 digest, never the raw bytes.
func (k MultiKeyPair) Sign(message []byte) (MultiSignature, error) {
	switch k.scheme {
	case Ed25519:
		sig := ed25519.Sign(k.ed25519Priv, message)
		return MultiSignature{scheme: Ed25519, bytes: sig}, nil
	case Sr25519:
		transcript := schnorrkel.NewSigningContext(substrateContext, message)
		sig, err := k.sr25519Priv.Sign(transcript)
		if err != nil {
			return MultiSignature{}, err
		}
		enc := sig.Encode()
		return MultiSignature{scheme: Sr25519, bytes: enc[:]}, nil
	case ECDSA:
		digest := blake2b.Sum256(message)
		return signECDSADigest(k.ecdsaPriv, digest)
	default:
		return MultiSignature{}, errors.New("crypto: key pair has no scheme")
	}
}

var substrateContext = []byte("substrate")
