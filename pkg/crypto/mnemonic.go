package crypto

import (
	"errors"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidMnemonic is returned when a mnemonic phrase fails BIP-39
// checksum validation.
var ErrInvalidMnemonic = errors.New("crypto: invalid mnemonic phrase")

// NewMultiKeyPairFromMnemonic derives a MultiKeyPair of the given scheme
// from a BIP-39 mnemonic and optional passphrase, bridging the BIP-39 seed
// derivation (password NFKD-normalized first, as BIP-39 itself requires)
// into whichever of the three schemes scheme names. The first 32 bytes of
// the 64-byte BIP-39 seed become the scheme's mini-secret/private scalar.
func NewMultiKeyPairFromMnemonic(scheme Scheme, mnemonic, password string) (MultiKeyPair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return MultiKeyPair{}, ErrInvalidMnemonic
	}
	normalized := norm.NFKD.String(password)
	seed := bip39.NewSeed(mnemonic, normalized)

	schemeSeed := seed[:32]
	switch scheme {
	case Ed25519:
		return NewEd25519KeyPairFromSeed(schemeSeed)
	case Sr25519:
		return NewSr25519KeyPairFromSeed(schemeSeed)
	case ECDSA:
		return NewECDSAKeyPairFromSeed(schemeSeed)
	default:
		return MultiKeyPair{}, errors.New("crypto: unknown signature scheme")
	}
}
