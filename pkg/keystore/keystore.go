// Package keystore encrypts a MultiKeyPair's seed at rest, in the
// teacher's NEP-2-style idiom (scrypt key derivation, a passphrase the
// caller supplies out of band) adapted to an authenticated cipher: the
// seed material here is arbitrary-width (32-64 raw bytes, not a
// NEP2-compatible WIF), so there is no wire-format constraint pulling
// toward NEP-2's original AES-256-ECB plus double-SHA256 checksum; AES-GCM
// gives the same scrypt-derived-key shape with an authentication tag
// standing in for that checksum.
package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"

	"github.com/dotscale/substrate-go/pkg/crypto"
)

// ScryptParams mirrors the teacher's keys.ScryptParams: the three scrypt
// cost parameters, stored alongside the ciphertext so a keystore file
// remains decryptable even if the package's defaults change later.
type ScryptParams struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// DefaultScryptParams matches the teacher's NEP2ScryptParams default cost.
func DefaultScryptParams() ScryptParams {
	return ScryptParams{N: 16384, R: 8, P: 8}
}

const (
	scryptKeyLen = 32
	saltLen      = 16
)

// EncryptedSeed is the on-disk representation of a passphrase-encrypted
// MultiKeyPair seed.
type EncryptedSeed struct {
	Scheme crypto.Scheme `json:"scheme"`
	Scrypt ScryptParams  `json:"scrypt"`
	Salt   []byte        `json:"salt"`
	Nonce  []byte        `json:"nonce"`
	Cipher []byte        `json:"cipher"`
}

// ErrDecryptionFailed is returned when the passphrase is wrong or the
// ciphertext has been tampered with; AES-GCM's authentication tag check
// fails indistinguishably for both.
var ErrDecryptionFailed = errors.New("keystore: decryption failed (wrong passphrase or corrupted file)")

// Encrypt encrypts seed (the raw scheme-specific seed bytes backing a
// MultiKeyPair) under passphrase using scrypt-derived key material and
// AES-256-GCM.
func Encrypt(scheme crypto.Scheme, seed []byte, passphrase string, params ScryptParams) (*EncryptedSeed, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("keystore: derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ciphertext := gcm.Seal(nil, nonce, seed, nil)

	return &EncryptedSeed{
		Scheme: scheme,
		Scrypt: params,
		Salt:   salt,
		Nonce:  nonce,
		Cipher: ciphertext,
	}, nil
}

// Decrypt reverses Encrypt, recovering the raw seed bytes. It returns
// ErrDecryptionFailed, never the underlying AES-GCM error, so callers
// can't distinguish a wrong passphrase from tampered ciphertext.
func (e *EncryptedSeed) Decrypt(passphrase string) ([]byte, error) {
	key, err := scrypt.Key([]byte(passphrase), e.Salt, e.Scrypt.N, e.Scrypt.R, e.Scrypt.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("keystore: derive key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	seed, err := gcm.Open(nil, e.Nonce, e.Cipher, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return seed, nil
}

// ToKeyPair decrypts and reassembles the MultiKeyPair.
func (e *EncryptedSeed) ToKeyPair(passphrase string) (crypto.MultiKeyPair, error) {
	seed, err := e.Decrypt(passphrase)
	if err != nil {
		return crypto.MultiKeyPair{}, err
	}
	switch e.Scheme {
	case crypto.Ed25519:
		return crypto.NewEd25519KeyPairFromSeed(seed)
	case crypto.Sr25519:
		return crypto.NewSr25519KeyPairFromSeed(seed)
	case crypto.ECDSA:
		return crypto.NewECDSAKeyPairFromSeed(seed)
	default:
		return crypto.MultiKeyPair{}, errors.New("keystore: unknown signature scheme")
	}
}

// MarshalFile serializes the encrypted seed as indented JSON, the format
// a keystore file on disk uses.
func (e *EncryptedSeed) MarshalFile() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// UnmarshalFile parses a keystore file's JSON contents.
func UnmarshalFile(data []byte) (*EncryptedSeed, error) {
	var e EncryptedSeed
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
