package primitives

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dotscale/substrate-go/pkg/scale"
	"github.com/dotscale/substrate-go/pkg/ss58"
)

// ErrAccountIDLength is returned when raw bytes of the wrong width are
// handed to AccountIDFromBytes.
var ErrAccountIDLength = errors.New("primitives: account id must be exactly 32 bytes")

// AccountID is an opaque 32-byte chain identifier: either an Ed25519/Sr25519
// public key, or the BLAKE2b-256 digest of a compressed secp256k1 public key
// for ECDSA-derived accounts.
type AccountID [32]byte

// AccountIDFromBytes copies raw into an AccountID, failing if raw is not
// exactly 32 bytes.
func AccountIDFromBytes(raw []byte) (AccountID, error) {
	var id AccountID
	if len(raw) != 32 {
		return id, ErrAccountIDLength
	}
	copy(id[:], raw)
	return id, nil
}

// AccountIDFromSS58 decodes an SS58-encoded address and returns its
// underlying account id, discarding the network format byte(s).
func AccountIDFromSS58(s string) (AccountID, error) {
	payload, _, err := ss58.Decode(s, 32)
	if err != nil {
		return AccountID{}, fmt.Errorf("primitives: decoding ss58 address: %w", err)
	}
	return AccountIDFromBytes(payload)
}

// Bytes returns the account id's 32 raw bytes.
func (a AccountID) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, a[:])
	return out
}

// Hex returns the account id as a 0x-prefixed lowercase hex string.
func (a AccountID) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// EncodeScale writes the account id as 32 raw bytes, with no length prefix.
func (a AccountID) EncodeScale(w *scale.Writer) {
	w.WriteFixedBytes(a[:])
}

// DecodeScale reads 32 raw bytes into the account id.
func (a *AccountID) DecodeScale(r *scale.Reader) {
	b := r.ReadFixedBytes(32)
	if r.Err() != nil {
		return
	}
	copy(a[:], b)
}
