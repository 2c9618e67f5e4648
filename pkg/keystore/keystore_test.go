package keystore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotscale/substrate-go/pkg/crypto"
)

// fastParams keeps scrypt cheap enough for tests to run quickly; the
// production default lives in DefaultScryptParams.
func fastParams() ScryptParams {
	return ScryptParams{N: 2, R: 1, P: 1}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}

	enc, err := Encrypt(crypto.Ed25519, seed, "correct horse battery staple", fastParams())
	require.NoError(t, err)
	assert.NotEqual(t, seed, enc.Cipher)

	got, err := enc.Decrypt("correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, seed, got)
}

func TestDecryptWrongPassphraseFails(t *testing.T) {
	seed := make([]byte, 32)
	enc, err := Encrypt(crypto.Sr25519, seed, "passphrase-one", fastParams())
	require.NoError(t, err)

	_, err = enc.Decrypt("passphrase-two")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptTamperedCiphertextFails(t *testing.T) {
	seed := make([]byte, 32)
	enc, err := Encrypt(crypto.ECDSA, seed, "passphrase", fastParams())
	require.NoError(t, err)

	enc.Cipher[0] ^= 0xFF
	_, err = enc.Decrypt("passphrase")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestToKeyPairRoundTripPerScheme(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i * 7)
	}

	for _, scheme := range []crypto.Scheme{crypto.Ed25519, crypto.Sr25519, crypto.ECDSA} {
		enc, err := Encrypt(scheme, seed, "passphrase", fastParams())
		require.NoError(t, err)

		kp, err := enc.ToKeyPair("passphrase")
		require.NoError(t, err)
		assert.Equal(t, scheme, kp.Scheme())
	}
}

func TestMarshalUnmarshalFileRoundTrip(t *testing.T) {
	seed := make([]byte, 32)
	enc, err := Encrypt(crypto.Ed25519, seed, "passphrase", fastParams())
	require.NoError(t, err)

	data, err := enc.MarshalFile()
	require.NoError(t, err)

	got, err := UnmarshalFile(data)
	require.NoError(t, err)
	assert.Equal(t, enc.Scheme, got.Scheme)
	assert.Equal(t, enc.Salt, got.Salt)
	assert.Equal(t, enc.Nonce, got.Nonce)
	assert.Equal(t, enc.Cipher, got.Cipher)

	gotSeed, err := got.Decrypt("passphrase")
	require.NoError(t, err)
	assert.Equal(t, seed, gotSeed)
}

func TestEncryptProducesFreshSaltAndNonce(t *testing.T) {
	seed := make([]byte, 32)
	a, err := Encrypt(crypto.Ed25519, seed, "passphrase", fastParams())
	require.NoError(t, err)
	b, err := Encrypt(crypto.Ed25519, seed, "passphrase", fastParams())
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Nonce, b.Nonce)
	assert.NotEqual(t, a.Cipher, b.Cipher)
}
