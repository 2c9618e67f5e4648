package crypto

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/dotscale/substrate-go/pkg/scale"
)

func randomSeed(t *testing.T) []byte {
	t.Helper()
	seed := make([]byte, 32)
	_, err := rand.Read(seed)
	require.NoError(t, err)
	return seed
}

func TestEd25519SignVerifyRoundTrip(t *testing.T) {
	kp, err := NewEd25519KeyPairFromSeed(randomSeed(t))
	require.NoError(t, err)

	msg := []byte("substrate-go ed25519 test message")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)

	ok, err := Verify(sig, msg, Ed25519, kp.ToPublicKey())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSr25519SignVerifyRoundTrip(t *testing.T) {
	kp, err := NewSr25519KeyPairFromSeed(randomSeed(t))
	require.NoError(t, err)

	msg := []byte("substrate-go sr25519 test message")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, Sr25519, sig.Scheme())

	ok, err := Verify(sig, msg, Sr25519, kp.ToPublicKey())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestECDSASignVerifyRoundTrip(t *testing.T) {
	kp, err := NewECDSAKeyPairFromSeed(randomSeed(t))
	require.NoError(t, err)

	msg := []byte("substrate-go ecdsa test message")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, 65, len(sig.Bytes()))

	ok, err := Verify(sig, msg, ECDSA, kp.ToPublicKey())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestECDSAAccountIDIsBlake2bOfCompressedPubKey(t *testing.T) {
	kp, err := NewECDSAKeyPairFromSeed(randomSeed(t))
	require.NoError(t, err)

	id, err := kp.ToAccountID()
	require.NoError(t, err)
	assert.Len(t, id.Bytes(), 32)

	pub := kp.ToPublicKey()
	require.Len(t, pub, 33)
	want := blake2b.Sum256(pub)
	assert.Equal(t, want[:], id.Bytes())
}

func TestEd25519AccountIDIsPublicKey(t *testing.T) {
	kp, err := NewEd25519KeyPairFromSeed(randomSeed(t))
	require.NoError(t, err)

	id, err := kp.ToAccountID()
	require.NoError(t, err)
	assert.Equal(t, kp.ToPublicKey(), id.Bytes())
}

func TestSchemeMismatchVerifyFails(t *testing.T) {
	kp, err := NewEd25519KeyPairFromSeed(randomSeed(t))
	require.NoError(t, err)
	msg := []byte("message")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)

	_, err = Verify(sig, msg, Sr25519, kp.ToPublicKey())
	assert.ErrorIs(t, err, ErrSchemeMismatch)
}

func TestMultiSignatureEncodeScaleDiscriminant(t *testing.T) {
	kp, err := NewEd25519KeyPairFromSeed(randomSeed(t))
	require.NoError(t, err)
	sig, err := kp.Sign([]byte("msg"))
	require.NoError(t, err)

	w := scale.NewWriter()
	sig.EncodeScale(w)
	require.NoError(t, w.Err())
	assert.Equal(t, byte(Ed25519), w.Bytes()[0])
	assert.Equal(t, 65, w.Len()) // 1 discriminant + 64 signature bytes

	var got MultiSignature
	r := scale.NewReader(w.Bytes())
	got.DecodeScale(r)
	require.NoError(t, r.Err())
	assert.Equal(t, sig.Bytes(), got.Bytes())
}

func TestInvalidSeedLength(t *testing.T) {
	_, err := NewEd25519KeyPairFromSeed(make([]byte, 16))
	assert.ErrorIs(t, err, ErrInvalidSeedLength)
}
