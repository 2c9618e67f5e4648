package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotscale/substrate-go/pkg/scale"
)

func TestImmortalityEncodesSingleZeroByte(t *testing.T) {
	w := scale.NewWriter()
	ImmortalMortality().EncodeScale(w)
	require.NoError(t, w.Err())
	assert.Equal(t, []byte{0x00}, w.Bytes())

	var m Mortality
	r := scale.NewReader(w.Bytes())
	m.DecodeScale(r)
	require.NoError(t, r.Err())
	assert.False(t, m.IsMortal())
}

func TestMortalityRoundTrip(t *testing.T) {
	var birth [32]byte
	birth[0] = 0xAB
	m, err := NewMortality(64, 10, birth)
	require.NoError(t, err)

	w := scale.NewWriter()
	m.EncodeScale(w)
	require.NoError(t, w.Err())
	assert.Equal(t, 2, w.Len())

	var got Mortality
	r := scale.NewReader(w.Bytes())
	got.DecodeScale(r)
	require.NoError(t, r.Err())
	assert.True(t, got.IsMortal())
	assert.Equal(t, uint64(64), got.Period())
	assert.Equal(t, uint64(10), got.Phase())
}

func TestNewMortalityRejectsNonPowerOfTwoPeriod(t *testing.T) {
	_, err := NewMortality(100, 1, [32]byte{})
	assert.ErrorIs(t, err, ErrInvalidMortality)
}

func TestNewMortalityRejectsPhaseNotLessThanPeriod(t *testing.T) {
	_, err := NewMortality(64, 64, [32]byte{})
	assert.ErrorIs(t, err, ErrInvalidMortality)
}

func TestNewMortalityRejectsPeriodOutOfRange(t *testing.T) {
	_, err := NewMortality(2, 0, [32]byte{})
	assert.ErrorIs(t, err, ErrInvalidMortality)

	_, err = NewMortality(1<<17, 0, [32]byte{})
	assert.ErrorIs(t, err, ErrInvalidMortality)
}

func TestMortalBlock(t *testing.T) {
	assert.Equal(t, uint64(0), MortalBlock(0, 64, 0))
	assert.Equal(t, uint64(1280), MortalBlock(1337, 64, 0))
	assert.Equal(t, uint64(1290), MortalBlock(1337, 64, 10))
}
