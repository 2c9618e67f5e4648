package primitives

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotscale/substrate-go/pkg/scale"
)

func TestCurrencyBalance(t *testing.T) {
	b := CurrencyPolkadot.Balance(50)
	assert.Equal(t, uint256.NewInt(50_000_000_0000), b.Raw()) // 50 * 10^10
}

func TestCurrencyBalanceAsMetric(t *testing.T) {
	// 10 milli-DOT at 10 decimals: 10 * 10^10 / 1000 = 10^8
	b, err := CurrencyPolkadot.BalanceAsMetric(Milli, 10)
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(100_000_000), b.Raw())

	// 500 milli-WND at 12 decimals: 500 * 10^12 / 1000 = 5*10^11
	b2, err := CurrencyWestend.BalanceAsMetric(Milli, 500)
	require.NoError(t, err)
	assert.Equal(t, new(uint256.Int).Mul(uint256.NewInt(5), uint256.NewInt(100_000_000_000)), b2.Raw())
}

func TestCurrencyBalanceAsMetricUnknownMetric(t *testing.T) {
	_, err := CurrencyPolkadot.BalanceAsMetric(Metric(99), 1)
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestBalanceEncodeScaleIsCompact(t *testing.T) {
	w := scale.NewWriter()
	BalanceFromUint64(63).EncodeScale(w)
	require.NoError(t, w.Err())
	assert.Equal(t, []byte{0xFC}, w.Bytes())
}
