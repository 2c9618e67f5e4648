package primitives

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/dotscale/substrate-go/pkg/scale"
)

// ErrUnknownMetric is returned by BalanceAsMetric for an unrecognized
// Metric value.
var ErrUnknownMetric = errors.New("primitives: unknown metric")

// ErrBalanceOverflow is returned when a balance computation would exceed
// the 256-bit range backing Balance (itself far wider than Substrate's
// 128-bit balance type).
var ErrBalanceOverflow = errors.New("primitives: balance overflow")

// Balance is a chain-native token amount in the smallest indivisible unit
// (Planck for Polkadot/Kusama/Westend), backed by a fixed-width 256-bit
// integer comfortably wider than Substrate's 128-bit balance type. It
// compact-encodes; it deliberately has no DecodeScale, since a decoded
// compact integer carries no base-unit information of its own — callers
// decode it as a plain compact big integer and re-associate the unit via
// Currency themselves.
type Balance struct {
	v *uint256.Int
}

// NewBalance wraps a raw base-unit amount as a Balance.
func NewBalance(v *uint256.Int) Balance {
	return Balance{v: new(uint256.Int).Set(v)}
}

// BalanceFromUint64 wraps a raw base-unit amount as a Balance.
func BalanceFromUint64(v uint64) Balance {
	return Balance{v: uint256.NewInt(v)}
}

// NewBalanceFromBig wraps a raw base-unit amount already decoded as a
// plain compact big integer (e.g. a transaction payload's payment field)
// as a Balance, re-associating the unit the caller already knows from
// context. This is a constructor, not DecodeScale: Balance still carries
// no decode-from-the-wire method of its own.
func NewBalanceFromBig(v *big.Int) Balance {
	u := new(uint256.Int)
	u.SetFromBig(v)
	return Balance{v: u}
}

// Raw returns the amount in the smallest indivisible unit.
func (b Balance) Raw() *uint256.Int {
	return new(uint256.Int).Set(b.v)
}

// EncodeScale writes the balance as a compact big integer.
func (b Balance) EncodeScale(w *scale.Writer) {
	w.WriteCompactBigInt(b.v.ToBig())
}

// Currency names a chain's native token and the power-of-ten scale between
// its display unit and its smallest indivisible base unit.
type Currency struct {
	name     string
	decimals uint
}

var (
	// CurrencyPolkadot is DOT, 10 decimals.
	CurrencyPolkadot = Currency{name: "DOT", decimals: 10}
	// CurrencyKusama is KSM, 12 decimals.
	CurrencyKusama = Currency{name: "KSM", decimals: 12}
	// CurrencyWestend is WND, 12 decimals.
	CurrencyWestend = Currency{name: "WND", decimals: 12}
)

// CustomCurrency builds a Currency for a chain whose native token isn't
// among the well-known set.
func CustomCurrency(name string, decimals uint) Currency {
	return Currency{name: name, decimals: decimals}
}

// Name returns the currency's ticker symbol.
func (c Currency) Name() string {
	return c.name
}

// Decimals returns the number of base-ten digits between one full unit of
// the currency and its smallest indivisible base unit.
func (c Currency) Decimals() uint {
	return c.decimals
}

func (c Currency) unitScale() *uint256.Int {
	factor := uint256.NewInt(1)
	ten := uint256.NewInt(10)
	for i := uint(0); i < c.decimals; i++ {
		factor.Mul(factor, ten)
	}
	return factor
}

// Balance converts a whole-unit amount (n full DOT/KSM/WND) into its
// base-unit Balance.
func (c Currency) Balance(n uint64) Balance {
	v, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(n), c.unitScale())
	if overflow {
		panic(ErrBalanceOverflow)
	}
	return Balance{v: v}
}

// Metric names a fractional SI prefix of one full currency unit.
type Metric int

const (
	// Milli is one thousandth of a full unit.
	Milli Metric = iota
	// Micro is one millionth of a full unit.
	Micro
	// Nano is one billionth of a full unit.
	Nano
)

func (m Metric) divisor() (uint64, bool) {
	switch m {
	case Milli:
		return 1_000, true
	case Micro:
		return 1_000_000, true
	case Nano:
		return 1_000_000_000, true
	default:
		return 0, false
	}
}

// BalanceAsMetric converts n units of the given metric (e.g. n milli-DOT)
// into a base-unit Balance, failing if the currency's decimals can't
// represent the metric's fraction exactly (too few decimals for the
// requested precision) or if metric is unrecognized.
func (c Currency) BalanceAsMetric(metric Metric, n uint64) (Balance, error) {
	divisor, ok := metric.divisor()
	if !ok {
		return Balance{}, ErrUnknownMetric
	}
	scaled, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(n), c.unitScale())
	if overflow {
		return Balance{}, ErrBalanceOverflow
	}
	result, rem := new(uint256.Int).DivMod(scaled, uint256.NewInt(divisor), new(uint256.Int))
	if !rem.IsZero() {
		return Balance{}, errors.New("primitives: metric amount is not representable at this currency's decimal precision")
	}
	return Balance{v: result}, nil
}
