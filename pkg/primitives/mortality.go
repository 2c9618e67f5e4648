package primitives

import (
	"errors"
	"math/bits"

	"github.com/dotscale/substrate-go/pkg/scale"
)

// ErrInvalidMortality is returned when a period/phase pair can't be
// expressed as a valid era: period must be a power of two in [4, 65536]
// and phase must be strictly less than period.
var ErrInvalidMortality = errors.New("primitives: period must be a power of two in [4, 65536] with phase < period")

// Mortality selects whether a transaction is valid forever (Immortal) or
// only within a bounded window of blocks starting at a birth block
// (Mortal). It encodes as the one- or two-byte "era" packing used
// throughout Substrate: a single zero byte for Immortal, or two bytes
// quantizing (period, phase) for Mortal.
type Mortality struct {
	mortal bool
	period uint64
	phase  uint64
	birth  *[32]byte
}

// ImmortalMortality builds a Mortality that never expires.
func ImmortalMortality() Mortality {
	return Mortality{}
}

// NewMortality builds a bounded Mortality. period must be a power of two
// in [4, 65536] and phase must be less than period; birth is the hash of
// the block the period starts counting from.
func NewMortality(period, phase uint64, birth [32]byte) (Mortality, error) {
	if period < 4 || period > 65536 || period&(period-1) != 0 || phase >= period {
		return Mortality{}, ErrInvalidMortality
	}
	b := birth
	return Mortality{mortal: true, period: period, phase: phase, birth: &b}, nil
}

// IsMortal reports whether the transaction has a bounded validity window.
func (m Mortality) IsMortal() bool {
	return m.mortal
}

// Period returns the quantized validity window, in blocks. Zero for
// Immortal.
func (m Mortality) Period() uint64 {
	return m.period
}

// Phase returns the validity window's phase offset. Zero for Immortal.
func (m Mortality) Phase() uint64 {
	return m.phase
}

// Birth returns the block hash the mortality period starts from. The
// second return value is false for Immortal.
func (m Mortality) Birth() ([32]byte, bool) {
	if m.birth == nil {
		return [32]byte{}, false
	}
	return *m.birth, true
}

// MortalBlock returns the block number a period of mortality beginning at
// the given phase and period should be anchored to, given the current
// block number. Ported from the reference implementation's
// Mortality::mortal: callers use this to pick the birth block whose hash
// they then fetch from the chain.
func MortalBlock(current, period, phase uint64) uint64 {
	base := current
	if phase > base {
		base = phase
	}
	return (base-phase)/period*period + phase
}

// EncodeScale writes the one- or two-byte era packing.
func (m Mortality) EncodeScale(w *scale.Writer) {
	if !m.mortal {
		w.WriteByte(0)
		return
	}
	quantizeFactor := m.period >> 12
	if quantizeFactor < 1 {
		quantizeFactor = 1
	}
	trailingZeros := uint64(bits.TrailingZeros64(m.period))
	encodedPeriod := trailingZeros - 1
	if encodedPeriod < 1 {
		encodedPeriod = 1
	}
	if encodedPeriod > 15 {
		encodedPeriod = 15
	}
	encoded := encodedPeriod | ((m.phase / quantizeFactor) << 4)
	w.WriteByte(byte(encoded))
	w.WriteByte(byte(encoded >> 8))
}

// DecodeScale reads the one- or two-byte era packing. It does not read the
// 32-byte birth hash, which is carried alongside Mortality (in
// ExtraSignaturePayload) rather than inside the era encoding itself; birth
// is left unset after decode.
func (m *Mortality) DecodeScale(r *scale.Reader) {
	first := r.ReadByte()
	if r.Err() != nil {
		return
	}
	if first == 0 {
		*m = Mortality{}
		return
	}
	second := r.ReadByte()
	if r.Err() != nil {
		return
	}
	encoded := uint64(first) | uint64(second)<<8
	period := uint64(2) << (encoded % 16)
	quantizeFactor := period >> 12
	if quantizeFactor < 1 {
		quantizeFactor = 1
	}
	phase := (encoded >> 4) * quantizeFactor
	if period < 4 || phase >= period {
		r.Fail(ErrInvalidMortality)
		return
	}
	*m = Mortality{mortal: true, period: period, phase: phase}
}
