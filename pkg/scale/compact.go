package scale

import (
	"errors"
	"math/big"
)

// Compact integers pack a 2-bit mode tag into the low bits of the first
// byte. See spec §4.1 for the full table; the boundaries below come
// straight from it.
const (
	compactMaxSingleByte = 1<<6 - 1   // 63
	compactMaxTwoByte    = 1<<14 - 1  // 16383
	compactMaxFourByte   = 1<<30 - 1  // 2^30-1
	compactMaxBigLen     = 67         // (63 + 4): 6 bits of length, biased by 4
)

var errCompactTooLarge = errors.New("scale: compact integer exceeds maximum representable width")
var errCompactNegative = errors.New("scale: compact integers cannot be negative")

// EncodeCompactUint returns the shortest legal compact encoding of v.
func EncodeCompactUint(v uint64) []byte {
	enc, err := EncodeCompactBigInt(new(big.Int).SetUint64(v))
	if err != nil {
		// v is a uint64, it always fits; this would be a bug in EncodeCompactBigInt.
		panic(err)
	}
	return enc
}

// EncodeCompactBigInt returns the shortest legal compact encoding of v,
// which must be non-negative and representable in at most 67 bytes
// (slightly above the 2^512-1 ceiling named in the spec, to leave room for
// the length byte's own encoding).
func EncodeCompactBigInt(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, errCompactNegative
	}
	switch {
	case v.IsUint64() && v.Uint64() <= compactMaxSingleByte:
		return []byte{byte(v.Uint64() << 2)}, nil
	case v.IsUint64() && v.Uint64() <= compactMaxTwoByte:
		n := uint32(v.Uint64())
		enc := (n << 2) | 1
		return []byte{byte(enc), byte(enc >> 8)}, nil
	case v.IsUint64() && v.Uint64() <= compactMaxFourByte:
		n := uint32(v.Uint64())
		enc := (n << 2) | 2
		return []byte{byte(enc), byte(enc >> 8), byte(enc >> 16), byte(enc >> 24)}, nil
	default:
		raw := littleEndianBytes(v)
		if len(raw) < 4 {
			padded := make([]byte, 4)
			copy(padded, raw)
			raw = padded
		}
		if len(raw)-4 > compactMaxBigLen-4 {
			return nil, errCompactTooLarge
		}
		header := byte(((len(raw) - 4) << 2) | 3)
		return append([]byte{header}, raw...), nil
	}
}

// decodeCompact decodes a compact integer at the start of buf, returning
// the value, the number of bytes consumed, and an error if the buffer was
// too short or the encoding was not canonical.
func decodeCompact(buf []byte) (*big.Int, int, error) {
	if len(buf) < 1 {
		return nil, 0, ErrShortRead
	}
	b0 := buf[0]
	switch b0 & 0x03 {
	case 0:
		return big.NewInt(int64(b0 >> 2)), 1, nil
	case 1:
		if len(buf) < 2 {
			return nil, 0, ErrShortRead
		}
		n := (uint64(b0) >> 2) | (uint64(buf[1]) << 6)
		if n <= compactMaxSingleByte {
			return nil, 0, ErrNonCanonicalCompact
		}
		return new(big.Int).SetUint64(n), 2, nil
	case 2:
		if len(buf) < 4 {
			return nil, 0, ErrShortRead
		}
		n := (uint64(b0) >> 2) | (uint64(buf[1]) << 6) | (uint64(buf[2]) << 14) | (uint64(buf[3]) << 22)
		if n <= compactMaxTwoByte {
			return nil, 0, ErrNonCanonicalCompact
		}
		return new(big.Int).SetUint64(n), 4, nil
	default: // 3: big-integer mode
		l := int(b0>>2) + 4
		if len(buf) < 1+l {
			return nil, 0, ErrShortRead
		}
		raw := buf[1 : 1+l]
		v := new(big.Int).SetBytes(reverseBytes(raw))
		if l > 4 && raw[l-1] == 0 {
			return nil, 0, ErrNonCanonicalCompact
		}
		if l == 4 && v.Cmp(big.NewInt(compactMaxFourByte)) <= 0 {
			return nil, 0, ErrNonCanonicalCompact
		}
		return v, 1 + l, nil
	}
}

// littleEndianBytes returns the minimal little-endian byte representation
// of v (v must be positive).
func littleEndianBytes(v *big.Int) []byte {
	be := v.Bytes() // big-endian, minimal, no leading zero byte
	return reverseBytes(be)
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
