package ss58

import (
	"errors"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// ErrInvalidChecksum is returned when a decoded address's checksum doesn't
// match its body.
var ErrInvalidChecksum = errors.New("ss58: invalid checksum")

// ErrInvalidLength is returned when a decoded address doesn't have the
// expected length for its prefix and payload width.
var ErrInvalidLength = errors.New("ss58: invalid address length")

// ErrInvalidPrefix is returned when the leading prefix byte names an
// unsupported encoding (ids above 16383 are reserved and use neither the
// one- nor two-byte form).
var ErrInvalidPrefix = errors.New("ss58: invalid address prefix")

const checksumLen = 2
const ss58Prefix = "SS58PRE"

func ss58hash(data []byte) []byte {
	h, err := blake2b.New(64, nil)
	if err != nil {
		panic(err) // blake2b-512 with no key always succeeds
	}
	h.Write([]byte(ss58Prefix))
	h.Write(data)
	return h.Sum(nil)
}

// Encode returns the SS58 address for payload (an AccountId32's 32 raw
// bytes, or any other fixed-width public key) under the given network
// format.
func Encode(format Format, payload []byte) string {
	ident := format.id & 0x3FFF
	var prefix []byte
	switch {
	case ident <= 63:
		prefix = []byte{byte(ident)}
	default:
		first := byte((ident&0x00FC)>>2) | 0b01000000
		second := byte(ident>>8) | byte(ident&0x0003)<<6
		prefix = []byte{first, second}
	}

	v := make([]byte, 0, len(prefix)+len(payload)+checksumLen)
	v = append(v, prefix...)
	v = append(v, payload...)

	hash := ss58hash(v)
	v = append(v, hash[:checksumLen]...)

	return base58.Encode(v)
}

// Decode parses an SS58 address, returning its network format and the
// decoded payload (bodyLen bytes, e.g. 32 for an AccountId32).
func Decode(s string, bodyLen int) ([]byte, Format, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return nil, Format{}, err
	}
	if len(data) < 2 {
		return nil, Format{}, ErrInvalidLength
	}

	var prefixLen int
	var ident uint16
	switch {
	case data[0] <= 63:
		prefixLen = 1
		ident = uint16(data[0])
	case data[0] <= 127:
		if len(data) < 2 {
			return nil, Format{}, ErrInvalidLength
		}
		prefixLen = 2
		lower := (data[0] << 2) | (data[1] >> 6)
		upper := data[1] & 0b00111111
		ident = uint16(lower) | uint16(upper)<<8
	default:
		return nil, Format{}, ErrInvalidPrefix
	}

	if len(data) != prefixLen+bodyLen+checksumLen {
		return nil, Format{}, ErrInvalidLength
	}

	hash := ss58hash(data[:prefixLen+bodyLen])
	checksum := data[prefixLen+bodyLen : prefixLen+bodyLen+checksumLen]
	for i := 0; i < checksumLen; i++ {
		if hash[i] != checksum[i] {
			return nil, Format{}, ErrInvalidChecksum
		}
	}

	payload := make([]byte, bodyLen)
	copy(payload, data[prefixLen:prefixLen+bodyLen])
	return payload, Custom(ident), nil
}
