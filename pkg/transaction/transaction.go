package transaction

import (
	"github.com/dotscale/substrate-go/pkg/crypto"
	"github.com/dotscale/substrate-go/pkg/scale"
)

const (
	versionUnsigned byte = 0x04
	versionSigned   byte = 0x84
)

// Signed carries the three fields a signed transaction's envelope adds
// ahead of its call: who signed it, the signature itself, and the
// payload the signature covers.
type Signed struct {
	Address   MultiAddress
	Signature crypto.MultiSignature
	Payload   Payload
}

// Transaction is Substrate's v4 extrinsic envelope: an optional signature
// triple followed by the call it authorizes. C is the concrete call type
// this transaction carries — any type implementing scale.Encodable, most
// often RawCall or a metadata-generated typed call struct.
type Transaction[C scale.Encodable] struct {
	Signature *Signed
	Call      C
}

// NewUnsigned wraps call as an unsigned transaction.
func NewUnsigned[C scale.Encodable](call C) Transaction[C] {
	return Transaction[C]{Call: call}
}

// EncodeScale writes the transaction's envelope: a compact length prefix
// around the version byte, the optional signature triple, and the call.
func (t Transaction[C]) EncodeScale(w *scale.Writer) {
	body := scale.NewWriter()
	if t.Signature != nil {
		body.WriteByte(versionSigned)
		t.Signature.Address.EncodeScale(body)
		t.Signature.Signature.EncodeScale(body)
		t.Signature.Payload.EncodeScale(body)
	} else {
		body.WriteByte(versionUnsigned)
	}
	t.Call.EncodeScale(body)
	if body.Err() != nil {
		w.Fail(body.Err())
		return
	}
	w.WriteCompactBytes(body.Bytes())
}

// Decode parses a transaction envelope whose call is of concrete type C.
// PC is C's pointer type, which must implement scale.Decodable — the
// usual Go generics pattern for "decode into a value type via its
// pointer receiver," since DecodeScale always takes a pointer.
func Decode[C scale.Encodable, PC interface {
	*C
	scale.Decodable
}](data []byte) (*Transaction[C], error) {
	r := scale.NewReader(data)
	body := r.ReadCompactBytes()
	if r.Err() != nil {
		return nil, r.Err()
	}

	br := scale.NewReader(body)
	version := br.ReadByte()
	if br.Err() != nil {
		return nil, br.Err()
	}

	var sig *Signed
	switch version {
	case versionSigned:
		var s Signed
		s.Address.DecodeScale(br)
		s.Signature.DecodeScale(br)
		s.Payload.DecodeScale(br)
		if br.Err() != nil {
			return nil, br.Err()
		}
		sig = &s
	case versionUnsigned:
		// no further fields before the call
	default:
		return nil, ErrInvalidVersionByte(version)
	}

	var call C
	PC(&call).DecodeScale(br)
	if br.Err() != nil {
		return nil, br.Err()
	}
	if remaining := len(br.Remaining()); remaining != 0 {
		return nil, &ErrTrailingCallBytes{Remaining: remaining}
	}

	return &Transaction[C]{Signature: sig, Call: call}, nil
}
