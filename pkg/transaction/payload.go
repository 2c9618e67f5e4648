package transaction

import (
	"github.com/dotscale/substrate-go/pkg/primitives"
	"github.com/dotscale/substrate-go/pkg/scale"
)

// TxVersion is the extrinsic envelope version this package implements.
const TxVersion uint32 = 4

// Payload is the part of a transaction that travels on the wire inside
// the signed envelope, alongside the signature itself.
type Payload struct {
	Mortality primitives.Mortality
	Nonce     uint32
	Payment   primitives.Balance
}

func (p Payload) EncodeScale(w *scale.Writer) {
	p.Mortality.EncodeScale(w)
	w.WriteCompactUint(uint64(p.Nonce))
	w.WriteCompactBigInt(p.Payment.Raw().ToBig())
}

func (p *Payload) DecodeScale(r *scale.Reader) {
	p.Mortality.DecodeScale(r)
	p.Nonce = uint32(r.ReadCompactUint())
	if r.Err() != nil {
		return
	}
	v := r.ReadCompactBigInt()
	if r.Err() != nil {
		return
	}
	p.Payment = primitives.NewBalanceFromBig(v)
}

// ExtraSignaturePayload is signed but never transmitted: it pins the
// signature to one runtime version and one mortality window so a replay
// against a different chain or runtime upgrade fails verification.
type ExtraSignaturePayload struct {
	SpecVersion uint32
	TxVersion   uint32
	Genesis     [32]byte
	Birth       [32]byte
}

func (e ExtraSignaturePayload) EncodeScale(w *scale.Writer) {
	w.WriteUint32LE(e.SpecVersion)
	w.WriteUint32LE(e.TxVersion)
	w.WriteFixedBytes(e.Genesis[:])
	w.WriteFixedBytes(e.Birth[:])
}

func (e *ExtraSignaturePayload) DecodeScale(r *scale.Reader) {
	e.SpecVersion = r.ReadUint32LE()
	e.TxVersion = r.ReadUint32LE()
	genesis := r.ReadFixedBytes(32)
	birth := r.ReadFixedBytes(32)
	if r.Err() != nil {
		return
	}
	copy(e.Genesis[:], genesis)
	copy(e.Birth[:], birth)
}
