package transaction

import (
	"github.com/dotscale/substrate-go/pkg/scale"
)

// Call is the SCALE encoding every dispatchable extrinsic call shares:
// the pallet index, the call's index within that pallet, and then the
// call's own arguments back-to-back with no further framing.
type Call struct {
	ModuleID   byte
	DispatchID byte
	Args       scale.Encodable
}

func (c Call) EncodeScale(w *scale.Writer) {
	w.WriteByte(c.ModuleID)
	w.WriteByte(c.DispatchID)
	c.Args.EncodeScale(w)
}

// RawCall is a Call whose arguments are carried as an already-SCALE-
// encoded opaque blob rather than a typed Go struct — the shape a console
// REPL or a metadata-driven builder produces before argument types are
// known at compile time. Because a call is always the last field of a
// transaction's signed or unsigned body, decoding it as "every byte left
// in the buffer" is exact, not a guess: nothing follows it on the wire.
type RawCall struct {
	ModuleID   byte
	DispatchID byte
	ArgsScale  []byte
}

func (c RawCall) EncodeScale(w *scale.Writer) {
	w.WriteByte(c.ModuleID)
	w.WriteByte(c.DispatchID)
	w.WriteBytes(c.ArgsScale)
}

func (c *RawCall) DecodeScale(r *scale.Reader) {
	c.ModuleID = r.ReadByte()
	c.DispatchID = r.ReadByte()
	if r.Err() != nil {
		return
	}
	rest := r.Remaining()
	c.ArgsScale = r.ReadBytes(len(rest))
}
