package transaction

import (
	"github.com/dotscale/substrate-go/pkg/primitives"
	"github.com/dotscale/substrate-go/pkg/scale"
)

// multiAddressID is the discriminant of Substrate's MultiAddress::Id
// variant. A signed extrinsic's signer is always encoded this way: this
// package never constructs the Index/Raw/Address32/Address20 variants,
// since nothing in this library's call-building surface produces an
// AccountId any other way.
const multiAddressID byte = 0

// MultiAddress wraps an AccountID the way a signed extrinsic's signer
// field is actually encoded on the wire: not as the bare 32 bytes, but as
// the "Id" variant of Substrate's MultiAddress enum, a one-byte
// discriminant ahead of the account id.
type MultiAddress struct {
	Account primitives.AccountID
}

// EncodeScale writes the MultiAddress::Id discriminant followed by the
// 32-byte account id.
func (a MultiAddress) EncodeScale(w *scale.Writer) {
	w.WriteDiscriminant(multiAddressID)
	a.Account.EncodeScale(w)
}

// DecodeScale reads the MultiAddress discriminant and fails unless it is
// the Id variant — the only one a signed extrinsic produced by this
// library ever carries.
func (a *MultiAddress) DecodeScale(r *scale.Reader) {
	d := r.ReadDiscriminant()
	if r.Err() != nil {
		return
	}
	if d != multiAddressID {
		r.Fail(scale.ErrInvalidDiscriminant)
		return
	}
	a.Account.DecodeScale(r)
}
