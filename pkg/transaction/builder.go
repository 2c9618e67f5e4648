package transaction

import (
	"github.com/dotscale/substrate-go/pkg/crypto"
	"github.com/dotscale/substrate-go/pkg/primitives"
	"github.com/dotscale/substrate-go/pkg/scale"
)

// Builder assembles and signs a Transaction[C]. It is consuming: every
// With* method returns a new Builder rather than mutating the receiver, so
// a partially configured builder can be reused as a template for several
// transactions without aliasing. Build performs exactly one signing
// operation and fails closed on any missing mandatory field.
type Builder[C scale.Encodable] struct {
	signer  *crypto.MultiKeyPair
	call    *C
	nonce   *uint32
	payment *primitives.Balance
	network *primitives.Network

	mortal         bool
	mortalitySet   bool
	mortalitySetBy string
	period, phase  uint64
	birth          *[32]byte

	specVersion *uint32

	pendingErr error
}

// NewBuilder returns an empty Builder. Every mandatory field must be set
// before Build succeeds; mortality defaults to Immortal and spec_version
// defaults to the network's well-known value when one exists.
func NewBuilder[C scale.Encodable]() Builder[C] {
	return Builder[C]{}
}

// WithSigner sets the key pair that will sign and appear as the
// transaction's account.
func (b Builder[C]) WithSigner(signer crypto.MultiKeyPair) Builder[C] {
	b.signer = &signer
	return b
}

// WithCall sets the extrinsic call to sign and submit.
func (b Builder[C]) WithCall(call C) Builder[C] {
	b.call = &call
	return b
}

// WithNonce sets the account nonce.
func (b Builder[C]) WithNonce(nonce uint32) Builder[C] {
	b.nonce = &nonce
	return b
}

// WithPayment sets the tip offered to block authors.
func (b Builder[C]) WithPayment(payment primitives.Balance) Builder[C] {
	b.payment = &payment
	return b
}

// WithNetwork sets the chain the transaction is signed against; its
// genesis hash anchors the signature.
func (b Builder[C]) WithNetwork(network primitives.Network) Builder[C] {
	b.network = &network
	return b
}

// WithImmortal marks the transaction as never expiring. It is mutually
// exclusive with WithMortal.
func (b Builder[C]) WithImmortal() Builder[C] {
	if b.mortalitySet && b.mortalitySetBy != "WithImmortal" {
		b.pendingErr = contradictingEntries(b.mortalitySetBy, "WithImmortal")
		return b
	}
	b.mortal = false
	b.mortalitySet = true
	b.mortalitySetBy = "WithImmortal"
	return b
}

// WithMortal bounds the transaction's validity to a period/phase window.
// period must be a power of two in [4, 65536] and phase must be less than
// period; period/phase validity is checked at Build time, once birth is
// also known. A birth hash must still be supplied separately with
// WithBirth before Build — omitting it fails with MissingField("birth").
// Mutually exclusive with WithImmortal.
func (b Builder[C]) WithMortal(period, phase uint64) Builder[C] {
	if b.mortalitySet && b.mortalitySetBy != "WithMortal" {
		b.pendingErr = contradictingEntries(b.mortalitySetBy, "WithMortal")
		return b
	}
	b.mortal = true
	b.mortalitySet = true
	b.mortalitySetBy = "WithMortal"
	b.period = period
	b.phase = phase
	return b
}

// WithBirth sets the block hash a mortal transaction's validity window is
// anchored to. Required by Build whenever WithMortal was called; ignored
// for an immortal transaction.
func (b Builder[C]) WithBirth(birth [32]byte) Builder[C] {
	b.birth = &birth
	return b
}

// WithSpecVersion overrides the runtime spec_version pinned into the
// signature. Required for any network without a library-provided default.
func (b Builder[C]) WithSpecVersion(specVersion uint32) Builder[C] {
	b.specVersion = &specVersion
	return b
}

// Build validates the accumulated fields, assembles the SignaturePayload,
// signs it (raw bytes at or under 256 bytes, its BLAKE2b-256 digest
// otherwise), and returns the finished, ready-to-encode Transaction.
func (b Builder[C]) Build() (Transaction[C], error) {
	if b.pendingErr != nil {
		return Transaction[C]{}, b.pendingErr
	}
	if b.signer == nil {
		return Transaction[C]{}, missingField("signer")
	}
	if b.call == nil {
		return Transaction[C]{}, missingField("call")
	}
	if b.nonce == nil {
		return Transaction[C]{}, missingField("nonce")
	}
	if b.payment == nil {
		return Transaction[C]{}, missingField("payment")
	}
	if b.network == nil {
		return Transaction[C]{}, missingField("network")
	}

	genesis := b.network.Genesis()
	mortality := primitives.ImmortalMortality()
	birth := genesis
	if b.mortal {
		if b.birth == nil {
			return Transaction[C]{}, missingField("birth")
		}
		m, err := primitives.NewMortality(b.period, b.phase, *b.birth)
		if err != nil {
			return Transaction[C]{}, err
		}
		mortality = m
		birth = *b.birth
	}

	specVersion, err := b.resolveSpecVersion()
	if err != nil {
		return Transaction[C]{}, err
	}

	payload := Payload{Mortality: mortality, Nonce: *b.nonce, Payment: *b.payment}
	extra := ExtraSignaturePayload{
		SpecVersion: specVersion,
		TxVersion:   TxVersion,
		Genesis:     genesis,
		Birth:       birth,
	}
	sp := SignaturePayload[C]{Call: *b.call, Payload: payload, Extra: extra}
	signingBytes, err := sp.SigningBytes()
	if err != nil {
		return Transaction[C]{}, err
	}

	signer := *b.signer
	sig, err := signer.Sign(signingBytes)
	if err != nil {
		return Transaction[C]{}, err
	}
	account, err := signer.ToAccountID()
	if err != nil {
		return Transaction[C]{}, err
	}

	return Transaction[C]{
		Signature: &Signed{
			Address:   MultiAddress{Account: account},
			Signature: sig,
			Payload:   payload,
		},
		Call: *b.call,
	}, nil
}

func (b Builder[C]) resolveSpecVersion() (uint32, error) {
	if b.specVersion != nil {
		return *b.specVersion, nil
	}
	v, ok := b.network.DefaultSpecVersion()
	if !ok {
		return 0, missingField("spec_version")
	}
	return v, nil
}
