// Package txcmd implements the "tx" command group: building a signed or
// unsigned transaction envelope from flags, and decoding one back into a
// human-readable dump.
package txcmd

import (
	"encoding/hex"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/dotscale/substrate-go/pkg/crypto"
	"github.com/dotscale/substrate-go/pkg/primitives"
	"github.com/dotscale/substrate-go/pkg/scale"
	"github.com/dotscale/substrate-go/pkg/transaction"
)

// NewCommands returns the "tx" command and its build/decode subcommands.
func NewCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "tx",
			Usage: "Build and decode transaction envelopes",
			Subcommands: []*cli.Command{
				{
					Name:      "build",
					Usage:     "Construct and sign a transaction, printing its hex envelope",
					UsageText: "substrate-go tx build --seed <hex> --scheme <ed25519|sr25519|ecdsa> --network <polkadot|kusama|westend> --module N --dispatch N --args <hex> --nonce N --payment N [--immortal | --period N --phase N --birth <hex>] [--spec-version N]",
					Action:    buildTx,
					Flags:     buildFlags,
				},
				{
					Name:      "decode",
					Usage:     "Decode a hex transaction envelope and dump its structure",
					UsageText: "substrate-go tx decode <hex envelope>",
					Action:    decodeTx,
				},
			},
		},
	}
}

var buildFlags = []cli.Flag{
	&cli.StringFlag{Name: "seed", Usage: "hex-encoded 32-byte signing seed", Required: true},
	&cli.StringFlag{Name: "scheme", Usage: "ed25519, sr25519, or ecdsa", Value: "sr25519"},
	&cli.StringFlag{Name: "network", Usage: "polkadot, kusama, westend, or a 32-byte hex genesis hash", Value: "polkadot"},
	&cli.UintFlag{Name: "module", Usage: "pallet index", Required: true},
	&cli.UintFlag{Name: "dispatch", Usage: "call index within the pallet", Required: true},
	&cli.StringFlag{Name: "args", Usage: "hex-encoded, already SCALE-encoded call arguments", Value: ""},
	&cli.Uint64Flag{Name: "nonce", Required: true},
	&cli.Uint64Flag{Name: "payment", Usage: "tip, in the chain's smallest unit", Required: true},
	&cli.BoolFlag{Name: "immortal", Usage: "never expire (default)", Value: true},
	&cli.Uint64Flag{Name: "period", Usage: "mortality period (power of two, 4..65536)"},
	&cli.Uint64Flag{Name: "phase", Usage: "mortality phase, < period"},
	&cli.StringFlag{Name: "birth", Usage: "hex-encoded 32-byte birth block hash, required with --period"},
	&cli.Uint64Flag{Name: "spec-version", Usage: "overrides the network's default spec_version"},
}

func parseScheme(s string) (crypto.Scheme, error) {
	switch s {
	case "ed25519":
		return crypto.Ed25519, nil
	case "sr25519":
		return crypto.Sr25519, nil
	case "ecdsa":
		return crypto.ECDSA, nil
	default:
		return 0, fmt.Errorf("tx build: unknown scheme %q", s)
	}
}

func parseNetwork(s string) (primitives.Network, error) {
	switch s {
	case "polkadot":
		return primitives.Polkadot, nil
	case "kusama":
		return primitives.Kusama, nil
	case "westend":
		return primitives.Westend, nil
	default:
		raw, err := hex.DecodeString(s)
		if err != nil || len(raw) != 32 {
			return primitives.Network{}, fmt.Errorf("tx build: network %q is not a known name or a 32-byte hex genesis hash", s)
		}
		var genesis [32]byte
		copy(genesis[:], raw)
		return primitives.CustomNetwork(genesis), nil
	}
}

func keyPairFromSeed(scheme crypto.Scheme, seed []byte) (crypto.MultiKeyPair, error) {
	switch scheme {
	case crypto.Ed25519:
		return crypto.NewEd25519KeyPairFromSeed(seed)
	case crypto.Sr25519:
		return crypto.NewSr25519KeyPairFromSeed(seed)
	case crypto.ECDSA:
		return crypto.NewECDSAKeyPairFromSeed(seed)
	default:
		return crypto.MultiKeyPair{}, fmt.Errorf("tx build: unhandled scheme %v", scheme)
	}
}

func buildTx(c *cli.Context) error {
	seed, err := hex.DecodeString(c.String("seed"))
	if err != nil {
		return fmt.Errorf("tx build: decoding --seed: %w", err)
	}
	scheme, err := parseScheme(c.String("scheme"))
	if err != nil {
		return err
	}
	signer, err := keyPairFromSeed(scheme, seed)
	if err != nil {
		return err
	}
	network, err := parseNetwork(c.String("network"))
	if err != nil {
		return err
	}
	argsScale, err := hex.DecodeString(c.String("args"))
	if err != nil {
		return fmt.Errorf("tx build: decoding --args: %w", err)
	}

	call := transaction.RawCall{
		ModuleID:   byte(c.Uint("module")),
		DispatchID: byte(c.Uint("dispatch")),
		ArgsScale:  argsScale,
	}

	builder := transaction.NewBuilder[transaction.RawCall]().
		WithSigner(signer).
		WithCall(call).
		WithNonce(uint32(c.Uint64("nonce"))).
		WithPayment(primitives.BalanceFromUint64(c.Uint64("payment"))).
		WithNetwork(network)

	if c.IsSet("period") {
		builder = builder.WithMortal(c.Uint64("period"), c.Uint64("phase"))
		birthRaw, err := hex.DecodeString(c.String("birth"))
		if err != nil || len(birthRaw) != 32 {
			return fmt.Errorf("tx build: --birth must be a 32-byte hex hash when --period is set")
		}
		var birth [32]byte
		copy(birth[:], birthRaw)
		builder = builder.WithBirth(birth)
	} else {
		builder = builder.WithImmortal()
	}

	if c.IsSet("spec-version") {
		builder = builder.WithSpecVersion(uint32(c.Uint64("spec-version")))
	}

	tx, err := builder.Build()
	if err != nil {
		return fmt.Errorf("tx build: %w", err)
	}

	encoded, err := scale.Encode(tx)
	if err != nil {
		return fmt.Errorf("tx build: encoding envelope: %w", err)
	}
	fmt.Fprintln(c.App.Writer, "0x"+hex.EncodeToString(encoded))
	return nil
}

func decodeTx(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("tx decode: expected exactly one hex envelope argument")
	}
	data, err := hex.DecodeString(trimHexPrefix(c.Args().First()))
	if err != nil {
		return fmt.Errorf("tx decode: %w", err)
	}

	tx, err := transaction.Decode[transaction.RawCall, *transaction.RawCall](data)
	if err != nil {
		return fmt.Errorf("tx decode: %w", err)
	}

	spew.Fdump(c.App.Writer, tx)
	return nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
