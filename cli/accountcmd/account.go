// Package accountcmd implements the "account" command: deriving an SS58
// address and AccountId from a seed, BIP-39 mnemonic, or raw public key.
package accountcmd

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/dotscale/substrate-go/pkg/crypto"
	"github.com/dotscale/substrate-go/pkg/primitives"
	"github.com/dotscale/substrate-go/pkg/ss58"
)

// NewCommands returns the "account" command.
func NewCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "account",
			Usage:     "Derive an SS58 address and AccountId",
			UsageText: "substrate-go account --scheme <ed25519|sr25519|ecdsa> --network <name> (--seed <hex> | --mnemonic <words> [--password <pw>] | --public-key <hex>)",
			Action:    deriveAccount,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "scheme", Value: "sr25519", Usage: "ed25519, sr25519, or ecdsa"},
				&cli.StringFlag{Name: "network", Value: "polkadot", Usage: "ss58 network name, e.g. polkadot, kusama, substrate"},
				&cli.StringFlag{Name: "seed", Usage: "hex-encoded seed"},
				&cli.StringFlag{Name: "mnemonic", Usage: "BIP-39 mnemonic phrase"},
				&cli.StringFlag{Name: "password", Usage: "BIP-39 mnemonic password"},
				&cli.StringFlag{Name: "public-key", Usage: "hex-encoded 32- or 33-byte public key, address-only mode"},
			},
		},
	}
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
		return 0, fmt.Errorf("account: unknown scheme %q", s)
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
		return crypto.MultiKeyPair{}, fmt.Errorf("account: unhandled scheme %v", scheme)
	}
}

func deriveAccount(c *cli.Context) error {
	scheme, err := parseScheme(c.String("scheme"))
	if err != nil {
		return err
	}
	format, ok := ss58.ByName(c.String("network"))
	if !ok {
		return fmt.Errorf("account: unknown ss58 network %q", c.String("network"))
	}

	var accountID primitives.AccountID
	switch {
	case c.String("public-key") != "":
		raw, err := hex.DecodeString(c.String("public-key"))
		if err != nil {
			return fmt.Errorf("account: decoding --public-key: %w", err)
		}
		if len(raw) == 33 {
			digest := blake2b.Sum256(raw)
			raw = digest[:]
		}
		accountID, err = primitives.AccountIDFromBytes(raw)
		if err != nil {
			return fmt.Errorf("account: %w", err)
		}
	case c.String("mnemonic") != "":
		kp, err := crypto.NewMultiKeyPairFromMnemonic(scheme, c.String("mnemonic"), c.String("password"))
		if err != nil {
			return fmt.Errorf("account: deriving from mnemonic: %w", err)
		}
		accountID, err = kp.ToAccountID()
		if err != nil {
			return fmt.Errorf("account: %w", err)
		}
	case c.String("seed") != "":
		seed, err := hex.DecodeString(c.String("seed"))
		if err != nil {
			return fmt.Errorf("account: decoding --seed: %w", err)
		}
		kp, err := keyPairFromSeed(scheme, seed)
		if err != nil {
			return err
		}
		accountID, err = kp.ToAccountID()
		if err != nil {
			return fmt.Errorf("account: %w", err)
		}
	default:
		return fmt.Errorf("account: one of --seed, --mnemonic, or --public-key is required")
	}

	fmt.Fprintf(c.App.Writer, "AccountId: 0x%s\n", hex.EncodeToString(accountID.Bytes()))
	fmt.Fprintf(c.App.Writer, "Address:   %s\n", ss58.Encode(format, accountID.Bytes()))
	return nil
}
