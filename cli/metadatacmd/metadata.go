// Package metadatacmd implements the "metadata inspect" command: parsing a
// runtime metadata file and listing its modules and extrinsics with their
// ids. Storage entries are not listed.
package metadatacmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/dotscale/substrate-go/pkg/metadata"
)

// NewCommands returns the "metadata" command and its "inspect" subcommand.
func NewCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "metadata",
			Usage: "Inspect runtime metadata",
			Subcommands: []*cli.Command{
				{
					Name:      "inspect",
					Usage:     "List a metadata file's modules and extrinsics",
					UsageText: "substrate-go metadata inspect <path>",
					Action:    inspect,
				},
			},
		},
	}
}

func inspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("metadata inspect: expected exactly one file path argument")
	}
	raw, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("metadata inspect: %w", err)
	}

	v, err := metadata.ParseHex(strings.TrimSpace(string(raw)))
	if err != nil {
		v, err = metadata.ParseRaw(raw)
	}
	if err != nil {
		return fmt.Errorf("metadata inspect: %w", err)
	}

	m, err := v.IntoLatest()
	if err != nil {
		return fmt.Errorf("metadata inspect: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "metadata version: %d\n\n", v.VersionNumber())

	w := tabwriter.NewWriter(c.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "MODULE\tID\tCALL\tID")
	for _, ex := range m.ModulesExtrinsics() {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", ex.ModuleName, ex.ModuleID, ex.ExtrinsicName, ex.DispatchID)
	}
	return w.Flush()
}
