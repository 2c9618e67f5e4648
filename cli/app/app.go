// Package app assembles substrate-go's command-line interface, composing
// each command group's NewCommands the way the teacher's cli/app.New does
// for its own subpackages.
package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/dotscale/substrate-go/cli/accountcmd"
	"github.com/dotscale/substrate-go/cli/collectorcmd"
	"github.com/dotscale/substrate-go/cli/consolecmd"
	"github.com/dotscale/substrate-go/cli/metadatacmd"
	"github.com/dotscale/substrate-go/cli/txcmd"
)

// Version is set at build time via -ldflags; "dev" otherwise.
var Version = "dev"

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "substrate-go\nVersion: %s\nGoVersion: %s\n", Version, runtime.Version())
}

// New creates the substrate-go CLI application with every command group
// registered.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "substrate-go"
	ctl.Version = Version
	ctl.Usage = "Construct, sign, encode, and decode Substrate-style transactions"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, txcmd.NewCommands()...)
	ctl.Commands = append(ctl.Commands, accountcmd.NewCommands()...)
	ctl.Commands = append(ctl.Commands, metadatacmd.NewCommands()...)
	ctl.Commands = append(ctl.Commands, consolecmd.NewCommands()...)
	ctl.Commands = append(ctl.Commands, collectorcmd.NewCommands()...)
	return ctl
}
