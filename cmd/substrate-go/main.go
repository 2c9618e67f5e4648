// Command substrate-go is the CLI entrypoint: tx build/decode, account
// derivation, metadata inspection, an interactive console, and the
// background collector, all wired from cli/app.
package main

import (
	"fmt"
	"os"

	"github.com/dotscale/substrate-go/cli/app"
)

func main() {
	ctl := app.New()
	if err := ctl.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
