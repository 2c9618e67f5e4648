// Package consolecmd implements the "console" command: an interactive
// readline-backed REPL for loading metadata and resolving module/call
// names to the module_id/dispatch_id a call is encoded with, grounded on
// the teacher's own readline + shellquote driven VM CLI loop. It does not
// assemble or sign calls; "tx build" does that.
package consolecmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"

	"github.com/dotscale/substrate-go/pkg/metadata"
)

// NewCommands returns the "console" command.
func NewCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "console",
			Usage:  "Start an interactive console for exploring metadata and resolving call ids",
			Action: runConsole,
		},
	}
}

// session holds the state one console invocation accumulates: at most one
// loaded metadata file, consulted by "find" to resolve names to indices.
type session struct {
	latest *metadata.V13
}

func runConsole(c *cli.Context) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "substrate-go> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	defer l.Close()

	sess := &session{}
	shell := newShell(sess)

	for {
		line, err := l.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("console: reading input: %w", err)
		}

		args, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintf(c.App.ErrWriter, "console: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		if err := shell.Run(append([]string{"console"}, args...)); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			fmt.Fprintf(c.App.ErrWriter, "console: %v\n", err)
		}
	}
}

func loadMetadataFile(path string) (*metadata.V13, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := metadata.ParseHex(strings.TrimSpace(string(raw)))
	if err != nil {
		v, err = metadata.ParseRaw(raw)
	}
	if err != nil {
		return nil, err
	}
	return v.IntoLatest()
}

func newShell(sess *session) *cli.App {
	app := cli.NewApp()
	app.Name = "console"
	app.HelpName = ""
	app.UsageText = ""
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Commands = []*cli.Command{
		{
			Name:      "load",
			Usage:     "Load a metadata file",
			UsageText: "load <path>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("load: expected exactly one file path argument")
				}
				m, err := loadMetadataFile(c.Args().First())
				if err != nil {
					return err
				}
				sess.latest = m
				fmt.Fprintln(c.App.Writer, "metadata loaded")
				return nil
			},
		},
		{
			Name:      "find",
			Usage:     "Resolve a module/call name pair to its module_id/dispatch_id",
			UsageText: "find <module> <call>",
			Action: func(c *cli.Context) error {
				if sess.latest == nil {
					return fmt.Errorf("find: no metadata loaded, run 'load <path>' first")
				}
				if c.NArg() != 2 {
					return fmt.Errorf("find: expected <module> <call>")
				}
				info, ok := sess.latest.FindModuleExtrinsic(c.Args().Get(0), c.Args().Get(1))
				if !ok {
					return fmt.Errorf("find: no such module/call")
				}
				fmt.Fprintf(c.App.Writer, "module_id=%d dispatch_id=%d args=%v\n", info.ModuleID, info.DispatchID, info.Args)
				return nil
			},
		},
		{
			Name:  "exit",
			Usage: "Leave the console",
			Action: func(c *cli.Context) error {
				return errExit
			},
		},
	}
	return app
}

var errExit = errors.New("console: exit")
