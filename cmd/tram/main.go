// Package main provides the tram CLI entrypoint.
//
// tram executes single CRUD-style operations against a remote data service
// over whichever transport the config file selects: REST, gRPC, or the
// event bus. The invoking shell never learns which protocol ran the call.
//
// Usage:
//
//	tram <command> [options] <args>
//
// Exit codes:
//   - 0: success
//   - 1: fatal transport error (connection, serialization, unsupported)
//   - 2: protocol failure reported by the remote end
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/tram/cli/cmd"
	"github.com/justapithecus/tram/transport"
)

// commit is set via ldflags at build time.
var commit = "unknown"

func main() {
	app := &cli.App{
		Name:           "tram",
		Usage:          "protocol-agnostic remote data CLI",
		Version:        fmt.Sprintf("%s (commit: %s)", transport.Version, commit),
		ExitErrHandler: exitErrHandler,
		Commands: []*cli.Command{
			cmd.GetCommand(),
			cmd.ListCommand(),
			cmd.SaveCommand(),
			cmd.DeleteCommand(),
			cmd.ExistsCommand(),
			cmd.CountCommand(),
			cmd.VersionCommand(commit),
		},
	}

	if err := app.Run(os.Args); err != nil {
		// ExitErrHandler already handled the exit for cli.ExitCoder errors.
		// This branch handles unexpected errors that weren't wrapped.
		os.Exit(1)
	}
}

// exitErrHandler preserves exit codes from cli.Exit() so protocol failures
// and fatal transport errors stay distinguishable to the invoking shell.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}

	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()

		// cli.Exit("", N).Error() returns "exit status N"; skip those.
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
