package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/tram/transport"
)

// VersionCommand returns the `tram version` command.
func VersionCommand(commit string) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print version information",
		Action: func(c *cli.Context) error {
			fmt.Fprintf(c.App.Writer, "tram %s (commit: %s)\n", transport.Version, commit)
			return nil
		},
	}
}
