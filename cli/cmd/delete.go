package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/tram/transport"
)

// DeleteCommand returns the `tram delete` command. Deleting an absent
// entity succeeds: already-absent is equivalent to deleted.
func DeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "delete one entity by identifier",
		ArgsUsage: "<resource> <id>",
		Flags:     []cli.Flag{configFlag(), verboseFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: tram delete <resource> <id>", exitFatal)
			}

			client, cleanup, err := buildClient(c)
			if err != nil {
				return err
			}
			defer cleanup()

			req, err := transport.NewRequest(transport.OpDelete, c.Args().Get(0)).
				ID(c.Args().Get(1)).
				Build()
			if err != nil {
				return cli.Exit(err.Error(), exitFatal)
			}

			resp, err := client.Execute(c.Context, req)
			if err := exitForOutcome(resp, err); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "deleted")
			return nil
		},
	}
}
