package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/tram/transport"
)

// ExistsCommand returns the `tram exists` command: prints true or false.
func ExistsCommand() *cli.Command {
	return &cli.Command{
		Name:      "exists",
		Usage:     "check whether an entity exists",
		ArgsUsage: "<resource> <id>",
		Flags:     []cli.Flag{configFlag(), verboseFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: tram exists <resource> <id>", exitFatal)
			}

			client, cleanup, err := buildClient(c)
			if err != nil {
				return err
			}
			defer cleanup()

			req, err := transport.NewRequest(transport.OpExists, c.Args().Get(0)).
				ID(c.Args().Get(1)).
				Build()
			if err != nil {
				return cli.Exit(err.Error(), exitFatal)
			}

			resp, err := client.Execute(c.Context, req)
			if err := exitForOutcome(resp, err); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, string(resp.Body))
			return nil
		},
	}
}
