package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/justapithecus/tram/transport"
)

// GetCommand returns the `tram get` command: FindByID for one entity.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "fetch one entity by identifier",
		ArgsUsage: "<resource> <id>",
		Flags:     []cli.Flag{configFlag(), verboseFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: tram get <resource> <id>", exitFatal)
			}

			client, cleanup, err := buildClient(c)
			if err != nil {
				return err
			}
			defer cleanup()

			req, err := transport.NewRequest(transport.OpFindByID, c.Args().Get(0)).
				ID(c.Args().Get(1)).
				Build()
			if err != nil {
				return cli.Exit(err.Error(), exitFatal)
			}

			resp, err := client.Execute(c.Context, req)
			if err := exitForOutcome(resp, err); err != nil {
				return err
			}
			return printBody(c, resp.Body)
		},
	}
}
