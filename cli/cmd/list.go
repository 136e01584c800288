package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/justapithecus/tram/transport"
)

// ListCommand returns the `tram list` command: FindAll, or Query when
// parameters are given.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "fetch all entities of a resource, optionally filtered",
		ArgsUsage: "<resource>",
		Flags:     []cli.Flag{configFlag(), verboseFlag(), paramsFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: tram list <resource> [--param k=v]", exitFatal)
			}

			params, err := parseParams(c.StringSlice("param"))
			if err != nil {
				return cli.Exit(err.Error(), exitFatal)
			}

			client, cleanup, err := buildClient(c)
			if err != nil {
				return err
			}
			defer cleanup()

			op := transport.OpFindAll
			if len(params) > 0 {
				op = transport.OpQuery
			}
			req, err := transport.NewRequest(op, c.Args().Get(0)).Params(params).Build()
			if err != nil {
				return cli.Exit(err.Error(), exitFatal)
			}

			resp, err := client.ExecuteForList(c.Context, req)
			if err := exitForOutcome(resp, err); err != nil {
				return err
			}
			return printBody(c, resp.Body)
		},
	}
}
