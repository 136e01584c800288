package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/tram/transport"
)

// CountCommand returns the `tram count` command: prints the entity count.
func CountCommand() *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "count entities of a resource",
		ArgsUsage: "<resource>",
		Flags:     []cli.Flag{configFlag(), verboseFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: tram count <resource>", exitFatal)
			}

			client, cleanup, err := buildClient(c)
			if err != nil {
				return err
			}
			defer cleanup()

			req, err := transport.NewRequest(transport.OpCount, c.Args().Get(0)).Build()
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
