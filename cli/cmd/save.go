package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/tram/transport"
)

// SaveCommand returns the `tram save` command. Without --id the call is an
// insert; with --id it is an update.
func SaveCommand() *cli.Command {
	return &cli.Command{
		Name:      "save",
		Usage:     "insert or update one entity from a JSON document",
		ArgsUsage: "<resource>",
		Flags: []cli.Flag{
			configFlag(),
			verboseFlag(),
			&cli.StringFlag{
				Name:     "data",
				Aliases:  []string{"d"},
				Usage:    "entity JSON, or @path to read from a file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "id",
				Usage: "entity identifier (update instead of insert)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: tram save <resource> --data <json>", exitFatal)
			}

			payload, err := readData(c.String("data"))
			if err != nil {
				return cli.Exit(err.Error(), exitFatal)
			}

			client, cleanup, err := buildClient(c)
			if err != nil {
				return err
			}
			defer cleanup()

			builder := transport.NewRequest(transport.OpSave, c.Args().Get(0)).Payload(payload)
			if id := c.String("id"); id != "" {
				builder = builder.ID(id)
			}
			req, err := builder.Build()
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

// readData resolves the --data flag: literal JSON, or @path file contents.
// The document is validated but kept verbatim; entity shape stays opaque.
func readData(data string) (json.RawMessage, error) {
	if strings.HasPrefix(data, "@") {
		contents, err := os.ReadFile(strings.TrimPrefix(data, "@"))
		if err != nil {
			return nil, err
		}
		data = string(contents)
	}
	raw := json.RawMessage(data)
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	return raw, nil
}
