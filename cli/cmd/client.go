package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/tram/config"
	"github.com/justapithecus/tram/log"
	"github.com/justapithecus/tram/transport"
)

// buildClient loads the config file and constructs the selected adapter.
// The returned cleanup closes the adapter; callers defer it.
func buildClient(c *cli.Context) (transport.Client, func(), error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, cli.Exit(err.Error(), exitFatal)
	}

	var logger *log.Logger
	if c.Bool("verbose") {
		logger = log.NewLogger("tram." + cfg.Transport)
	}

	client, err := cfg.Build(logger)
	if err != nil {
		return nil, nil, cli.Exit(err.Error(), exitFatal)
	}
	return client, func() { _ = client.Close() }, nil
}

// parseParams converts repeated key=value flags into a parameter map.
func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}

// printBody pretty-prints a JSON response body to stdout.
func printBody(c *cli.Context, body json.RawMessage) error {
	if len(body) == 0 {
		return nil
	}
	var buf map[string]any
	indented := body
	if err := json.Unmarshal(body, &buf); err == nil {
		if out, err := json.MarshalIndent(buf, "", "  "); err == nil {
			indented = out
		}
	} else {
		var list []any
		if err := json.Unmarshal(body, &list); err == nil {
			if out, err := json.MarshalIndent(list, "", "  "); err == nil {
				indented = out
			}
		}
	}
	fmt.Fprintln(c.App.Writer, string(indented))
	return nil
}

// exitForOutcome converts a call outcome into the documented exit codes.
// A fatal *transport.Error exits 1; a protocol failure exits 2.
func exitForOutcome(resp *transport.Response, err error) error {
	if err != nil {
		var terr *transport.Error
		if errors.As(err, &terr) {
			return cli.Exit(terr.Error(), exitFatal)
		}
		return cli.Exit(err.Error(), exitFatal)
	}
	if !resp.Success {
		return cli.Exit(fmt.Sprintf("remote failure (status %d): %s", resp.StatusCode, resp.ErrorMessage), exitProtocol)
	}
	return nil
}
