// Package cmd implements the tram CLI commands.
//
// Every command loads the config file, builds the selected transport
// adapter, executes one operation, and prints the JSON result. Exit codes:
//   - 0: success
//   - 1: fatal transport error (connection, serialization, unsupported)
//   - 2: protocol failure reported by the remote end
package cmd

import (
	"github.com/urfave/cli/v2"
)

// Shared exit codes.
const (
	exitFatal    = 1
	exitProtocol = 2
)

// configFlag is the global config file flag, shared by every command.
func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to tram.yaml",
		Value:   "tram.yaml",
	}
}

// verboseFlag enables adapter debug logging.
func verboseFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "enable adapter debug logging",
	}
}

// paramsFlag carries query/filter parameters as repeated key=value pairs.
func paramsFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    "param",
		Aliases: []string{"p"},
		Usage:   "query parameter as key=value (repeatable)",
	}
}
