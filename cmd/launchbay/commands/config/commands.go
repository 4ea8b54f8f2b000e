package config

import "github.com/urfave/cli/v3"

// Command is the top-level config command
var Command = &cli.Command{
	Name:  "config",
	Usage: "Manage the launchbay configuration file",
	Commands: []*cli.Command{
		InitCommand,
		ShowCommand,
		PathCommand,
	},
}
