package main

import (
	"context"
	"fmt"
	"os"

	colimacmd "github.com/launchbay/launchbay/cmd/launchbay/commands/colima"
	configcmd "github.com/launchbay/launchbay/cmd/launchbay/commands/config"
	containerscmd "github.com/launchbay/launchbay/cmd/launchbay/commands/containers"
	servicecmd "github.com/launchbay/launchbay/cmd/launchbay/commands/service"
	upcmd "github.com/launchbay/launchbay/cmd/launchbay/commands/up"
	vaultcmd "github.com/launchbay/launchbay/cmd/launchbay/commands/vault"
	"github.com/urfave/cli/v3"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:    "launchbay",
		Usage:   "A CLI for running local service stacks on Colima, Compose, and Vault",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("LAUNCHBAY_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "echo external commands as they run",
			},
		},
		Commands: []*cli.Command{
			colimacmd.Command,
			configcmd.Command,
			containerscmd.Command,
			servicecmd.Command,
			upcmd.Command,
			vaultcmd.Command,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
