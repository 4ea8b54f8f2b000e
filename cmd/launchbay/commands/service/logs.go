package service

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/compose"
	"github.com/launchbay/launchbay/internal/service"
)

// LogsCommand prints recent container logs for a service
var LogsCommand = &cli.Command{
	Name:      "logs",
	Usage:     "Show recent container logs for a service",
	ArgsUsage: "<name>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "tail",
			Aliases: []string{"n"},
			Usage:   "number of trailing log lines per container",
			Value:   100,
		},
	},
	Action: runLogs,
}

func runLogs(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("service name is required (see 'launchbay service list')")
	}

	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	manager := service.NewManager(cfg.ServicesDir, compose.NewClient(common.NewRunner(cmd)))
	output, err := manager.Logs(ctx, name, int(cmd.Int("tail")))
	if err != nil {
		return fmt.Errorf("failed to get logs for service %s: %w", name, err)
	}

	fmt.Print(output)
	return nil
}
