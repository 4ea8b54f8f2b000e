package service

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/compose"
	"github.com/launchbay/launchbay/internal/service"
)

// StatusCommand shows the container status of a service
var StatusCommand = &cli.Command{
	Name:      "status",
	Usage:     "Show the container status of a service",
	ArgsUsage: "<name>",
	Flags: []cli.Flag{
		common.SkipPreflightFlag(),
	},
	Action: runStatus,
}

func runStatus(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("service name is required (see 'launchbay service list')")
	}

	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	runner := common.NewRunner(cmd)
	if err := common.Preflight(ctx, cmd, cfg, runner); err != nil {
		return err
	}

	manager := service.NewManager(cfg.ServicesDir, compose.NewClient(runner))
	output, err := manager.Status(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get status of service %s: %w", name, err)
	}

	fmt.Print(output)
	return nil
}
