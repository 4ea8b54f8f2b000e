package service

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/compose"
	"github.com/launchbay/launchbay/internal/service"
)

// StartCommand starts a service's compose project
var StartCommand = &cli.Command{
	Name:      "start",
	Usage:     "Start a service",
	ArgsUsage: "<name>",
	Flags: []cli.Flag{
		common.SkipPreflightFlag(),
	},
	Action: runStart,
}

func runStart(ctx context.Context, cmd *cli.Command) error {
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
	if err := manager.Start(ctx, name); err != nil {
		return fmt.Errorf("failed to start service %s: %w", name, err)
	}

	fmt.Printf("✓ Service %s started\n", name)
	return nil
}
