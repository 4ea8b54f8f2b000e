package service

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/compose"
	"github.com/launchbay/launchbay/internal/service"
)

// StopCommand stops a service's compose project
var StopCommand = &cli.Command{
	Name:      "stop",
	Usage:     "Stop a service",
	ArgsUsage: "<name>",
	Flags: []cli.Flag{
		common.SkipPreflightFlag(),
	},
	Action: runStop,
}

func runStop(ctx context.Context, cmd *cli.Command) error {
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
	if err := manager.Stop(ctx, name); err != nil {
		return fmt.Errorf("failed to stop service %s: %w", name, err)
	}

	fmt.Printf("✓ Service %s stopped\n", name)
	return nil
}
