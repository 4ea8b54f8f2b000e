package service

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/compose"
	"github.com/launchbay/launchbay/internal/service"
)

// ListCommand lists the services under the services directory
var ListCommand = &cli.Command{
	Name:   "list",
	Usage:  "List known services",
	Action: runList,
}

func runList(ctx context.Context, cmd *cli.Command) error {
	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	manager := service.NewManager(cfg.ServicesDir, compose.NewClient(common.NewRunner(cmd)))
	names, err := manager.List()
	if err != nil {
		return fmt.Errorf("failed to list services: %w", err)
	}

	if len(names) == 0 {
		fmt.Printf("No services found in %s\n", cfg.ServicesDir)
		fmt.Println("Run 'launchbay service create' to scaffold one from a template")
		return nil
	}

	fmt.Printf("Services (%d):\n", len(names))
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
