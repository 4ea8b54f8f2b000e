package colima

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/colima"
)

// StartCommand starts the Colima VM
var StartCommand = &cli.Command{
	Name:  "start",
	Usage: "Start the Colima VM",
	Description: `Starts the Colima VM with the resources from the config file
(colima.cpus, colima.memory, colima.disk) and waits until the Docker
runtime is ready. Starting an already-running VM is a no-op.`,
	Action: runStart,
}

func runStart(ctx context.Context, cmd *cli.Command) error {
	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	manager := colima.NewManager(common.NewRunner(cmd), cfg.Colima)
	if err := manager.EnsureRunning(ctx); err != nil {
		return fmt.Errorf("failed to start colima: %w", err)
	}

	fmt.Println("✓ Colima is running")
	return nil
}
