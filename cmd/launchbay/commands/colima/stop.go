package colima

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/colima"
)

// StopCommand stops the Colima VM
var StopCommand = &cli.Command{
	Name:  "stop",
	Usage: "Stop the Colima VM",
	Description: `Stops the Colima VM. All containers running on it stop with it;
service state on disk is preserved and services come back with
'launchbay service start'.`,
	Action: runStop,
}

func runStop(ctx context.Context, cmd *cli.Command) error {
	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	manager := colima.NewManager(common.NewRunner(cmd), cfg.Colima)
	status, err := manager.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to check colima status: %w", err)
	}
	if !status.Running {
		fmt.Println("Colima is already stopped")
		return nil
	}

	if err := manager.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop colima: %w", err)
	}

	fmt.Println("✓ Colima stopped")
	return nil
}
