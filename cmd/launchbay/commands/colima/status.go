package colima

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/colima"
)

// StatusCommand reports the state of the Colima VM
var StatusCommand = &cli.Command{
	Name:   "status",
	Usage:  "Show the Colima VM state",
	Action: runStatus,
}

func runStatus(ctx context.Context, cmd *cli.Command) error {
	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	manager := colima.NewManager(common.NewRunner(cmd), cfg.Colima)
	status, err := manager.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get colima status: %w", err)
	}

	if !status.Running {
		fmt.Printf("Colima profile %q is not running (state: %s)\n", status.Name, status.State)
		fmt.Println("Run 'launchbay colima start' to start it")
		return nil
	}

	fmt.Printf("✓ Colima profile %q is running\n", status.Name)
	if status.Runtime != "" {
		fmt.Printf("  Runtime: %s\n", status.Runtime)
	}
	if status.Arch != "" {
		fmt.Printf("  Arch:    %s\n", status.Arch)
	}
	if status.CPUs > 0 {
		fmt.Printf("  CPUs:    %d\n", status.CPUs)
	}
	if status.Memory > 0 {
		fmt.Printf("  Memory:  %d GiB\n", status.Memory/(1<<30))
	}
	return nil
}
