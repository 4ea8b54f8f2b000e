// Package up implements the top-level up command: the fast path that
// brings the shared runtime (Colima VM + external network) to a usable
// state without touching any individual service.
package up

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/colima"
	"github.com/launchbay/launchbay/internal/compose"
)

// Command brings the shared runtime up
var Command = &cli.Command{
	Name:  "up",
	Usage: "Start the Colima VM and ensure the shared network exists",
	Description: `Runs the same checks every service command runs before acting:
starts the Colima VM if it is down and creates the shared external
docker network if it is missing. Safe to run repeatedly.

Example:
  launchbay up`,
	Action: runUp,
}

func runUp(ctx context.Context, cmd *cli.Command) error {
	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	runner := common.NewRunner(cmd)

	if err := colima.NewManager(runner, cfg.Colima).EnsureRunning(ctx); err != nil {
		return fmt.Errorf("failed to start colima: %w", err)
	}
	fmt.Println("✓ Colima is running")

	if err := compose.NewClient(runner).EnsureNetwork(ctx, cfg.Network); err != nil {
		return fmt.Errorf("failed to ensure network: %w", err)
	}
	fmt.Printf("✓ Network %q is available\n", cfg.Network)

	fmt.Println("\nRuntime is ready. Start services with 'launchbay service start <name>'")
	return nil
}
