package colima

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/colima"
)

// DeleteCommand removes the Colima VM instance
var DeleteCommand = &cli.Command{
	Name:  "delete",
	Usage: "Delete the Colima VM instance",
	Description: `Deletes the Colima VM and its disk. Container images and volumes
inside the VM are lost; service directories on the host are untouched.
Requires --force to proceed.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "confirm deleting the VM and its disk",
		},
	},
	Action: runDelete,
}

func runDelete(ctx context.Context, cmd *cli.Command) error {
	if !cmd.Bool("force") {
		return fmt.Errorf("deleting the VM discards its disk - re-run with --force to confirm")
	}

	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	manager := colima.NewManager(common.NewRunner(cmd), cfg.Colima)
	if err := manager.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete colima instance: %w", err)
	}

	fmt.Println("✓ Colima instance deleted")
	return nil
}
