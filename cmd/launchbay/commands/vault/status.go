package vault

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/vault"
)

// StatusCommand reports the Vault state
var StatusCommand = &cli.Command{
	Name:   "status",
	Usage:  "Show the Vault state",
	Action: runStatus,
}

func runStatus(ctx context.Context, cmd *cli.Command) error {
	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	client := vault.NewClient(cfg.Vault.Addr, "")
	state := client.State(ctx)

	fmt.Printf("Vault at %s: %s\n", cfg.Vault.Addr, state)

	switch state {
	case vault.StateDown:
		fmt.Println("Run 'launchbay vault setup' to start it")
	case vault.StateNotInitialized:
		fmt.Println("Run 'launchbay vault setup' to initialize it")
	case vault.StateSealed:
		fmt.Println("Run 'launchbay vault unseal' to unseal it")
	case vault.StateUnsealed, vault.StateStandby:
		fmt.Println("✓ Vault is ready")
	}

	return nil
}
