package vault

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/vault"
)

// UnsealCommand unseals Vault using stored keys
var UnsealCommand = &cli.Command{
	Name:  "unseal",
	Usage: "Unseal Vault using stored keys",
	Description: `Unseals Vault after a restart using the key material stored during
initialization (vault.keys_file, default ~/.launchbay/vault-keys.json).

Example:
  launchbay vault unseal`,
	Action: runUnseal,
}

func runUnseal(ctx context.Context, cmd *cli.Command) error {
	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	if !vault.KeyMaterialExists(cfg.Vault.KeysFile) {
		return fmt.Errorf("no keys found at %s - Vault may not have been initialized by launchbay", cfg.Vault.KeysFile)
	}

	material, err := vault.LoadKeyMaterial(cfg.Vault.KeysFile)
	if err != nil {
		return fmt.Errorf("failed to load keys: %w", err)
	}

	client := vault.NewClient(cfg.Vault.Addr, "")

	switch state := client.State(ctx); state {
	case vault.StateDown:
		return fmt.Errorf("vault at %s is unreachable - run 'launchbay vault setup'", cfg.Vault.Addr)
	case vault.StateUnsealed, vault.StateStandby:
		fmt.Println("✓ Vault is already unsealed")
		return nil
	}

	fmt.Printf("Unsealing Vault at %s...\n", cfg.Vault.Addr)
	if err := client.UnsealWithKeys(ctx, material.ThresholdKeys()); err != nil {
		return fmt.Errorf("failed to unseal: %w", err)
	}

	fmt.Println("✓ Vault unsealed successfully")
	return nil
}
