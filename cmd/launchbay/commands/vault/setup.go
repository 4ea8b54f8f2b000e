package vault

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/compose"
	"github.com/launchbay/launchbay/internal/secrets"
	"github.com/launchbay/launchbay/internal/vault"
)

// SetupCommand brings Vault to a ready state
var SetupCommand = &cli.Command{
	Name:  "setup",
	Usage: "Start, initialize, and unseal Vault",
	Description: `Brings the Vault service to a ready state. The sequence is
idempotent: compose up, wait for the API, initialize if needed (keys
saved to the config directory with mode 0600), unseal if sealed, verify
the root token, and ensure KV v2 is mounted at secret/.

With --approle, an AppRole is created (and the approle auth method
enabled) so automation can authenticate without the root token.

Examples:
  launchbay vault setup
  launchbay vault setup --approle ci --policy default --save-to ci-creds.json`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "approle",
			Usage: "also create an AppRole with this name",
		},
		&cli.StringSliceFlag{
			Name:  "policy",
			Usage: "policy to attach to the AppRole (repeatable, default: default)",
		},
		&cli.StringFlag{
			Name:  "save-to",
			Usage: "write AppRole credentials to this file (mode 0600)",
		},
		common.SkipPreflightFlag(),
	},
	Action: runSetup,
}

func runSetup(ctx context.Context, cmd *cli.Command) error {
	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	runner := common.NewRunner(cmd)
	if err := common.Preflight(ctx, cmd, cfg, runner); err != nil {
		return err
	}

	client := vault.NewClient(cfg.Vault.Addr, "")
	composer := compose.NewClient(runner)
	opts := vault.SetupOptions{
		ServiceDir: cfg.VaultServiceDir(),
		KeysFile:   cfg.Vault.KeysFile,
		Shares:     cfg.Vault.Shares,
		Threshold:  cfg.Vault.Threshold,
		StoreToken: secrets.StoreRootToken,
	}

	if role := cmd.String("approle"); role != "" {
		policies := cmd.StringSlice("policy")
		if len(policies) == 0 {
			policies = []string{"default"}
		}
		creds, err := vault.SetupWithAppRole(ctx, client, composer, opts, role, policies, cmd.String("save-to"))
		if err != nil {
			return fmt.Errorf("vault setup failed: %w", err)
		}
		fmt.Printf("✓ AppRole %q created (role_id: %s)\n", role, creds.RoleID)
		return nil
	}

	material, err := vault.Setup(ctx, client, composer, opts)
	if err != nil {
		return fmt.Errorf("vault setup failed: %w", err)
	}

	vault.PrintSummary(cfg.Vault.Addr, cfg.Vault.KeysFile, material.RootToken)
	return nil
}
