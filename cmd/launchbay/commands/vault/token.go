package vault

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/secrets"
	"github.com/launchbay/launchbay/internal/vault"
)

// TokenCommand manages the stored root token
var TokenCommand = &cli.Command{
	Name:  "token",
	Usage: "Manage the stored Vault root token",
	Description: `Prints the root token stored during 'launchbay vault setup', after
verifying it is still valid against the running Vault.

With --clear, the stored token is removed from the keyring instead.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "clear",
			Usage: "remove the stored token instead of printing it",
		},
	},
	Action: runToken,
}

func runToken(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("clear") {
		if err := secrets.ClearRootToken(); err != nil {
			return fmt.Errorf("failed to clear token: %w", err)
		}
		fmt.Println("✓ Stored root token cleared")
		return nil
	}

	token, err := secrets.LoadRootToken()
	if err != nil {
		return fmt.Errorf("no stored root token - run 'launchbay vault setup' first: %w", err)
	}

	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	client := vault.NewClient(cfg.Vault.Addr, token)
	if err := client.TokenLookupSelf(ctx); err != nil {
		return fmt.Errorf("stored token is not valid against %s: %w", cfg.Vault.Addr, err)
	}

	fmt.Println(token)
	return nil
}
