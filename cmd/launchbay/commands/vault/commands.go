package vault

import "github.com/urfave/cli/v3"

// Command is the top-level vault command
var Command = &cli.Command{
	Name:  "vault",
	Usage: "Manage the local Vault service",
	Description: `Vault management commands.

'launchbay vault setup' brings Vault from any state (down, uninitialized,
sealed) to initialized, unsealed, and ready, with a KV v2 engine mounted
at secret/. Unseal key material lives in the launchbay config directory
and the root token goes to the OS keyring.

Commands:
  launchbay vault setup  - Start, initialize, and unseal Vault
  launchbay vault status - Report the Vault state
  launchbay vault unseal - Unseal Vault after a restart
  launchbay vault token  - Manage the stored root token`,
	Commands: []*cli.Command{
		SetupCommand,
		StatusCommand,
		UnsealCommand,
		TokenCommand,
	},
}
