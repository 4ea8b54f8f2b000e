package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/secrets"
	"github.com/launchbay/launchbay/internal/service"
	"github.com/launchbay/launchbay/internal/vault"
)

// CreateCommand scaffolds a new service directory from a template
var CreateCommand = &cli.Command{
	Name:  "create",
	Usage: "Scaffold a new service from a template",
	Description: `Creates a new service directory by rendering a template from the
templates directory. Template variables are filled from --set values,
then interactive prompts, then manifest defaults.

Templates that carry a vault-agent.hcl.tmpl get generated credentials
written to Vault and consul-template files emitted alongside.

Example:
  launchbay service create -t postgres -n billing-db --set PORT=5433`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "template",
			Aliases:  []string{"t"},
			Usage:    "template to render (a directory under templates_dir)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "name",
			Aliases:  []string{"n"},
			Usage:    "name for the new service",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:  "set",
			Usage: "set a template variable (KEY=value, repeatable)",
		},
		&cli.BoolFlag{
			Name:  "non-interactive",
			Usage: "never prompt; fail if a variable has no --set value or default",
		},
	},
	Action: runCreate,
}

func runCreate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	presets, err := parseSetValues(cmd.StringSlice("set"))
	if err != nil {
		return err
	}

	var prompter service.Prompter
	if cmd.Bool("non-interactive") {
		prompter = &service.StaticPrompter{Values: presets}
	} else {
		prompter = service.NewTerminalPrompter(presets)
	}

	creator := &service.Creator{
		TemplatesDir:     cfg.TemplatesDir,
		ServicesDir:      cfg.ServicesDir,
		Prompter:         prompter,
		GeneratePassword: secrets.GeneratePassword,
	}

	// Vault integration is optional: only templates carrying a
	// vault-agent.hcl.tmpl need it, and those fail with a hint when no
	// token is stored yet.
	if token, err := secrets.LoadRootToken(); err == nil && token != "" {
		creator.Secrets = vault.NewClient(cfg.Vault.Addr, token)
		creator.LoadToken = secrets.LoadRootToken
	}

	if err := creator.Create(ctx, cmd.String("template"), cmd.String("name")); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

func parseSetValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set value %q (expected KEY=value)", pair)
		}
		values[key] = value
	}
	return values, nil
}
