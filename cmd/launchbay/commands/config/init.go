package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/internal/config"
)

//go:embed template.yaml
var configTemplate string

// InitCommand creates a new config file
var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Create a new configuration file",
	Description: `Writes a starter config file to the launchbay config directory
(~/.launchbay/config.yaml, or $LAUNCHBAY_CONFIG_DIR). Edit it to match
your setup before running other commands.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "overwrite an existing config file",
		},
	},
	Action: runInit,
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, config.DefaultConfigName)
	if _, err := os.Stat(configPath); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the config file (network, services_dir, templates_dir)")
	fmt.Println("  2. Run: launchbay up")
	return nil
}
