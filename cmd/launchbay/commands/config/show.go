package config

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/launchbay/launchbay/internal/config"
)

// ShowCommand displays the effective configuration
var ShowCommand = &cli.Command{
	Name:  "show",
	Usage: "Display the effective configuration",
	Description: `Prints the configuration after environment overrides and defaults
have been applied, so what you see is what the other commands use.`,
	Action: runShow,
}

func runShow(ctx context.Context, cmd *cli.Command) error {
	path, err := config.FindConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Printf("Configuration: %s\n", path)
	fmt.Println("---")
	fmt.Print(string(data))
	return nil
}
