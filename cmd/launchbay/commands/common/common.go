// Package common holds helpers shared by the command groups: config
// loading and the preflight checks every container-touching command runs.
package common

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/internal/colima"
	"github.com/launchbay/launchbay/internal/compose"
	"github.com/launchbay/launchbay/internal/config"
	"github.com/launchbay/launchbay/internal/shell"
)

// LoadConfig resolves and loads the config file named by the global
// --config flag (or the default location)
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	path, err := config.FindConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// NewRunner builds the shell runner used by all managers.
// Verbose echoes every external command before running it.
func NewRunner(cmd *cli.Command) *shell.ExecRunner {
	runner := shell.NewRunner()
	runner.Echo = cmd.Bool("verbose")
	return runner
}

// Preflight makes sure the container runtime is usable: Colima is running
// and the shared external network exists. Commands accept --skip-preflight
// to bypass it when the environment is known-good.
func Preflight(ctx context.Context, cmd *cli.Command, cfg *config.Config, runner shell.Runner) error {
	if cmd.Bool("skip-preflight") {
		return nil
	}

	if err := colima.NewManager(runner, cfg.Colima).EnsureRunning(ctx); err != nil {
		return fmt.Errorf("preflight failed: %w", err)
	}

	if err := compose.NewClient(runner).EnsureNetwork(ctx, cfg.Network); err != nil {
		return fmt.Errorf("preflight failed: %w", err)
	}

	return nil
}

// SkipPreflightFlag is attached to every command that runs Preflight
func SkipPreflightFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "skip-preflight",
		Usage: "Skip the Colima and network preflight checks",
	}
}
