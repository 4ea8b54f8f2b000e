// Package containers implements the top-level containers command, a
// docker-ps view over everything running on the Colima VM.
package containers

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/cmd/launchbay/commands/common"
	"github.com/launchbay/launchbay/internal/docker"
)

// Command lists containers across all services
var Command = &cli.Command{
	Name:  "containers",
	Usage: "List containers running on the Colima VM",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "all",
			Aliases: []string{"a"},
			Usage:   "include stopped containers",
		},
		common.SkipPreflightFlag(),
	},
	Action: runContainers,
}

func runContainers(ctx context.Context, cmd *cli.Command) error {
	cfg, err := common.LoadConfig(cmd)
	if err != nil {
		return err
	}

	if err := common.Preflight(ctx, cmd, cfg, common.NewRunner(cmd)); err != nil {
		return err
	}

	client, err := docker.NewClient()
	if err != nil {
		return fmt.Errorf("failed to create docker client: %w", err)
	}
	defer client.Close()

	if err := client.Ping(ctx); err != nil {
		return err
	}

	containers, err := client.ListContainers(ctx, cmd.Bool("all"))
	if err != nil {
		return fmt.Errorf("failed to list containers: %w", err)
	}

	if len(containers) == 0 {
		fmt.Println("No containers found")
		return nil
	}

	return docker.WriteTable(os.Stdout, containers)
}
