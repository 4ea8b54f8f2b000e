package config

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/launchbay/launchbay/internal/config"
)

// PathCommand prints the config file path in use
var PathCommand = &cli.Command{
	Name:   "path",
	Usage:  "Print the path of the config file in use",
	Action: runPath,
}

func runPath(ctx context.Context, cmd *cli.Command) error {
	path, err := config.FindConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
