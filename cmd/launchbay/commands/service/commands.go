package service

import "github.com/urfave/cli/v3"

// Command is the top-level service command
var Command = &cli.Command{
	Name:  "service",
	Usage: "Manage compose-based services",
	Description: `Service lifecycle commands.

Each service is a Docker Compose project directory under the configured
services directory. Services join the shared external network so they
can reach each other by name.

Commands:
  launchbay service list            - List known services
  launchbay service start <name>    - Start a service
  launchbay service stop <name>     - Stop a service
  launchbay service status <name>   - Show service container status
  launchbay service logs <name>     - Show recent container logs
  launchbay service create          - Scaffold a new service from a template`,
	Commands: []*cli.Command{
		ListCommand,
		StartCommand,
		StopCommand,
		StatusCommand,
		LogsCommand,
		CreateCommand,
	},
}
