package colima

import "github.com/urfave/cli/v3"

// Command is the top-level colima command
var Command = &cli.Command{
	Name:  "colima",
	Usage: "Manage the Colima container runtime VM",
	Description: `Colima VM management commands.

The Colima VM provides the Docker runtime that every launchbay service
runs on. Services require it to be up; 'launchbay colima start' (or any
service command, via its preflight check) brings it up.

Commands:
  launchbay colima status - Report the VM state
  launchbay colima start  - Start the VM with configured resources
  launchbay colima stop   - Stop the VM
  launchbay colima delete - Delete the VM and its disk`,
	Commands: []*cli.Command{
		StatusCommand,
		StartCommand,
		StopCommand,
		DeleteCommand,
	},
}
