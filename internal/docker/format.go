package docker

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
)

// FormatPorts renders container port summaries the way `docker ps` does,
// e.g. "0.0.0.0:3306->3306/tcp, 33060/tcp"
func FormatPorts(ports []container.Port) string {
	if len(ports) == 0 {
		return ""
	}

	parts := make([]string, 0, len(ports))
	for _, p := range ports {
		proto := nat.Port(fmt.Sprintf("%d/%s", p.PrivatePort, p.Type))
		if p.PublicPort == 0 {
			parts = append(parts, string(proto))
			continue
		}
		ip := p.IP
		if ip == "" {
			ip = "0.0.0.0"
		}
		parts = append(parts, fmt.Sprintf("%s:%d->%s", ip, p.PublicPort, proto))
	}

	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

// WriteTable renders container rows as an aligned text table
func WriteTable(w io.Writer, containers []ContainerInfo) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "CONTAINER ID\tNAME\tIMAGE\tSTATUS\tCREATED\tPORTS")
	for _, c := range containers {
		ports := c.Ports
		if ports == "" {
			ports = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Image, c.Status,
			c.Created.Local().Format(time.DateTime), ports)
	}

	return tw.Flush()
}
