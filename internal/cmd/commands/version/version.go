package version

import (
	"github.com/litefire/litefire/internal/cmd/base"
	ver "github.com/litefire/litefire/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the litefire version"
}

func (c *Command) Help() string {
	return `Usage: litefire version

  Prints the version of this litefire build.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(ver.Version)
	return 0
}
