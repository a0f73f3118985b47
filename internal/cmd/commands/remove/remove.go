package remove

import (
	"context"
	"flag"
	"fmt"

	"github.com/litefire/litefire/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagConfig  string
	flagEnvFile string
}

func (c *Command) Synopsis() string {
	return "Delete a document"
}

func (c *Command) Help() string {
	return `Usage: litefire delete [options] <collection/document-id>

  Deletes a single document.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ExitOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to litefire config file")
	f.StringVar(&c.flagEnvFile, "env-file", "", "Env file to load before reading configuration")
	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if len(flags.Args()) != 1 {
		c.UI.Error("exactly one document path argument is required")
		return 1
	}
	path := flags.Args()[0]

	client, _, err := c.SetupClient(c.flagConfig, c.flagEnvFile)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := client.DeleteDocument(context.Background(), path); err != nil {
		c.UI.Error(fmt.Sprintf("failed to delete document: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("deleted %s", path))
	return 0
}
