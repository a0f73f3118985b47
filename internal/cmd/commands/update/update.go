package update

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/litefire/litefire/internal/cmd/base"
	"github.com/litefire/litefire/internal/cmd/payload"
)

type Command struct {
	*base.Command

	flagConfig  string
	flagEnvFile string
	flagData    string
	flagFile    string
}

func (c *Command) Synopsis() string {
	return "Update an existing document"
}

func (c *Command) Help() string {
	return `Usage: litefire update [options] <collection/document-id>

  Patches a document from a JSON payload and prints the updated document.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("update", flag.ExitOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to litefire config file")
	f.StringVar(&c.flagEnvFile, "env-file", "", "Env file to load before reading configuration")
	f.StringVar(&c.flagData, "data", "", "Inline JSON document payload")
	f.StringVar(&c.flagFile, "file", "", "Path to a JSON payload file")
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

	data, err := payload.Read(afero.NewOsFs(), c.flagData, c.flagFile)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	client, _, err := c.SetupClient(c.flagConfig, c.flagEnvFile)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	doc, err := client.UpdateDocument(context.Background(), path, data)
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to update document: %v", err))
		return 1
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Output(string(out))
	return 0
}
