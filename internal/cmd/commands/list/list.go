package list

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/litefire/litefire/internal/cmd/base"
	"github.com/litefire/litefire/pkg/firestore"
)

type Command struct {
	*base.Command

	flagConfig  string
	flagEnvFile string
	flagRetries int
}

func (c *Command) Synopsis() string {
	return "List every document of a collection"
}

func (c *Command) Help() string {
	return `Usage: litefire list [options] <collection>

  Fetches all documents of a collection and prints them as JSON. An empty
  collection prints an empty list.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ExitOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to litefire config file")
	f.StringVar(&c.flagEnvFile, "env-file", "", "Env file to load before reading configuration")
	f.IntVar(&c.flagRetries, "retries", 0, "Retry server-side failures up to this many times")
	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if len(flags.Args()) != 1 {
		c.UI.Error("exactly one collection argument is required")
		return 1
	}
	collection := flags.Args()[0]

	client, _, err := c.SetupClient(c.flagConfig, c.flagEnvFile)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	var docs []firestore.Doc
	err = base.Retry(func() error {
		var opErr error
		docs, opErr = client.GetCollection(ctx, collection)
		return opErr
	}, c.flagRetries)
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to list collection: %v", err))
		return 1
	}

	out, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Output(string(out))
	return 0
}
