package get

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
	return "Fetch a single document by path"
}

func (c *Command) Help() string {
	return `Usage: litefire get [options] <collection/document-id>

  Fetches one document and prints it as JSON.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get", flag.ExitOnError))
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
		c.UI.Error("exactly one document path argument is required")
		return 1
	}
	path := flags.Args()[0]

	client, _, err := c.SetupClient(c.flagConfig, c.flagEnvFile)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	var doc *firestore.Doc
	err = base.Retry(func() error {
		var opErr error
		doc, opErr = client.GetDocument(ctx, path)
		return opErr
	}, c.flagRetries)
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to fetch document: %v", err))
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
