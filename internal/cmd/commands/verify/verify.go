package verify

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
	flagToken   string
}

func (c *Command) Synopsis() string {
	return "Verify an id token and print the resolved user id"
}

func (c *Command) Help() string {
	return `Usage: litefire verify [options]

  Verifies an id token against the account-info endpoint. The token comes
  from -token, the id_token config value, or FIREBASE_ID_TOKEN.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("verify", flag.ExitOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to litefire config file")
	f.StringVar(&c.flagEnvFile, "env-file", "", "Env file to load before reading configuration")
	f.StringVar(&c.flagToken, "token", "", "Id token to verify")
	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, cfg, err := c.SetupClient(c.flagConfig, c.flagEnvFile)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	token := c.flagToken
	if token == "" {
		token = cfg.IDToken
	}
	if token == "" {
		c.UI.Error("no id token supplied (use -token, id_token in the config file, or FIREBASE_ID_TOKEN)")
		return 1
	}

	if err := client.VerifyToken(context.Background(), token); err != nil {
		c.UI.Error(fmt.Sprintf("token verification failed: %v", err))
		return 1
	}

	uid, err := client.UID()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output(fmt.Sprintf("token verified, uid: %s", uid))
	return 0
}
