// Package base carries the pieces every litefire command shares: the logger
// and UI handles, flag-set help rendering, and client bootstrap.
package base

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/mitchellh/cli"

	"github.com/litefire/litefire/internal/config"
	"github.com/litefire/litefire/pkg/firestore"
)

// Command is embedded by every CLI command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// SetupClient loads env + config and constructs the firestore client. Every
// data command funnels through here so flag names and failure messages stay
// uniform.
func (c *Command) SetupClient(configPath, envFile string) (*firestore.Client, *config.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, nil, fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
	} else {
		// Best effort: a local .env is picked up when present.
		_ = godotenv.Load()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	client, err := firestore.NewClient(firestore.Config{
		APIKey:    cfg.APIKey,
		ProjectID: cfg.ProjectID,
		IDToken:   cfg.IDToken,
		Timeout:   cfg.TimeoutDuration(),
		Logger:    c.Log,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// FlagSet wraps flag.FlagSet so commands can append rendered flag help to
// their Help() output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps a flag set, silencing its default usage output in favor
// of the command help text.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.Usage = func() {}
	return &FlagSet{FlagSet: f}
}

// Help renders the flag block for inclusion in command help.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "  -%s\n      %s", fl.Name, fl.Usage)
		if fl.DefValue != "" && fl.DefValue != "false" && fl.DefValue != "0" {
			fmt.Fprintf(&b, " (default: %s)", fl.DefValue)
		}
		b.WriteString("\n")
	})
	return b.String()
}
