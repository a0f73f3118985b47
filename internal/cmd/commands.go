package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/litefire/litefire/internal/cmd/base"
	"github.com/litefire/litefire/internal/cmd/commands/create"
	"github.com/litefire/litefire/internal/cmd/commands/get"
	"github.com/litefire/litefire/internal/cmd/commands/list"
	"github.com/litefire/litefire/internal/cmd/commands/remove"
	"github.com/litefire/litefire/internal/cmd/commands/update"
	"github.com/litefire/litefire/internal/cmd/commands/verify"
	"github.com/litefire/litefire/internal/cmd/commands/version"
)

// Commands maps subcommand names to their factories. Populated by
// initCommands before the CLI runs.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		Log: log,
		UI:  ui,
	}

	Commands = map[string]cli.CommandFactory{
		"create": func() (cli.Command, error) {
			return &create.Command{Command: baseCommand}, nil
		},
		"delete": func() (cli.Command, error) {
			return &remove.Command{Command: baseCommand}, nil
		},
		"get": func() (cli.Command, error) {
			return &get.Command{Command: baseCommand}, nil
		},
		"list": func() (cli.Command, error) {
			return &list.Command{Command: baseCommand}, nil
		},
		"update": func() (cli.Command, error) {
			return &update.Command{Command: baseCommand}, nil
		},
		"verify": func() (cli.Command, error) {
			return &verify.Command{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: baseCommand}, nil
		},
	}
}
