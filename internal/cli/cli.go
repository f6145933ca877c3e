// Package cli assembles the cordovagen root command.
package cli

import (
	"context"
	"fmt"

	"github.com/indaco/cordovagen/internal/commands/check"
	"github.com/indaco/cordovagen/internal/commands/cmdutil"
	"github.com/indaco/cordovagen/internal/commands/generate"
	"github.com/indaco/cordovagen/internal/commands/list"
	"github.com/indaco/cordovagen/internal/config"
	"github.com/indaco/cordovagen/internal/printer"
	"github.com/indaco/cordovagen/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command. Flag defaults come from cfg;
// running it without a subcommand generates the bootstrap module.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "cordovagen",
		Version: fmt.Sprintf("v%s", version.GetVersion()),
		Usage:   "Generate the Cordova plugin bootstrap module (cordova_plugins.js)",
		Flags:   cmdutil.GlobalFlags(cfg.Project, cfg.Verbose, cfg.NoColor),
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.ConfigureColor(cmd.Bool(cmdutil.FlagNoColor))
			return ctx, nil
		},
		Action: generate.Action,
		Commands: []*urfavecli.Command{
			generate.Run(),
			list.Run(),
			check.Run(),
		},
	}
}
