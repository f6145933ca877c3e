// Package generate provides the "cordovagen generate" command, which is also
// the action of the bare cordovagen invocation.
package generate

import (
	"context"
	"fmt"

	"github.com/indaco/cordovagen/internal/commands/cmdutil"
	"github.com/indaco/cordovagen/internal/discovery"
	"github.com/indaco/cordovagen/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "generate" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate " + discovery.OutputFile + " from the project's plugin descriptors",
		UsageText: `cordovagen generate [options]

Reads every cordova-plugin-*.xml descriptor in src/ and lib/impl/cls/ and
writes src/html/cordova_plugins.js. Projects without src/html or without a
cordova.js marker are skipped without error.`,
		Action: Action,
	}
}

// Action runs the generator for the selected project.
func Action(ctx context.Context, cmd *cli.Command) error {
	root, err := cmdutil.ProjectRoot(cmd)
	if err != nil {
		return err
	}

	result, err := cmdutil.NewGenerator(cmd).Run(ctx, root)
	if err != nil {
		return err
	}

	out := cmdutil.Stdout(cmd)
	if result.Outcome.Skipped() {
		printer.FprintFaint(out, SkipMessage(result.Outcome))
		return nil
	}

	printer.FprintSuccess(out, fmt.Sprintf("%s was generated successfully.", result.OutputPath))
	return nil
}

// SkipMessage is the status line printed for a skipped outcome.
func SkipMessage(outcome discovery.Outcome) string {
	return fmt.Sprintf("Skipping %s generation: %s.", discovery.OutputFile, outcome.Reason())
}
