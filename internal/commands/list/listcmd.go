package list

import (
	"context"
	"fmt"

	"github.com/indaco/cordovagen/internal/commands/cmdutil"
	"github.com/urfave/cli/v3"
)

// Run returns the "list" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List discovered plugin descriptors and their modules",
		UsageText: `cordovagen list [options]

Runs the same checks and parsing as generate and prints what was found,
without writing anything.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, table",
				Value:   "text",
			},
		},
		Action: runListCmd,
	}
}

// runListCmd executes the list command.
func runListCmd(ctx context.Context, cmd *cli.Command) error {
	root, err := cmdutil.ProjectRoot(cmd)
	if err != nil {
		return err
	}

	result, err := cmdutil.NewGenerator(cmd).Collect(ctx, root)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	formatter := NewFormatter(ParseOutputFormat(cmd.String("format")), root)
	out, err := formatter.Format(result)
	if err != nil {
		return err
	}

	fmt.Fprint(cmdutil.Stdout(cmd), out)
	return nil
}
