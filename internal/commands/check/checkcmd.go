// Package check provides the "cordovagen check" command, a dry run of
// generate that validates every descriptor and reports what would be written.
package check

import (
	"context"
	"fmt"

	"github.com/indaco/cordovagen/internal/commands/cmdutil"
	"github.com/indaco/cordovagen/internal/commands/generate"
	"github.com/indaco/cordovagen/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "check" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate plugin descriptors without writing the bootstrap module",
		UsageText: `cordovagen check [options]

Exits with an error when a descriptor cannot be read or parsed.`,
		Action: runCheckCmd,
	}
}

func runCheckCmd(ctx context.Context, cmd *cli.Command) error {
	root, err := cmdutil.ProjectRoot(cmd)
	if err != nil {
		return err
	}

	result, err := cmdutil.NewGenerator(cmd).Collect(ctx, root)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	out := cmdutil.Stdout(cmd)
	if result.Outcome.Skipped() {
		printer.FprintFaint(out, generate.SkipMessage(result.Outcome))
		return nil
	}

	for _, d := range result.Descriptors {
		printer.FprintInfo(out, DescriptorLine(cmdutil.RelPath(root, d.Path), d.ID, d.Version, len(d.Modules)))
	}
	if len(result.Descriptors) == 0 {
		printer.FprintWarning(out, NoDescriptorsMessage)
	}

	printer.FprintSuccess(out, Summary(len(result.Descriptors), len(result.Aggregate.Exports),
		cmdutil.RelPath(root, result.OutputPath)))
	return nil
}

// NoDescriptorsMessage is printed when an applicable project has no descriptors.
const NoDescriptorsMessage = "No plugin descriptors found; the generated module would have no exports."

// DescriptorLine describes one validated descriptor.
func DescriptorLine(path, id, version string, modules int) string {
	return fmt.Sprintf("%s: %s %s, %d module(s)", path, id, version, modules)
}

// Summary is the status line printed for an applicable project.
func Summary(descriptors, modules int, output string) string {
	return fmt.Sprintf("%d plugin descriptor(s), %d module(s) OK; would write %s.", descriptors, modules, output)
}
