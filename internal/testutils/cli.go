// Package testutils provides fixtures shared by the command tests.
package testutils

import (
	"bytes"
	"context"
	"testing"

	"github.com/indaco/cordovagen/internal/commands/cmdutil"
	"github.com/urfave/cli/v3"
)

// BuildCLIForTests returns a root command with the global flags and the given
// subcommands. Standard output is captured in the returned buffer.
func BuildCLIForTests(commands []*cli.Command) (*cli.Command, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return &cli.Command{
		Name:      "cordovagen",
		Flags:     cmdutil.GlobalFlags(".", false, true),
		Commands:  commands,
		Writer:    out,
		ErrWriter: new(bytes.Buffer),
	}, out
}

// RunCLITest runs the CLI with args against project and fails the test on error.
func RunCLITest(t *testing.T, appCli *cli.Command, args []string, project string) {
	t.Helper()
	if err := RunCLITestAllowError(t, appCli, args, project); err != nil {
		t.Fatalf("CLI run failed: %v", err)
	}
}

// RunCLITestAllowError runs the CLI with args against project and returns its error.
// args[0] is the program name; --project is inserted right after it.
func RunCLITestAllowError(t *testing.T, appCli *cli.Command, args []string, project string) error {
	t.Helper()
	full := append([]string{args[0], "--" + cmdutil.FlagProject, project}, args[1:]...)
	return appCli.Run(context.Background(), full)
}
