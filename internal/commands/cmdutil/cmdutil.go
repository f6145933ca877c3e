// Package cmdutil holds the helpers shared by the cordovagen subcommands.
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/indaco/cordovagen/internal/core"
	"github.com/indaco/cordovagen/internal/generator"
	"github.com/indaco/cordovagen/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Global flag names defined on the root command.
const (
	FlagProject = "project"
	FlagVerbose = "verbose"
	FlagNoColor = "no-color"
)

// GlobalFlags returns the root command flags seeded with the given defaults.
func GlobalFlags(project string, verbose, noColor bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagProject,
			Aliases: []string{"p"},
			Usage:   "Project root directory",
			Value:   project,
		},
		&cli.BoolFlag{
			Name:    FlagVerbose,
			Aliases: []string{"v"},
			Usage:   "Log discovery and parsing details to stderr",
			Value:   verbose,
		},
		&cli.BoolFlag{
			Name:  FlagNoColor,
			Usage: "Disable colored output",
			Value: noColor,
		},
	}
}

// ProjectRoot returns the absolute project root selected by --project.
func ProjectRoot(cmd *cli.Command) (string, error) {
	project := cmd.String(FlagProject)
	if project == "" {
		project = "."
	}
	root, err := filepath.Abs(project)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root %q: %w", project, err)
	}
	return root, nil
}

// Stdout returns the writer status lines are printed to.
func Stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// Logger returns the diagnostic logger honoring --verbose.
func Logger(cmd *cli.Command) *logrus.Logger {
	return logging.New(cmd.Root().ErrWriter, cmd.Bool(FlagVerbose))
}

// NewGenerator returns a Generator working on the real filesystem.
func NewGenerator(cmd *cli.Command) *generator.Generator {
	return generator.New(core.NewOSFileSystem(), Logger(cmd))
}

// RelPath renders path relative to root when possible.
func RelPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
