package main

import (
	"context"
	"os"

	"github.com/indaco/cordovagen/internal/cli"
	"github.com/indaco/cordovagen/internal/config"
	"github.com/indaco/cordovagen/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.FprintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// runCLI loads the configuration from the working directory and runs the
// root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}

	app := cli.New(cfg)
	return app.Run(context.Background(), args)
}
