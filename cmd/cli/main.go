package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/projforge/internal/app"
	"github.com/specialistvlad/projforge/internal/cli"
	"github.com/specialistvlad/projforge/internal/hcl"
	"github.com/spf13/afero"
)

// main is the entrypoint for the projforge application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, afero.NewOsFs(), os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, fsys afero.Fs, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := hcl.NewLoader(fsys)
	projforgeApp := app.NewApp(outW, errW, inv.Config, fsys, loader)
	ctx := context.Background()

	switch inv.Command {
	case cli.CommandTasks:
		return projforgeApp.ListTasks(ctx, inv.Format)
	case cli.CommandPlan:
		return projforgeApp.Plan(ctx, inv.Task)
	default:
		return projforgeApp.Run(ctx)
	}
}
