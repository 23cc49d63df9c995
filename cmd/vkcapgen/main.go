package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/vkcapgen/internal/app"
	"github.com/specialistvlad/vkcapgen/internal/cli"
	"github.com/specialistvlad/vkcapgen/internal/manifest"
)

// main is the entrypoint for the vkcapgen application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		exitErr := cli.AsExitError(err)
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Help goes to outW; logs go to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, command, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}

	switch command {
	case cli.CommandGenerate:
		return app.NewApp(errW, cfg, manifest.NewLoader()).Run(ctx)
	case cli.CommandSnapshot:
		return app.NewApp(errW, cfg, nil).Snapshot(ctx)
	default:
		return nil
	}
}
