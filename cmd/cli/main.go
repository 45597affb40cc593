package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/tdbload/internal/app"
	"github.com/vk/tdbload/internal/cli"
	"github.com/vk/tdbload/internal/hcl_adapter"
	"github.com/vk/tdbload/internal/localexecutor"
	"github.com/vk/tdbload/internal/model"
)

// main is the entrypoint for the tdbload controller.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	controller := app.NewApp(errW, appConfig, hcl_adapter.NewLoader(), localexecutor.New(outW, errW))
	return controller.Run(context.Background())
}

// report prints err for the operator and returns the process exit code.
func report(w io.Writer, err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(w, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintln(w, err)
	return model.ExitCode(err)
}
