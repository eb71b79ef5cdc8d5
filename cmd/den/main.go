// Package main is the entry point for the den package manager.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/cmd/den/commands"
	"go.trai.ch/den/internal/adapters/config"
	"go.trai.ch/den/internal/app"
	_ "go.trai.ch/den/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The configuration node resolves before cobra parses flags, so an
	// explicit config path travels through the environment variable the
	// loader already consults.
	if path := configPathFromArgs(os.Args[1:]); path != "" {
		_ = os.Setenv(config.EnvConfigPath, path)
	}

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.Telemetry.Close()
	}()

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Config)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}

// configPathFromArgs extracts the value of the --config/-c flag without a
// full flag parse.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		}
	}
	return ""
}
