package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// GOMAXPROCS must be settled before workers are sized. Only the verbose
	// flag matters here; the command parses the rest.
	logger := newLogger(commonFlags{verbose: hasVerbose(os.Args)}, os.Stderr)
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))
	_ = logger.Sync()

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// hasVerbose scans raw arguments for -v or --verbose.
func hasVerbose(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}

// commands lists the subcommands accepted by runMain.
var commands = []string{"report", "convert", "inspect", "version", "help", "completion"}

func isCommand(s string) bool {
	return slices.Contains(commands, s)
}

// runMain dispatches args[1] and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "docxgen %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	case "completion":
		if err := runCompletion(rest, env); err != nil {
			fmt.Fprintln(env.Stderr, formatError(err))
			return exitCodeFor(err)
		}
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var err error
	switch cmd {
	case "report":
		err = runReport(ctx, rest, env)
	case "convert":
		err = runConvert(ctx, rest, env)
	case "inspect":
		err = runInspect(rest, env)
	}
	if err != nil {
		if errors.Is(err, errHelpRequested) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, formatError(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// withLogger builds the command logger and flushes it when fn returns.
func withLogger(f commonFlags, env *Environment, fn func(*zap.Logger) error) error {
	logger := newLogger(f, env.Stderr)
	defer func() { _ = logger.Sync() }()
	return fn(logger)
}
