// Package main is the cmcutil command: config-tree search, substitution and
// joining, seeded draws and the end-of-run alert from the shell.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/cmcutils/config"
	"github.com/katalvlaran/cmcutils/internal/logx"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// errUsage marks errors caused by bad command lines; they exit with 2.
var errUsage = errors.New("usage")

type app struct {
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
	dump   bool
}

type command struct {
	name    string
	args    string
	summary string
	run     func(a *app, args []string) error
}

func commands() []command {
	return []command{
		{"lcs", "STR...", "longest substring common to all arguments", (*app).lcs},
		{"search", "[-path] KEY FILE", "first value stored under KEY (depth-first)", (*app).search},
		{"substitute", "-with SUBS FILE", "replace values whose keys appear in SUBS", (*app).substitute},
		{"join", "FILE...", "merge trees, summing or concatenating collisions", (*app).join},
		{"params", "[-on-unmatched P] FILE...", "merge preprocessing parameter files", (*app).params},
		{"seed", "[-seed N] [-n K] [-worker ID]", "print draws from the seeded streams", (*app).seed},
		{"beep", "", "play the end-of-run alert", (*app).beep},
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cmcutil", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfgPath     string
		logLevel    string
		dump        bool
		showVersion bool
	)
	fs.StringVar(&cfgPath, "config", "", "Path to configuration file (yaml or json)")
	fs.StringVar(&cfgPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&logLevel, "log-level", "", "Log level override (trace, debug, info, warn, error)")
	fs.BoolVar(&dump, "dump", false, "Print trees as a typed debug dump instead of YAML")
	fs.BoolVar(&showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "cmcutil - helpers for ML experiment configs\n\n")
		fmt.Fprintf(stderr, "Usage: cmcutil [options] <command> [args]\n\nCommands:\n")
		for _, c := range commands() {
			fmt.Fprintf(stderr, "  %-11s %-30s %s\n", c.name, c.args, c.summary)
		}
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintf(stdout, "cmcutil %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Log.Apply(stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	a := &app{cfg: cfg, stdout: stdout, stderr: stderr, dump: dump}
	for _, c := range commands() {
		if c.name != rest[0] {
			continue
		}
		logx.For("cli").WithField("command", c.name).Debug("running")
		if err := c.run(a, rest[1:]); err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", c.name, err)
			if errors.Is(err, errUsage) {
				return 2
			}
			return 1
		}
		return 0
	}

	fmt.Fprintf(stderr, "Error: unknown command %q\n", rest[0])
	fs.Usage()
	return 2
}
