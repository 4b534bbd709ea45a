package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/skywatch-cli/skywatch/internal/command"
)

// options holds the parsed command-line flags. The *Set booleans record
// whether a flag appeared at all, so optional bundle fields keep their
// explicit "not provided" state.
type options struct {
	ConfigPath string
	LogLevel   string
	Route      string
	Watch      bool

	Data    string
	Page    int
	Skip    int
	Verbose bool
	Output  string
	Silent  bool

	logLevelSet bool
	dataSet     bool
	pageSet     bool
	skipSet     bool
	verboseSet  bool
	outputSet   bool
	silentSet   bool
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (TOML or YAML)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.Route, "route", "", "Invoke a registered route path instead of an action/resource pair")
	flag.BoolVar(&opts.Watch, "watch", false, "With -route: re-invoke the route whenever the config file changes")
	flag.StringVar(&opts.Data, "data", "", "Free-form data payload")
	flag.IntVar(&opts.Page, "page", 0, "Result page number")
	flag.IntVar(&opts.Skip, "skip", 0, "Number of results to skip")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Detailed output")
	flag.StringVar(&opts.Output, "output", "", "Output destination name")
	flag.BoolVar(&opts.Silent, "silent", false, "Suppress informational output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "skywatch - command dispatch for the night sky\n\n")
		fmt.Fprintf(os.Stderr, "Usage: skywatch [options] <action> <resource> [values...]\n")
		fmt.Fprintf(os.Stderr, "       skywatch [options] -route <path>\n\n")
		fmt.Fprintf(os.Stderr, "Actions:   add, subtract, multiply, divide, get, rotate, search\n")
		fmt.Fprintf(os.Stderr, "Resources: numbers, camera, stars, moon\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  skywatch add numbers 2 3\n")
		fmt.Fprintf(os.Stderr, "  skywatch -data orion search stars\n")
		fmt.Fprintf(os.Stderr, "  skywatch -route sky.moon.get\n")
	}

	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			opts.logLevelSet = true
		case "data":
			opts.dataSet = true
		case "page":
			opts.pageSet = true
		case "skip":
			opts.skipSet = true
		case "verbose":
			opts.verboseSet = true
		case "output":
			opts.outputSet = true
		case "silent":
			opts.silentSet = true
		}
	})

	if showVersion {
		fmt.Printf("skywatch %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}

// buildArgs converts positional arguments and flags into the bundle handed
// to the dispatcher.
func buildArgs(opts options, positional []string) (command.Args, error) {
	if len(positional) < 2 {
		return command.Args{}, fmt.Errorf("expected <action> <resource>, got %d arguments", len(positional))
	}

	action, ok := command.ParseAction(positional[0])
	if !ok {
		return command.Args{}, fmt.Errorf("unknown action %q", positional[0])
	}
	resource, ok := command.ParseResource(positional[1])
	if !ok {
		return command.Args{}, fmt.Errorf("unknown resource %q", positional[1])
	}

	args := command.New(action, resource, positional[2:]...).WithSilent(opts.Silent)
	if opts.dataSet {
		args = args.WithData(opts.Data)
	}
	if opts.pageSet {
		args = args.WithPage(opts.Page)
	}
	if opts.skipSet {
		args = args.WithSkip(opts.Skip)
	}
	if opts.verboseSet {
		args = args.WithVerbose(opts.Verbose)
	}
	if opts.outputSet {
		args = args.WithOutput(opts.Output)
	}

	return args, nil
}
