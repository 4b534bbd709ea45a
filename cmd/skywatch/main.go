// Package main is the entry point for the skywatch CLI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/skywatch-cli/skywatch/internal/config"
	"github.com/skywatch-cli/skywatch/internal/dispatch"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
	"github.com/skywatch-cli/skywatch/internal/handlers"
	"github.com/skywatch-cli/skywatch/internal/route"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "skywatch",
		Level:  parseLevel(opts.LogLevel),
	})

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if !opts.logLevelSet && cfg.CLI.LogLevel != "" {
		logger.SetLevel(parseLevel(cfg.CLI.LogLevel))
	}
	if cfg.CLI.Silent && !opts.silentSet {
		opts.Silent = true
	}

	dispatchConfig := dispatch.DefaultConfig().WithLogger(logger)
	if cfg.CLI.Metrics {
		dispatchConfig = dispatchConfig.WithMetrics()
	}
	dispatcher := dispatch.New(dispatchConfig)

	set := handlers.NewSet(os.Stdout)
	set.Register(dispatcher)
	for action, resources := range dispatcher.Pairs() {
		logger.Debug("handlers registered", "action", action, "resources", resources)
	}

	// Watch mode re-binds routes itself on every config change.
	if opts.Route != "" && opts.Watch {
		return watchRoute(opts, cfg, set, logger)
	}

	hosts, err := loadScripts(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeHosts(hosts)

	registry := route.NewRegistry(route.WithLogger(logger))
	if err := bindRoutes(registry, cfg, set, hosts, opts.Silent, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Path invocation mode: call a registered route and exit.
	if opts.Route != "" {
		if !registry.Invoke(opts.Route) {
			return 1
		}
		return 0
	}

	args, err := buildArgs(opts, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		return 2
	}

	result := dispatcher.Execute(args)
	reportMetrics(dispatcher, logger)

	switch {
	case result.IsError():
		fmt.Fprintf(os.Stderr, "Error: %v\n", result.Error)
		return 1
	case result.Status == handler.StatusNotFound:
		return 1
	}

	if result.HasValue() && !args.Silent {
		fmt.Println(formatValue(result.Value))
	}
	return 0
}

// parseLevel maps a level name to a log level, defaulting to info.
func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// reportMetrics logs a dispatch summary when collection is enabled.
func reportMetrics(d *dispatch.Dispatcher, logger *log.Logger) {
	m := d.Metrics()
	if m == nil {
		return
	}
	logger.Debug("dispatch summary",
		"dispatches", m.TotalDispatches(),
		"misses", m.TotalMisses(),
		"errors", m.TotalErrors(),
		"panics", m.TotalPanics(),
		"avg", m.AverageDuration(),
	)
	for _, pm := range m.TopPairs(3) {
		logger.Debug("dispatch pair",
			"action", pm.Action,
			"resource", pm.Resource,
			"count", pm.DispatchCount,
			"errors", pm.ErrorCount,
			"avg", pm.AveragePairDuration(),
		)
	}
}

// formatValue renders a handler return value for the terminal.
func formatValue(v any) string {
	switch val := v.(type) {
	case []string:
		return strings.Join(val, "\n")
	default:
		return fmt.Sprintf("%v", val)
	}
}
