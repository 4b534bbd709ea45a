package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/skywatch-cli/skywatch/internal/config"
	"github.com/skywatch-cli/skywatch/internal/handlers"
	"github.com/skywatch-cli/skywatch/internal/route"
	"github.com/skywatch-cli/skywatch/internal/script"
)

// watchRoute invokes the route once, then re-binds and re-invokes it each
// time the configuration file changes, until interrupted.
func watchRoute(opts options, cfg *config.File, set *handlers.Set, logger *log.Logger) int {
	if opts.ConfigPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -watch requires -config")
		return 2
	}

	var mu sync.Mutex
	var hosts map[string]*script.Host

	invoke := func(cfg *config.File) {
		mu.Lock()
		defer mu.Unlock()

		newHosts, err := loadScripts(cfg, logger)
		if err != nil {
			logger.Error("script load failed", "err", err)
			return
		}

		registry := route.NewRegistry(route.WithLogger(logger))
		if err := bindRoutes(registry, cfg, set, newHosts, opts.Silent, logger); err != nil {
			closeHosts(newHosts)
			logger.Error("route binding failed", "err", err)
			return
		}

		closeHosts(hosts)
		hosts = newHosts
		registry.Invoke(opts.Route)
	}

	invoke(cfg)

	watcher, err := config.NewWatcher(opts.ConfigPath, invoke,
		config.WithErrorHandler(func(err error) {
			logger.Error("config reload failed", "err", err)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		_ = watcher.Close()
		mu.Lock()
		closeHosts(hosts)
		mu.Unlock()
	}()

	logger.Info("watching config", "path", opts.ConfigPath, "route", opts.Route)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	return 0
}
