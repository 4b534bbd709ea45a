package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/skywatch-cli/skywatch/internal/config"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
	"github.com/skywatch-cli/skywatch/internal/handlers"
	"github.com/skywatch-cli/skywatch/internal/route"
	"github.com/skywatch-cli/skywatch/internal/script"
)

// scriptTargetPrefix marks a route target as a script function reference.
const scriptTargetPrefix = "script:"

// loadScripts creates one host per configured script and executes its file.
func loadScripts(cfg *config.File, logger *log.Logger) (map[string]*script.Host, error) {
	hosts := make(map[string]*script.Host, len(cfg.Scripts))
	for _, s := range cfg.Scripts {
		host := script.NewHost(s.Name, script.WithHostLogger(logger))
		if err := host.LoadFile(cfg.ScriptPath(s)); err != nil {
			host.Close()
			closeHosts(hosts)
			return nil, err
		}
		logger.Debug("script loaded", "script", s.Name, "host", host.ID())
		hosts[s.Name] = host
	}
	return hosts, nil
}

func closeHosts(hosts map[string]*script.Host) {
	for _, h := range hosts {
		h.Close()
	}
}

// bindRoutes registers every configured route into the path registry.
// Built-in targets close over their zero-operand argument bundle; script
// targets resolve through the named host.
func bindRoutes(registry *route.Registry, cfg *config.File, set *handlers.Set, hosts map[string]*script.Host, silent bool, logger *log.Logger) error {
	named := set.Named()

	for path, target := range cfg.Routes {
		fn, err := resolveTarget(target, named, hosts, silent, logger)
		if err != nil {
			return fmt.Errorf("route %q: %w", path, err)
		}
		registry.Set(path, fn)
	}
	return nil
}

// resolveTarget converts a route-table target string into a route function.
func resolveTarget(target string, named map[string]handler.Handler, hosts map[string]*script.Host, silent bool, logger *log.Logger) (route.Func, error) {
	if ref, ok := strings.CutPrefix(target, scriptTargetPrefix); ok {
		name, fn, ok := strings.Cut(ref, ".")
		if !ok {
			return nil, fmt.Errorf("script target %q must be script:<name>.<function>", target)
		}
		host := hosts[name]
		if host == nil {
			return nil, fmt.Errorf("unknown script %q", name)
		}
		if !host.HasFunction(fn) {
			return nil, fmt.Errorf("script %q defines no function %q", name, fn)
		}
		return host.RouteFunc(fn), nil
	}

	h, ok := named[target]
	if !ok {
		return nil, fmt.Errorf("unknown built-in target %q", target)
	}
	args := handlers.ArgsFor(target, silent)
	return func() {
		if res := h.Handle(args); res.IsError() && logger != nil {
			logger.Error("route handler failed", "target", target, "err", res.Error)
		}
	}, nil
}
