// Package dispatch routes parsed commands to registered handlers.
package dispatch

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
)

// Dispatcher maps (action, resource) pairs to handlers.
//
// Each call is internally consistent; sequences of calls are not atomic and
// need external serialization if the dispatcher is shared across goroutines.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[command.Action]map[command.Resource]handler.Handler

	config  Config
	metrics *Metrics
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[command.Action]map[command.Resource]handler.Handler),
		config:   config,
	}

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// Register inserts or replaces the handler for an action/resource pair.
// Re-registering a pair silently replaces the previous handler.
func (d *Dispatcher) Register(action command.Action, resource command.Resource, h handler.Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	byResource := d.handlers[action]
	if byResource == nil {
		byResource = make(map[command.Resource]handler.Handler)
		d.handlers[action] = byResource
	}
	byResource[resource] = h
}

// RegisterFunc registers a handler function for an action/resource pair.
func (d *Dispatcher) RegisterFunc(action command.Action, resource command.Resource, fn handler.Func) {
	d.Register(action, resource, fn)
}

// Unregister removes the handler for an action/resource pair, if any.
func (d *Dispatcher) Unregister(action command.Action, resource command.Resource) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if byResource := d.handlers[action]; byResource != nil {
		delete(byResource, resource)
	}
}

// Has returns true if a handler is registered for the pair.
func (d *Dispatcher) Has(action command.Action, resource command.Resource) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	byResource := d.handlers[action]
	if byResource == nil {
		return false
	}
	_, ok := byResource[resource]
	return ok
}

// Execute looks up the handler for the args' action/resource pair and
// invokes it with the args. A missing pair is a soft failure: a diagnostic
// is logged and a not-found result is returned, never an error to the
// caller.
func (d *Dispatcher) Execute(args command.Args) handler.Result {
	startTime := time.Now()

	h := d.lookup(args.Action, args.Resource)
	if h == nil {
		if d.config.Logger != nil {
			d.config.Logger.Warn("no handler registered",
				"action", args.Action,
				"resource", args.Resource,
				"invocation", uuid.NewString(),
			)
		}
		if d.metrics != nil {
			d.metrics.RecordMiss(args.Action, args.Resource)
		}
		return handler.NotFoundf("no handler registered for %s %s", args.Action, args.Resource)
	}

	var result handler.Result
	if d.config.RecoverFromPanic {
		result = d.executeWithRecovery(h, args)
	} else {
		result = h.Handle(args)
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(args.Action, args.Resource, time.Since(startTime), result.Status)
	}

	return result
}

// lookup resolves the handler for a pair under the read lock.
func (d *Dispatcher) lookup(action command.Action, resource command.Resource) handler.Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	byResource := d.handlers[action]
	if byResource == nil {
		return nil
	}
	return byResource[resource]
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, args command.Args) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			result = handler.Error(fmt.Errorf("%w for %s %s: %v\n%s",
				ErrPanic, args.Action, args.Resource, r, string(stack[:n])))

			if d.metrics != nil {
				d.metrics.RecordPanic(args.Action, args.Resource)
			}
		}
	}()

	return h.Handle(args)
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Pairs returns all registered action/resource pairs.
func (d *Dispatcher) Pairs() map[command.Action][]command.Resource {
	d.mu.RLock()
	defer d.mu.RUnlock()

	pairs := make(map[command.Action][]command.Resource, len(d.handlers))
	for action, byResource := range d.handlers {
		for resource := range byResource {
			pairs[action] = append(pairs[action], resource)
		}
	}
	return pairs
}

// Count returns the number of registered pairs.
func (d *Dispatcher) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	count := 0
	for _, byResource := range d.handlers {
		count += len(byResource)
	}
	return count
}

// Clear removes all registered handlers.
func (d *Dispatcher) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = make(map[command.Action]map[command.Resource]handler.Handler)
}
