package route

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Func is a registered route target. Routed invocations carry no argument
// bundle; a Func acts purely through its side effects.
type Func func()

// node is either a branching point or a terminal function, never both.
// Branch nodes carry a non-nil children map and a nil fn; leaf nodes carry
// a non-nil fn and no children.
type node struct {
	children map[string]*node
	fn       Func
}

func newBranch() *node {
	return &node{children: make(map[string]*node)}
}

func (n *node) isLeaf() bool {
	return n.fn != nil
}

// Registry maps hierarchical paths to functions through a segment tree.
//
// Registering a path whose prefix currently holds a function silently
// replaces that function with a branching node: the prior registration is
// shadowed and discarded, no conflict error is raised. Callers relying on a
// prefix registration must be aware of this.
type Registry struct {
	mu     sync.RWMutex
	root   *node
	logger *log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty path registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		root:   newBranch(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Set registers fn at the given path. The path may be a dotted string, an
// explicit segment slice, or a slice of enumerated labels (see Normalize).
// An empty or unrecognized path is a no-op. Interior segments that are
// absent, or that currently hold a function, are replaced by fresh branch
// nodes; a function at the final segment replaces whatever was there.
func (r *Registry) Set(path any, fn Func) {
	segments := Normalize(path)
	if len(segments) == 0 || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.root
	for _, seg := range segments[:len(segments)-1] {
		child := cur.children[seg]
		if child == nil || child.isLeaf() {
			child = newBranch()
			cur.children[seg] = child
		}
		cur = child
	}
	cur.children[segments[len(segments)-1]] = &node{fn: fn}
}

// Invoke resolves the path and calls the registered function. A function
// found at a strict prefix of the path is a catch-all: it is invoked and
// the trailing segments are ignored. Returns true if a function was
// invoked.
//
// An empty or unrecognized path is a silent no-op. A path that cannot be
// resolved to a function logs a not-found diagnostic; neither case is an
// error to the caller.
func (r *Registry) Invoke(path any) bool {
	segments := Normalize(path)
	if len(segments) == 0 {
		return false
	}

	fn, ok := r.resolve(segments)
	if !ok {
		if r.logger != nil {
			r.logger.Warn("function not found for path", "path", strings.Join(segments, Separator))
		}
		return false
	}

	// Call outside the lock so the function may touch the registry.
	fn()
	return true
}

// Resolve returns the function the path would invoke, honoring the prefix
// catch-all rule, without invoking it.
func (r *Registry) Resolve(path any) (Func, bool) {
	segments := Normalize(path)
	if len(segments) == 0 {
		return nil, false
	}
	return r.resolve(segments)
}

// resolve walks the tree under the read lock.
func (r *Registry) resolve(segments []string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cur := r.root
	for _, seg := range segments {
		child := cur.children[seg]
		if child == nil {
			return nil, false
		}
		if child.isLeaf() {
			// Prefix catch-all: trailing segments are ignored.
			return child.fn, true
		}
		cur = child
	}

	// All segments consumed on a branch node: no function here.
	return nil, false
}

// Len returns the number of registered functions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	countLeaves(r.root, &count)
	return count
}

func countLeaves(n *node, count *int) {
	for _, child := range n.children {
		if child.isLeaf() {
			*count++
		} else {
			countLeaves(child, count)
		}
	}
}

// Paths returns the dotted paths of all registered functions.
func (r *Registry) Paths() []Path {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var paths []Path
	collectPaths(r.root, nil, &paths)
	return paths
}

func collectPaths(n *node, prefix []string, paths *[]Path) {
	for seg, child := range n.children {
		p := make([]string, len(prefix)+1)
		copy(p, prefix)
		p[len(prefix)] = seg
		if child.isLeaf() {
			*paths = append(*paths, Join(p...))
		} else {
			collectPaths(child, p, paths)
		}
	}
}

// Clear removes all registered functions.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.root = newBranch()
}
