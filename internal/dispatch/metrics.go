package dispatch

import (
	"sort"
	"sync"
	"time"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	// Per-pair metrics, keyed by "action resource".
	pairMetrics map[string]*PairMetrics

	// Global counters
	totalDispatches uint64
	totalMisses     uint64
	totalErrors     uint64
	totalPanics     uint64

	// Timing
	totalDuration time.Duration
}

// PairMetrics holds metrics for a specific action/resource pair.
type PairMetrics struct {
	Action        command.Action
	Resource      command.Resource
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	LastStatus    handler.ResultStatus
	LastDispatch  time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		pairMetrics: make(map[string]*PairMetrics),
	}
}

// pairKey builds the metrics key for an action/resource pair.
func pairKey(action command.Action, resource command.Resource) string {
	return string(action) + " " + string(resource)
}

// RecordDispatch records a dispatch event.
func (m *Metrics) RecordDispatch(action command.Action, resource command.Resource, duration time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration

	if status == handler.StatusError {
		m.totalErrors++
	}

	key := pairKey(action, resource)
	pm := m.pairMetrics[key]
	if pm == nil {
		pm = &PairMetrics{
			Action:      action,
			Resource:    resource,
			MinDuration: duration,
			MaxDuration: duration,
		}
		m.pairMetrics[key] = pm
	}

	pm.DispatchCount++
	pm.TotalDuration += duration
	pm.LastStatus = status
	pm.LastDispatch = time.Now()

	if duration < pm.MinDuration {
		pm.MinDuration = duration
	}
	if duration > pm.MaxDuration {
		pm.MaxDuration = duration
	}

	if status == handler.StatusError {
		pm.ErrorCount++
	}
}

// RecordMiss records a dispatch for which no handler was registered.
func (m *Metrics) RecordMiss(action command.Action, resource command.Resource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalMisses++
}

// RecordPanic records a panic recovery. The recovered dispatch is still
// recorded normally with an error status, so the pair's error count is not
// bumped here.
func (m *Metrics) RecordPanic(action command.Action, resource command.Resource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalPanics++
}

// TotalDispatches returns the total number of dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalMisses returns the number of dispatches with no registered handler.
func (m *Metrics) TotalMisses() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalMisses
}

// TotalErrors returns the total number of errors.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalPanics returns the total number of panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// AverageDuration returns the average dispatch duration.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// PairStats returns metrics for a specific pair, or nil if never dispatched.
func (m *Metrics) PairStats(action command.Action, resource command.Resource) *PairMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pm := m.pairMetrics[pairKey(action, resource)]
	if pm == nil {
		return nil
	}

	// Return a copy
	out := *pm
	return &out
}

// TopPairs returns the top N most dispatched pairs.
func (m *Metrics) TopPairs(n int) []*PairMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pairs := make([]*PairMetrics, 0, len(m.pairMetrics))
	for _, pm := range m.pairMetrics {
		out := *pm
		pairs = append(pairs, &out)
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].DispatchCount > pairs[j].DispatchCount
	})

	if n > len(pairs) {
		n = len(pairs)
	}
	return pairs[:n]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pairMetrics = make(map[string]*PairMetrics)
	m.totalDispatches = 0
	m.totalMisses = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalDuration = 0
}

// AveragePairDuration returns the average duration for this pair.
func (pm *PairMetrics) AveragePairDuration() time.Duration {
	if pm.DispatchCount == 0 {
		return 0
	}
	return pm.TotalDuration / time.Duration(pm.DispatchCount)
}
