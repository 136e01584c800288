// Package metrics provides call-level metrics collection for transport
// adapters.
//
// The Collector accumulates counters keyed by adapter label. It is a leaf
// package with no internal dependencies; adapters are instrumented by the
// transport.Instrument decorator rather than recording directly.
package metrics

import "sync"

// Counts is the per-adapter counter set.
type Counts struct {
	// CallsStarted is the number of calls dispatched.
	CallsStarted int64
	// CallsSucceeded is the number of calls that returned a success Response.
	CallsSucceeded int64
	// CallsFailed is the number of calls that returned a protocol failure
	// (non-success Response).
	CallsFailed int64
	// CallsRaised is the number of calls that raised a fatal error
	// (connection, serialization, unsupported operation).
	CallsRaised int64
}

// Collector accumulates transport call counters. Safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	counters map[string]*Counts
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{counters: make(map[string]*Counts)}
}

// IncStarted increments the started counter for the adapter label.
func (c *Collector) IncStarted(adapter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts(adapter).CallsStarted++
}

// IncSucceeded increments the succeeded counter for the adapter label.
func (c *Collector) IncSucceeded(adapter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts(adapter).CallsSucceeded++
}

// IncFailed increments the protocol-failure counter for the adapter label.
func (c *Collector) IncFailed(adapter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts(adapter).CallsFailed++
}

// IncRaised increments the fatal-error counter for the adapter label.
func (c *Collector) IncRaised(adapter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts(adapter).CallsRaised++
}

// counts returns the counter set for the label, creating it if needed.
// Caller must hold mu.
func (c *Collector) counts(adapter string) *Counts {
	counts, ok := c.counters[adapter]
	if !ok {
		counts = &Counts{}
		c.counters[adapter] = counts
	}
	return counts
}

// Snapshot returns an immutable point-in-time copy of all counters,
// keyed by adapter label. Safe to read concurrently after creation.
func (c *Collector) Snapshot() map[string]Counts {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]Counts, len(c.counters))
	for label, counts := range c.counters {
		out[label] = *counts
	}
	return out
}
