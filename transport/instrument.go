package transport

import (
	"context"

	"github.com/justapithecus/tram/metrics"
)

// Instrumented wraps a Client and records call metrics under a fixed
// adapter label. Each Execute/ExecuteForList call increments started plus
// exactly one of succeeded, failed, or raised on the collector.
type Instrumented struct {
	inner     Client
	collector *metrics.Collector
	label     string
}

// Instrument wraps a client with metrics instrumentation.
// The label identifies the adapter in collector snapshots (e.g. "rest").
func Instrument(inner Client, collector *metrics.Collector, label string) *Instrumented {
	return &Instrumented{inner: inner, collector: collector, label: label}
}

// Execute delegates to the inner client and records the outcome.
func (i *Instrumented) Execute(ctx context.Context, req *Request) (*Response, error) {
	i.collector.IncStarted(i.label)
	resp, err := i.inner.Execute(ctx, req)
	i.record(resp, err)
	return resp, err
}

// ExecuteForList delegates to the inner client and records the outcome.
func (i *Instrumented) ExecuteForList(ctx context.Context, req *Request) (*Response, error) {
	i.collector.IncStarted(i.label)
	resp, err := i.inner.ExecuteForList(ctx, req)
	i.record(resp, err)
	return resp, err
}

func (i *Instrumented) record(resp *Response, err error) {
	switch {
	case err != nil:
		i.collector.IncRaised(i.label)
	case resp.Success:
		i.collector.IncSucceeded(i.label)
	default:
		i.collector.IncFailed(i.label)
	}
}

// Close delegates to the inner client.
func (i *Instrumented) Close() error {
	return i.inner.Close()
}

// Verify Instrumented implements the transport contract.
var _ Client = (*Instrumented)(nil)
