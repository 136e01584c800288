package transport

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/justapithecus/tram/metrics"
)

func TestInstrument_RecordsOutcomes(t *testing.T) {
	collector := metrics.NewCollector()

	req, err := NewRequest(OpFindByID, "users").ID(1).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	listReq, err := NewRequest(OpFindAll, "users").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// One success, one protocol failure, one raised error.
	success := Instrument(&fakeClient{resp: OK(json.RawMessage(`{}`))}, collector, "rest")
	if _, err := success.Execute(context.Background(), req); err != nil {
		t.Fatalf("execute: %v", err)
	}

	failure := Instrument(&fakeClient{resp: Fail(500, "boom")}, collector, "rest")
	if _, err := failure.Execute(context.Background(), req); err != nil {
		t.Fatalf("execute: %v", err)
	}

	raised := Instrument(&fakeClient{err: ConnectionFailure("dial", "users", OpFindAll, nil)}, collector, "rest")
	if _, err := raised.ExecuteForList(context.Background(), listReq); err == nil {
		t.Fatal("expected raised error")
	}

	counts := collector.Snapshot()["rest"]
	if counts.CallsStarted != 3 {
		t.Errorf("started = %d, want 3", counts.CallsStarted)
	}
	if counts.CallsSucceeded != 1 {
		t.Errorf("succeeded = %d, want 1", counts.CallsSucceeded)
	}
	if counts.CallsFailed != 1 {
		t.Errorf("failed = %d, want 1", counts.CallsFailed)
	}
	if counts.CallsRaised != 1 {
		t.Errorf("raised = %d, want 1", counts.CallsRaised)
	}
}
