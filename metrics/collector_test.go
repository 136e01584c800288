package metrics

import (
	"sync"
	"testing"
)

func TestCollector_CountsPerAdapter(t *testing.T) {
	c := NewCollector()

	c.IncStarted("rest")
	c.IncStarted("rest")
	c.IncSucceeded("rest")
	c.IncFailed("rest")
	c.IncStarted("eventbus")
	c.IncRaised("eventbus")

	snap := c.Snapshot()

	rest := snap["rest"]
	if rest.CallsStarted != 2 || rest.CallsSucceeded != 1 || rest.CallsFailed != 1 || rest.CallsRaised != 0 {
		t.Errorf("unexpected rest counts: %+v", rest)
	}

	bus := snap["eventbus"]
	if bus.CallsStarted != 1 || bus.CallsRaised != 1 {
		t.Errorf("unexpected eventbus counts: %+v", bus)
	}
}

func TestCollector_SnapshotIsolation(t *testing.T) {
	c := NewCollector()
	c.IncStarted("grpc")

	snap := c.Snapshot()
	c.IncStarted("grpc")

	if snap["grpc"].CallsStarted != 1 {
		t.Errorf("snapshot mutated after later increments: %+v", snap["grpc"])
	}
}

func TestCollector_ConcurrentIncrements(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.IncStarted("rest")
			c.IncSucceeded("rest")
		}()
	}
	wg.Wait()

	counts := c.Snapshot()["rest"]
	if counts.CallsStarted != 50 || counts.CallsSucceeded != 50 {
		t.Errorf("lost increments: %+v", counts)
	}
}
