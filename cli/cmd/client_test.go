package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/tram/transport"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"name=ada", "role=engineer", "empty="})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := map[string]string{"name": "ada", "role": "engineer", "empty": ""}
	if len(params) != len(want) {
		t.Fatalf("params = %v, want %v", params, want)
	}
	for k, v := range want {
		if params[k] != v {
			t.Errorf("params[%q] = %q, want %q", k, params[k], v)
		}
	}
}

func TestParseParams_Invalid(t *testing.T) {
	for _, pair := range []string{"no-equals", "=value"} {
		if _, err := parseParams([]string{pair}); err == nil {
			t.Errorf("expected error for %q", pair)
		}
	}
}

func TestReadData_Literal(t *testing.T) {
	raw, err := readData(`{"id":1,"name":"ada"}`)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != `{"id":1,"name":"ada"}` {
		t.Errorf("data mutated: %s", raw)
	}
}

func TestReadData_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entity.json")
	if err := os.WriteFile(path, []byte(`{"id":2}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	raw, err := readData("@" + path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != `{"id":2}` {
		t.Errorf("unexpected data: %s", raw)
	}
}

func TestReadData_RejectsInvalidJSON(t *testing.T) {
	if _, err := readData("{not json"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestExitForOutcome(t *testing.T) {
	if err := exitForOutcome(transport.OK([]byte(`{}`)), nil); err != nil {
		t.Errorf("success outcome must not error: %v", err)
	}

	err := exitForOutcome(transport.Fail(503, "overloaded"), nil)
	coder, ok := err.(cli.ExitCoder)
	if !ok {
		t.Fatalf("expected ExitCoder, got %v", err)
	}
	if coder.ExitCode() != exitProtocol {
		t.Errorf("protocol failure exit = %d, want %d", coder.ExitCode(), exitProtocol)
	}

	err = exitForOutcome(nil, transport.ConnectionFailure("dial", "users", transport.OpFindByID, nil))
	coder, ok = err.(cli.ExitCoder)
	if !ok {
		t.Fatalf("expected ExitCoder, got %v", err)
	}
	if coder.ExitCode() != exitFatal {
		t.Errorf("raised error exit = %d, want %d", coder.ExitCode(), exitFatal)
	}
}
