package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/justapithecus/tram/iox"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tram.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_REST(t *testing.T) {
	path := writeConfig(t, `
transport: rest
rest:
  base_url: https://api.example.com/v2
  connect_timeout: 3s
  read_timeout: 45s
  default_headers:
    Authorization: Bearer token
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Transport != "rest" {
		t.Errorf("transport = %q, want rest", cfg.Transport)
	}
	if cfg.REST.BaseURL != "https://api.example.com/v2" {
		t.Errorf("base_url = %q", cfg.REST.BaseURL)
	}
	if cfg.REST.ConnectTimeout.Duration != 3*time.Second {
		t.Errorf("connect_timeout = %v, want 3s", cfg.REST.ConnectTimeout.Duration)
	}
	if cfg.REST.ReadTimeout.Duration != 45*time.Second {
		t.Errorf("read_timeout = %v, want 45s", cfg.REST.ReadTimeout.Duration)
	}
	if cfg.REST.DefaultHeaders["Authorization"] != "Bearer token" {
		t.Errorf("default_headers = %v", cfg.REST.DefaultHeaders)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TRAM_TEST_HOST", "rpc.internal")

	path := writeConfig(t, `
transport: grpc
grpc:
  host: ${TRAM_TEST_HOST}
  port: ${TRAM_TEST_PORT:-9191}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.GRPC.Host != "rpc.internal" {
		t.Errorf("host = %q, want env value", cfg.GRPC.Host)
	}
	if cfg.GRPC.Port != 9191 {
		t.Errorf("port = %d, want fallback 9191", cfg.GRPC.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "transport: [rest\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "invalid YAML") {
		t.Errorf("expected YAML error, got %v", err)
	}
}

func TestDuration_RejectsGarbage(t *testing.T) {
	path := writeConfig(t, `
transport: rest
rest:
  base_url: http://x
  read_timeout: soon
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for unparseable duration")
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("TRAM_SET", "value")
	t.Setenv("TRAM_EMPTY", "")

	cases := []struct {
		in, want string
	}{
		{"${TRAM_SET}", "value"},
		{"${TRAM_UNSET}", ""},
		{"${TRAM_UNSET:-fallback}", "fallback"},
		{"${TRAM_EMPTY:-fallback}", "fallback"},
		{"${TRAM_SET:-fallback}", "value"},
		{"prefix-${TRAM_SET}-suffix", "prefix-value-suffix"},
		{"no vars here", "no vars here"},
	}
	for _, c := range cases {
		if got := ExpandEnv(c.in); got != c.want {
			t.Errorf("ExpandEnv(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuild_SelectsREST(t *testing.T) {
	cfg := &Config{
		Transport: "rest",
		REST:      RESTConfig{BaseURL: "http://localhost:8080"},
	}

	client, err := cfg.Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	t.Cleanup(iox.CloseFunc(client))

	if client == nil {
		t.Error("expected a transport client")
	}
}

func TestBuild_SelectsEventBus(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &Config{
		Transport: "eventbus",
		EventBus:  EventBusConfig{Addr: mr.Addr()},
	}

	client, err := cfg.Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	t.Cleanup(iox.CloseFunc(client))
}

func TestBuild_UnknownTransport(t *testing.T) {
	cfg := &Config{Transport: "carrier-pigeon"}
	_, err := cfg.Build(nil)
	if err == nil || !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Errorf("expected unknown-transport error naming the selector, got %v", err)
	}
}

func TestBuild_MissingSelector(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.Build(nil); err == nil {
		t.Error("expected error for missing transport selector")
	}
}

func TestBuild_AdapterValidationPropagates(t *testing.T) {
	cfg := &Config{Transport: "rest"} // no base_url
	if _, err := cfg.Build(nil); err == nil {
		t.Fatal("expected error for missing base_url")
	}
}
