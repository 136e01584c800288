// Package config handles YAML config file loading for tram.
package config

import (
	"fmt"
	"time"
)

// Config represents a tram.yaml configuration file. The transport selector
// names the adapter to build; exactly the selected adapter's section is
// consulted.
type Config struct {
	// Transport selects the adapter: "rest", "grpc", or "eventbus".
	Transport string         `yaml:"transport"`
	REST      RESTConfig     `yaml:"rest"`
	GRPC      GRPCConfig     `yaml:"grpc"`
	EventBus  EventBusConfig `yaml:"eventbus"`
}

// RESTConfig holds REST adapter settings from the config file.
type RESTConfig struct {
	BaseURL        string            `yaml:"base_url"`
	ConnectTimeout Duration          `yaml:"connect_timeout,omitempty"`
	ReadTimeout    Duration          `yaml:"read_timeout,omitempty"`
	DefaultHeaders map[string]string `yaml:"default_headers,omitempty"`
}

// GRPCConfig holds gRPC adapter settings from the config file.
type GRPCConfig struct {
	Host           string            `yaml:"host"`
	Port           int               `yaml:"port,omitempty"`
	UseTLS         bool              `yaml:"use_tls,omitempty"`
	MaxRecvMsgSize int               `yaml:"max_recv_msg_size,omitempty"`
	Deadline       Duration          `yaml:"deadline,omitempty"`
	Metadata       map[string]string `yaml:"metadata,omitempty"`
}

// EventBusConfig holds event-bus adapter settings from the config file.
type EventBusConfig struct {
	AddressPrefix string            `yaml:"address_prefix,omitempty"`
	Addr          string            `yaml:"addr"`
	Clustered     bool              `yaml:"clustered,omitempty"`
	ClusterAddrs  []string          `yaml:"cluster_addrs,omitempty"`
	Timeout       Duration          `yaml:"timeout,omitempty"`
	Headers       map[string]string `yaml:"headers,omitempty"`
	PoolSize      int               `yaml:"pool_size,omitempty"`
	ReplyWorkers  int               `yaml:"reply_workers,omitempty"`
}

// Duration wraps time.Duration for YAML string parsing (e.g. "10s", "5m").
type Duration struct {
	time.Duration
}

// UnmarshalYAML parses a duration string like "10s" or "5m30s".
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}
