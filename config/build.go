package config

import (
	"fmt"

	"github.com/justapithecus/tram/log"
	"github.com/justapithecus/tram/transport"
	"github.com/justapithecus/tram/transport/eventbus"
	"github.com/justapithecus/tram/transport/grpc"
	"github.com/justapithecus/tram/transport/rest"
)

// Build constructs the transport client the config selects. The logger is
// handed to the adapter; nil means silent.
func (c *Config) Build(logger *log.Logger) (transport.Client, error) {
	switch c.Transport {
	case "rest":
		return rest.New(rest.Config{
			BaseURL:        c.REST.BaseURL,
			ConnectTimeout: c.REST.ConnectTimeout.Duration,
			ReadTimeout:    c.REST.ReadTimeout.Duration,
			DefaultHeaders: c.REST.DefaultHeaders,
			Logger:         logger,
		})
	case "grpc":
		return grpc.New(grpc.Config{
			Host:           c.GRPC.Host,
			Port:           c.GRPC.Port,
			UseTLS:         c.GRPC.UseTLS,
			MaxRecvMsgSize: c.GRPC.MaxRecvMsgSize,
			Deadline:       c.GRPC.Deadline.Duration,
			Metadata:       c.GRPC.Metadata,
			Logger:         logger,
		})
	case "eventbus":
		return eventbus.New(eventbus.Config{
			AddressPrefix: c.EventBus.AddressPrefix,
			Addr:          c.EventBus.Addr,
			Clustered:     c.EventBus.Clustered,
			ClusterAddrs:  c.EventBus.ClusterAddrs,
			Timeout:       c.EventBus.Timeout.Duration,
			Headers:       c.EventBus.Headers,
			PoolSize:      c.EventBus.PoolSize,
			ReplyWorkers:  c.EventBus.ReplyWorkers,
			Logger:        logger,
		})
	case "":
		return nil, fmt.Errorf("config: transport selector is required (rest, grpc, or eventbus)")
	default:
		return nil, fmt.Errorf("config: unknown transport %q", c.Transport)
	}
}
