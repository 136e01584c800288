// Package eventbus implements the transport contract over asynchronous
// publish/reply messaging on a Redis-backed event bus.
//
// The bus delivery model is fire-and-forget with an optional reply; this
// adapter bridges it to the blocking transport contract. Each call registers
// a one-shot future keyed by correlation ID, publishes a framed request to
// `{prefix}.{operation}`, and parks the calling goroutine on the future with
// an upper-bound wait. Exactly one of {reply received, dispatch failed,
// timeout fired} resolves the call; losing completion paths are no-ops.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/justapithecus/tram/log"
	"github.com/justapithecus/tram/transport"
	"github.com/justapithecus/tram/wire"
)

// DefaultAddressPrefix is the default bus address prefix.
const DefaultAddressPrefix = "remote-data"

// DefaultTimeout is the default per-call reply timeout.
const DefaultTimeout = 30 * time.Second

// closeDrainTimeout bounds the wait for the reply loop during Close.
const closeDrainTimeout = 2 * time.Second

// Config configures the event-bus adapter.
type Config struct {
	// AddressPrefix prefixes every operation address (default "remote-data").
	AddressPrefix string
	// Addr is the bus host:port (required unless Clustered).
	Addr string
	// Clustered enables cluster mode using ClusterAddrs.
	Clustered bool
	// ClusterAddrs lists cluster nodes (required when Clustered).
	ClusterAddrs []string
	// Timeout is the per-call reply timeout (default 30s).
	Timeout time.Duration
	// Headers are copied into every request envelope.
	Headers map[string]string
	// PoolSize sets the connection pool size. 0 uses the client default.
	PoolSize int
	// ReplyWorkers sets the number of reply-dispatch goroutines (default 1).
	// More than one helps only when many calls are in flight at once.
	ReplyWorkers int
	// Logger receives teardown and dropped-reply output. Nil means silent.
	Logger *log.Logger
}

// Client executes transport operations over the event bus. Safe for
// concurrent use: each in-flight call owns its own future, so concurrent
// calls complete independently and may finish out of order.
type Client struct {
	config       Config
	rdb          goredis.UniversalClient
	sub          *goredis.PubSub
	replyChannel string

	// pending maps correlation ID to a buffered chan *wire.Reply of
	// capacity one. LoadAndDelete gives each entry exactly one resolver.
	pending sync.Map

	closeOnce sync.Once
	done      chan struct{} // closed when the last reply worker exits
	logger    *log.Logger
}

// New creates an event-bus adapter and establishes its reply subscription.
// The subscription is confirmed before New returns, so a handler replying
// immediately after dispatch cannot race the subscribe.
func New(cfg Config) (*Client, error) {
	if cfg.Clustered && len(cfg.ClusterAddrs) == 0 {
		return nil, errors.New("eventbus adapter: clustered mode requires cluster addresses")
	}
	if !cfg.Clustered && cfg.Addr == "" {
		return nil, errors.New("eventbus adapter requires an address")
	}
	if cfg.AddressPrefix == "" {
		cfg.AddressPrefix = DefaultAddressPrefix
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.ReplyWorkers <= 0 {
		cfg.ReplyWorkers = 1
	}

	addrs := []string{cfg.Addr}
	if cfg.Clustered {
		addrs = cfg.ClusterAddrs
	}
	rdb := goredis.NewUniversalClient(&goredis.UniversalOptions{
		Addrs:    addrs,
		PoolSize: cfg.PoolSize,
	})

	replyChannel := fmt.Sprintf("%s.reply.%s", cfg.AddressPrefix, uuid.NewString())
	sub := rdb.Subscribe(context.Background(), replyChannel)

	// Wait for the subscription confirmation; without it a reply could be
	// published before the bus knows this client listens.
	confirmCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if _, err := sub.Receive(confirmCtx); err != nil {
		_ = sub.Close()
		_ = rdb.Close()
		return nil, fmt.Errorf("eventbus adapter: subscribe %s: %w", replyChannel, err)
	}

	c := &Client{
		config:       cfg,
		rdb:          rdb,
		sub:          sub,
		replyChannel: replyChannel,
		done:         make(chan struct{}),
		logger:       cfg.Logger,
	}
	replies := sub.Channel()
	var workers sync.WaitGroup
	for i := 0; i < cfg.ReplyWorkers; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			c.replyLoop(replies)
		}()
	}
	go func() {
		workers.Wait()
		close(c.done)
	}()
	return c, nil
}

// Execute performs a single-entity operation as one request/reply exchange.
func (c *Client) Execute(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	switch req.Op() {
	case transport.OpFindByID, transport.OpDelete, transport.OpExists:
		if !req.HasID() {
			return nil, transport.NewError(transport.ErrBadRequest,
				"identifier is required", 0, req.Resource(), req.Op(), nil)
		}
	case transport.OpSave, transport.OpCount:
	default:
		return nil, transport.UnsupportedOperation(req.Resource(), req.Op())
	}

	msg, err := c.requestMessage(req)
	if err != nil {
		return nil, err
	}
	reply, err := c.call(ctx, req, msg)
	if err != nil {
		return nil, err
	}

	switch req.Op() {
	case transport.OpFindByID, transport.OpSave:
		var out wire.EntityReply
		if err := wire.DecodeMessage(reply.Body, &out); err != nil {
			return nil, transport.SerializationFailure("decode reply", req.Resource(), req.Op(), err)
		}
		if !out.Success {
			return withMetadata(transport.Fail(out.StatusCode, out.ErrorMessage), out.Metadata), nil
		}
		var resp *transport.Response
		if out.EntityJSON == "" {
			resp = transport.NoContent()
		} else {
			resp = transport.OK([]byte(out.EntityJSON))
		}
		resp.StatusCode = out.StatusCode
		return withMetadata(resp, out.Metadata), nil

	case transport.OpDelete:
		var out wire.DeleteReply
		if err := wire.DecodeMessage(reply.Body, &out); err != nil {
			return nil, transport.SerializationFailure("decode reply", req.Resource(), req.Op(), err)
		}
		// Already-absent is equivalent to deleted.
		if out.Success || out.StatusCode == 404 {
			return withMetadata(transport.NoContent(), out.Metadata), nil
		}
		return withMetadata(transport.Fail(out.StatusCode, out.ErrorMessage), out.Metadata), nil

	case transport.OpExists:
		var out wire.ExistsReply
		if err := wire.DecodeMessage(reply.Body, &out); err != nil {
			return nil, transport.SerializationFailure("decode reply", req.Resource(), req.Op(), err)
		}
		if !out.Success {
			return withMetadata(transport.Fail(out.StatusCode, out.ErrorMessage), out.Metadata), nil
		}
		body := []byte("false")
		if out.Exists {
			body = []byte("true")
		}
		resp := transport.OK(body)
		resp.StatusCode = out.StatusCode
		return withMetadata(resp, out.Metadata), nil

	default: // transport.OpCount
		var out wire.CountReply
		if err := wire.DecodeMessage(reply.Body, &out); err != nil {
			return nil, transport.SerializationFailure("decode reply", req.Resource(), req.Op(), err)
		}
		if !out.Success {
			return withMetadata(transport.Fail(out.StatusCode, out.ErrorMessage), out.Metadata), nil
		}
		resp := transport.OK([]byte(fmt.Sprintf("%d", out.Count)))
		resp.StatusCode = out.StatusCode
		return withMetadata(resp, out.Metadata), nil
	}
}

// ExecuteForList performs FindAll or Query as one get-all exchange.
func (c *Client) ExecuteForList(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	if !req.Op().IsList() {
		return nil, transport.UnsupportedOperation(req.Resource(), req.Op())
	}

	reply, err := c.call(ctx, req, &wire.GetAll{Resource: req.Resource(), Params: req.Params()})
	if err != nil {
		return nil, err
	}

	var out wire.EntityListReply
	if err := wire.DecodeMessage(reply.Body, &out); err != nil {
		return nil, transport.SerializationFailure("decode reply", req.Resource(), req.Op(), err)
	}
	if !out.Success {
		return withMetadata(transport.Fail(out.StatusCode, out.ErrorMessage), out.Metadata), nil
	}

	resp := transport.OK([]byte("[" + strings.Join(out.EntitiesJSON, ",") + "]"))
	resp.StatusCode = out.StatusCode
	return withMetadata(resp, out.Metadata), nil
}

// requestMessage builds the per-operation wire message for req.
func (c *Client) requestMessage(req *transport.Request) (any, error) {
	switch req.Op() {
	case transport.OpFindByID:
		return &wire.GetByID{Resource: req.Resource(), ID: req.ID(), Params: req.Params()}, nil
	case transport.OpSave:
		payload, err := req.PayloadJSON()
		if err != nil {
			return nil, err
		}
		if payload == nil {
			return nil, transport.NewError(transport.ErrBadRequest,
				"save requires a payload", 0, req.Resource(), req.Op(), nil)
		}
		return &wire.Save{Resource: req.Resource(), ID: req.ID(), EntityJSON: string(payload), Params: req.Params()}, nil
	case transport.OpDelete:
		return &wire.Delete{Resource: req.Resource(), ID: req.ID(), Params: req.Params()}, nil
	case transport.OpExists:
		return &wire.Exists{Resource: req.Resource(), ID: req.ID(), Params: req.Params()}, nil
	default: // transport.OpCount
		return &wire.Count{Resource: req.Resource(), Params: req.Params()}, nil
	}
}

// call dispatches one framed request and blocks on its one-shot future.
// The future is registered before publishing so a fast handler cannot race
// the registration.
func (c *Client) call(ctx context.Context, req *transport.Request, msg any) (*wire.Reply, error) {
	body, err := wire.EncodeMessage(msg)
	if err != nil {
		return nil, transport.SerializationFailure("encode request", req.Resource(), req.Op(), err)
	}

	call := &wire.Call{
		CorrelationID: uuid.NewString(),
		ReplyTo:       c.replyChannel,
		Op:            req.Op().Slug(),
		Headers:       c.config.Headers,
		Body:          body,
	}
	frame, err := wire.EncodeCall(call)
	if err != nil {
		return nil, transport.SerializationFailure("encode request frame", req.Resource(), req.Op(), err)
	}

	future := make(chan *wire.Reply, 1)
	c.pending.Store(call.CorrelationID, future)
	defer c.pending.Delete(call.CorrelationID)

	address := wire.Address(c.config.AddressPrefix, req.Op())

	publishCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()
	receivers, err := c.rdb.Publish(publishCtx, address, frame).Result()
	if err != nil {
		return nil, transport.ConnectionFailure(fmt.Sprintf("dispatch to %s", address), req.Resource(), req.Op(), err)
	}
	if receivers == 0 {
		return nil, transport.ConnectionFailure(
			fmt.Sprintf("no handler registered at %s", address), req.Resource(), req.Op(), nil)
	}

	timer := time.NewTimer(c.config.Timeout)
	defer timer.Stop()

	select {
	case reply := <-future:
		return reply, nil
	case <-timer.C:
		return nil, transport.ConnectionFailure(
			fmt.Sprintf("no reply from %s within %s", address, c.config.Timeout),
			req.Resource(), req.Op(), nil)
	case <-ctx.Done():
		return nil, transport.ConnectionFailure(
			fmt.Sprintf("call to %s canceled", address), req.Resource(), req.Op(), ctx.Err())
	case <-c.done:
		return nil, transport.ConnectionFailure(
			fmt.Sprintf("adapter closed while waiting on %s", address), req.Resource(), req.Op(), nil)
	}
}

// replyLoop routes reply frames to their futures. Each worker runs until the
// subscription channel closes; the last exit resolves all in-flight calls
// with connection failures via the done channel.
func (c *Client) replyLoop(replies <-chan *goredis.Message) {
	for msg := range replies {
		reply, err := wire.DecodeReply([]byte(msg.Payload))
		if err != nil {
			if c.logger != nil {
				c.logger.Warn("dropping undecodable reply", map[string]any{"error": err.Error()})
			}
			continue
		}

		// LoadAndDelete makes this the entry's only resolver; the
		// buffered send never blocks. A missing entry means the caller
		// already timed out.
		if future, ok := c.pending.LoadAndDelete(reply.CorrelationID); ok {
			future.(chan *wire.Reply) <- reply
		} else if c.logger != nil {
			c.logger.Debug("dropping late reply", map[string]any{"correlation_id": reply.CorrelationID})
		}
	}
}

func withMetadata(resp *transport.Response, md map[string]string) *transport.Response {
	for k, v := range md {
		resp.Meta(k, v)
	}
	return resp
}

// Close releases the bus connection exactly once, waiting briefly for the
// reply loop to drain. Teardown errors are logged, never propagated: the
// adapter is already being torn down.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		if err := c.sub.Close(); err != nil && c.logger != nil {
			c.logger.Warn("closing reply subscription", map[string]any{"error": err.Error()})
		}

		select {
		case <-c.done:
		case <-time.After(closeDrainTimeout):
			if c.logger != nil {
				c.logger.Warn("reply loop did not drain before deadline", nil)
			}
		}

		if err := c.rdb.Close(); err != nil && c.logger != nil {
			c.logger.Warn("closing bus connection", map[string]any{"error": err.Error()})
		}
	})
	return nil
}

// Verify Client implements the transport contract.
var _ transport.Client = (*Client)(nil)
