// Package grpc implements the transport contract over unary gRPC calls
// against the tram.v1.RemoteData service.
//
// Every call carries a deadline derived from static configuration. Entity
// payloads cross the wire as opaque JSON text inside the service messages;
// the wire schema never learns entity shape.
package grpc

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/justapithecus/tram/log"
	"github.com/justapithecus/tram/transport"
)

// DefaultPort is the default server port.
const DefaultPort = 9090

// DefaultDeadline is the default per-call deadline.
const DefaultDeadline = 30 * time.Second

// DefaultMaxRecvMsgSize is the default inbound message limit (4 MiB).
const DefaultMaxRecvMsgSize = 4 * 1024 * 1024

// Config configures the gRPC adapter.
type Config struct {
	// Host is the server host (required).
	Host string
	// Port is the server port (default 9090).
	Port int
	// UseTLS enables TLS with the system certificate pool.
	UseTLS bool
	// MaxRecvMsgSize caps inbound message size (default 4 MiB).
	MaxRecvMsgSize int
	// Deadline is attached to every call (default 30s). Configured once;
	// not overridable per call.
	Deadline time.Duration
	// Metadata is attached to every outgoing call context.
	Metadata map[string]string
	// Logger receives debug output. Nil means silent.
	Logger *log.Logger
}

// Client executes transport operations over a single gRPC channel.
// Safe for concurrent use.
type Client struct {
	config Config
	conn   *gogrpc.ClientConn
	stub   RemoteDataClient
	logger *log.Logger

	closeOnce sync.Once
	closeErr  error
}

// New creates a gRPC adapter from the given config. The channel connects
// lazily: dial failures surface at call time, bounded by the deadline.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("grpc adapter requires a host")
	}
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.MaxRecvMsgSize <= 0 {
		cfg.MaxRecvMsgSize = DefaultMaxRecvMsgSize
	}
	if cfg.Deadline <= 0 {
		cfg.Deadline = DefaultDeadline
	}

	creds := insecure.NewCredentials()
	if cfg.UseTLS {
		creds = credentials.NewTLS(&tls.Config{})
	}

	conn, err := gogrpc.NewClient(
		fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		gogrpc.WithTransportCredentials(creds),
		gogrpc.WithDefaultCallOptions(
			gogrpc.CallContentSubtype(CodecName),
			gogrpc.MaxCallRecvMsgSize(cfg.MaxRecvMsgSize),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("grpc adapter: create channel: %w", err)
	}

	return &Client{
		config: cfg,
		conn:   conn,
		stub:   NewRemoteDataClient(conn),
		logger: cfg.Logger,
	}, nil
}

// Execute performs a single-entity operation as one unary call.
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

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	c.debug(req)

	switch req.Op() {
	case transport.OpFindByID:
		out, err := c.stub.GetByID(callCtx, &GetByIDRequest{
			Resource: req.Resource(),
			ID:       req.ID(),
			Params:   req.Params(),
		})
		if err != nil {
			return c.rpcFailure(req, err)
		}
		return entityResponse(out.Success, out.StatusCode, out.EntityJSON, out.ErrorMessage, out.Metadata), nil

	case transport.OpSave:
		payload, err := req.PayloadJSON()
		if err != nil {
			return nil, err
		}
		if payload == nil {
			return nil, transport.NewError(transport.ErrBadRequest,
				"save requires a payload", 0, req.Resource(), req.Op(), nil)
		}
		out, err := c.stub.Save(callCtx, &SaveRequest{
			Resource:   req.Resource(),
			ID:         req.ID(),
			EntityJSON: string(payload),
			Params:     req.Params(),
		})
		if err != nil {
			return c.rpcFailure(req, err)
		}
		return entityResponse(out.Success, out.StatusCode, out.EntityJSON, out.ErrorMessage, out.Metadata), nil

	case transport.OpDelete:
		out, err := c.stub.Delete(callCtx, &DeleteRequest{
			Resource: req.Resource(),
			ID:       req.ID(),
			Params:   req.Params(),
		})
		if err != nil {
			return c.rpcFailure(req, err)
		}
		// Already-absent is equivalent to deleted.
		if out.Success || out.StatusCode == 404 {
			return withMetadata(transport.NoContent(), out.Metadata), nil
		}
		return withMetadata(transport.Fail(out.StatusCode, out.ErrorMessage), out.Metadata), nil

	case transport.OpExists:
		out, err := c.stub.Exists(callCtx, &ExistsRequest{
			Resource: req.Resource(),
			ID:       req.ID(),
			Params:   req.Params(),
		})
		if err != nil {
			return c.rpcFailure(req, err)
		}
		if !out.Success {
			return withMetadata(transport.Fail(out.StatusCode, out.ErrorMessage), out.Metadata), nil
		}
		resp := transport.OK(jsonBool(out.Exists))
		resp.StatusCode = out.StatusCode
		return withMetadata(resp, out.Metadata), nil

	default: // transport.OpCount
		out, err := c.stub.Count(callCtx, &CountRequest{
			Resource: req.Resource(),
			Params:   req.Params(),
		})
		if err != nil {
			return c.rpcFailure(req, err)
		}
		if !out.Success {
			return withMetadata(transport.Fail(out.StatusCode, out.ErrorMessage), out.Metadata), nil
		}
		resp := transport.OK([]byte(fmt.Sprintf("%d", out.Count)))
		resp.StatusCode = out.StatusCode
		return withMetadata(resp, out.Metadata), nil
	}
}

// ExecuteForList performs FindAll or Query as one GetAll unary call.
func (c *Client) ExecuteForList(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	if !req.Op().IsList() {
		return nil, transport.UnsupportedOperation(req.Resource(), req.Op())
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	c.debug(req)

	out, err := c.stub.GetAll(callCtx, &GetAllRequest{
		Resource: req.Resource(),
		Params:   req.Params(),
	})
	if err != nil {
		return c.rpcFailure(req, err)
	}
	if !out.Success {
		return withMetadata(transport.Fail(out.StatusCode, out.ErrorMessage), out.Metadata), nil
	}

	resp := transport.OK(joinJSONArray(out.EntitiesJSON))
	resp.StatusCode = out.StatusCode
	return withMetadata(resp, out.Metadata), nil
}

// callContext derives the per-call context: configured deadline plus any
// configured metadata.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if len(c.config.Metadata) > 0 {
		ctx = metadata.NewOutgoingContext(ctx, metadata.New(c.config.Metadata))
	}
	return context.WithTimeout(ctx, c.config.Deadline)
}

// rpcFailure translates a stub error. Protocol-reported statuses become
// failure Responses with the status code integer passed through verbatim;
// channel-level failures (unreachable, deadline, canceled, or any non-status
// error) raise a connection-failure error.
func (c *Client) rpcFailure(req *transport.Request, err error) (*transport.Response, error) {
	st, ok := status.FromError(err)
	if !ok || isConnectionCode(st.Code()) {
		return nil, transport.ConnectionFailure("rpc call", req.Resource(), req.Op(), err)
	}
	return transport.Fail(int(st.Code()), st.Message()), nil
}

// isConnectionCode reports whether the status code signals a failure that
// occurred before any protocol-level response was obtainable.
func isConnectionCode(code codes.Code) bool {
	switch code {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return true
	}
	return false
}

func (c *Client) debug(req *transport.Request) {
	if c.logger == nil {
		return
	}
	c.logger.Debug("rpc call", map[string]any{
		"service":  ServiceName,
		"resource": req.Resource(),
		"op":       req.Op().String(),
	})
}

// entityResponse maps an EntityResponse-shaped outcome onto the transport
// Response model. Status codes pass through verbatim.
func entityResponse(success bool, statusCode int, entityJSON, errorMessage string, md map[string]string) *transport.Response {
	if !success {
		return withMetadata(transport.Fail(statusCode, errorMessage), md)
	}
	var resp *transport.Response
	if entityJSON == "" {
		resp = transport.NoContent()
	} else {
		resp = transport.OK([]byte(entityJSON))
	}
	resp.StatusCode = statusCode
	return withMetadata(resp, md)
}

func withMetadata(resp *transport.Response, md map[string]string) *transport.Response {
	for k, v := range md {
		resp.Meta(k, v)
	}
	return resp
}

// joinJSONArray assembles the response body from per-entity JSON documents.
func joinJSONArray(entities []string) []byte {
	return []byte("[" + strings.Join(entities, ",") + "]")
}

// jsonBool renders a boolean response body.
func jsonBool(v bool) []byte {
	if v {
		return []byte("true")
	}
	return []byte("false")
}

// Close releases the channel exactly once; later calls are no-ops returning
// the first outcome. Calls after Close fail with a connection failure.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

// Verify Client implements the transport contract.
var _ transport.Client = (*Client)(nil)
