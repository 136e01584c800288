// Package rest implements the transport contract over synchronous
// request/response HTTP.
//
// Operations map onto HTTP verbs: reads are GETs, Save is POST (insert) or
// PUT (update), Delete is DELETE, Exists is a HEAD probe. Entity payloads
// and bodies cross the wire as JSON.
package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/justapithecus/tram/iox"
	"github.com/justapithecus/tram/log"
	"github.com/justapithecus/tram/transport"
)

// DefaultConnectTimeout is the default TCP connect timeout.
const DefaultConnectTimeout = 5 * time.Second

// DefaultReadTimeout is the default whole-request timeout.
const DefaultReadTimeout = 30 * time.Second

// maxBodySize bounds response body reads (16 MiB).
const maxBodySize = 16 * 1024 * 1024

// Config configures the REST adapter.
type Config struct {
	// BaseURL is the server root every resource path is joined to (required).
	BaseURL string
	// ConnectTimeout is the TCP connect timeout (default 5s).
	ConnectTimeout time.Duration
	// ReadTimeout is the whole-request timeout (default 30s).
	ReadTimeout time.Duration
	// DefaultHeaders are added to every outgoing request.
	DefaultHeaders map[string]string
	// Logger receives debug output. Nil means silent.
	Logger *log.Logger
}

// Client executes transport operations over HTTP. Safe for concurrent use;
// it owns one http.Client for its lifetime.
type Client struct {
	config Config
	base   *url.URL
	http   *http.Client
	logger *log.Logger
}

// New creates a REST adapter from the given config.
// Returns an error if the base URL is missing or unparsable.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("rest adapter requires a base URL")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("rest adapter: invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("rest adapter: base URL %q must be absolute", cfg.BaseURL)
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}

	httpClient := &http.Client{
		Timeout: cfg.ReadTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
		},
	}

	return &Client{
		config: cfg,
		base:   base,
		http:   httpClient,
		logger: cfg.Logger,
	}, nil
}

// Execute performs a single-entity operation over HTTP.
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

	switch req.Op() {
	case transport.OpSave:
		return c.save(ctx, req)
	case transport.OpDelete:
		return c.do(ctx, req, http.MethodDelete, nil)
	case transport.OpExists:
		return c.do(ctx, req, http.MethodHead, nil)
	default:
		return c.do(ctx, req, http.MethodGet, nil)
	}
}

// ExecuteForList performs FindAll or Query over HTTP.
func (c *Client) ExecuteForList(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	if !req.Op().IsList() {
		return nil, transport.UnsupportedOperation(req.Resource(), req.Op())
	}
	return c.do(ctx, req, http.MethodGet, nil)
}

// save issues POST for inserts (no identifier) and PUT for updates.
func (c *Client) save(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	body, err := req.PayloadJSON()
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, transport.NewError(transport.ErrBadRequest, "save requires a payload", 0, req.Resource(), req.Op(), nil)
	}
	method := http.MethodPost
	if req.HasID() {
		method = http.MethodPut
	}
	return c.do(ctx, req, method, body)
}

// do performs one HTTP exchange and converts the outcome per the transport
// failure taxonomy: 2xx and tolerated 404s become success Responses, other
// 4xx/5xx become failure Responses, and everything below HTTP (DNS, dial,
// timeout) raises a connection-failure error.
func (c *Client) do(ctx context.Context, req *transport.Request, method string, body []byte) (*transport.Response, error) {
	target := c.buildURL(req)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, transport.ConnectionFailure("create request", req.Resource(), req.Op(), err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.config.DefaultHeaders {
		httpReq.Header.Set(k, v)
	}

	if c.logger != nil {
		c.logger.Debug("rest call", map[string]any{
			"method":   method,
			"url":      target,
			"resource": req.Resource(),
			"op":       req.Op().String(),
		})
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, transport.ConnectionFailure(fmt.Sprintf("%s %s", method, target), req.Resource(), req.Op(), err)
	}
	defer iox.DiscardClose(httpResp.Body)

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodySize))
	if err != nil {
		return nil, transport.ConnectionFailure("read response body", req.Resource(), req.Op(), err)
	}

	return c.convert(req, httpResp, respBody), nil
}

// convert maps one HTTP response onto the transport Response model.
func (c *Client) convert(req *transport.Request, httpResp *http.Response, body []byte) *transport.Response {
	status := httpResp.StatusCode
	ok := status >= 200 && status < 300

	var resp *transport.Response
	switch {
	case req.Op() == transport.OpExists:
		// HEAD probe: 2xx means present, 404 means absent. Neither is
		// an error; only other statuses report failure.
		switch {
		case ok:
			resp = transport.OK([]byte("true"))
			resp.StatusCode = status
		case status == http.StatusNotFound:
			resp = transport.OK([]byte("false"))
			resp.StatusCode = status
		default:
			resp = transport.Fail(status, failMessage(httpResp, body))
		}
	case req.Op() == transport.OpDelete && (ok || status == http.StatusNotFound):
		// Already-absent is equivalent to deleted.
		resp = transport.NoContent()
	case ok:
		if len(body) == 0 || status == http.StatusNoContent {
			resp = transport.NoContent()
			resp.StatusCode = status
		} else {
			resp = transport.OK(body)
			resp.StatusCode = status
		}
	default:
		resp = transport.Fail(status, failMessage(httpResp, body))
	}

	for _, header := range []string{"Content-Type", "ETag", "X-Total-Count"} {
		if v := httpResp.Header.Get(header); v != "" {
			resp.Meta(header, v)
		}
	}
	return resp
}

// failMessage renders "<status text>: <body>" for failure Responses.
func failMessage(httpResp *http.Response, body []byte) string {
	text := http.StatusText(httpResp.StatusCode)
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return text
	}
	return text + ": " + trimmed
}

// buildURL joins the base URL, resource path, optional identifier segment,
// the /count suffix for Count, and URL-encoded query parameters.
func (c *Client) buildURL(req *transport.Request) string {
	u := *c.base

	segments := []string{req.Resource()}
	if req.HasID() {
		segments = append(segments, req.ID())
	}
	if req.Op() == transport.OpCount {
		segments = append(segments, "count")
	}
	u.Path = joinPath(u.Path, segments)

	params := req.Params()
	if len(params) > 0 {
		values := url.Values{}
		for k, v := range params {
			values.Set(k, v)
		}
		u.RawQuery = values.Encode()
	}
	return u.String()
}

// joinPath appends escaped path segments to base without doubling slashes.
func joinPath(base string, segments []string) string {
	path := strings.TrimRight(base, "/")
	for _, seg := range segments {
		path += "/" + url.PathEscape(seg)
	}
	return path
}

// Close releases idle connections. The adapter is unusable afterward only
// by convention; in-flight calls complete normally.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Verify Client implements the transport contract.
var _ transport.Client = (*Client)(nil)
