// Package http implements the authenticated transport shared by every
// resource client: request building, the round trip, and response checks.
package http

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dannycabrera/bandwidth-go/internal/codec"
	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
	"github.com/hashicorp/go-retryablehttp"
)

// Connection identifies the account a client talks to.
type Connection struct {
	Host      string
	UserID    string
	APIToken  string
	APISecret string
}

// Validate checks that all credentials are present.
func (c Connection) Validate() error {
	switch {
	case c.UserID == "":
		return fmt.Errorf("%w: user id is required", bandwidth.ErrInvalidArgument)
	case c.APIToken == "":
		return fmt.Errorf("%w: api token is required", bandwidth.ErrInvalidArgument)
	case c.APISecret == "":
		return fmt.Errorf("%w: api secret is required", bandwidth.ErrInvalidArgument)
	}

	return nil
}

// BaseURL returns the versioned API root, e.g. https://api.catapult.inetwork.com/v1.
func (c Connection) BaseURL() string {
	host := strings.TrimRight(strings.TrimSpace(c.Host), "/")
	if host == "" {
		host = constants.DefaultHost
	}

	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}

	return host + "/" + constants.APIVersion
}

// AccountPath returns /users/<userId>.
func (c Connection) AccountPath() string {
	return "/" + constants.UserPathPrefix + "/" + EscapeDataString(c.UserID)
}

func (c Connection) authorization() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.APIToken+":"+c.APISecret))
}

// Observer receives one notification per completed round trip.
type Observer interface {
	ObserveRequest(method, resource string, statusCode int, duration time.Duration, err error)
}

// Request describes a single API call. Path is relative to the account path.
type Request struct {
	Method   string
	Path     string
	ID       string
	Query    Query
	Body     interface{}
	Encoding codec.Encoding
	Headers  map[string]string
}

// Response carries the raw result of a round trip.
type Response struct {
	StatusCode  int
	ContentType string
	Headers     http.Header
	Body        []byte
	Encoding    codec.Encoding
}

// Client is the authenticated transport. It is safe for concurrent use.
type Client struct {
	baseURL       string
	accountPath   string
	authorization string

	httpClient *retryablehttp.Client
	codecs     *codec.Set
	logger     bandwidth.Logger
	observer   Observer
	userAgent  string
	debug      bool

	customHTTPClient *http.Client
	timeout          time.Duration

	closed    atomic.Bool
	closeOnce sync.Once
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger bandwidth.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient replaces the pooled *http.Client used for round trips.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.customHTTPClient = httpClient
	}
}

// WithTimeout bounds each round trip. It is ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithCodecs sets the codecs used for bodies.
func WithCodecs(codecs *codec.Set) Option {
	return func(c *Client) {
		if codecs != nil {
			c.codecs = codecs
		}
	}
}

// WithObserver plugs in request metrics.
func WithObserver(observer Observer) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// NewClient creates a transport for conn. It fails before allocating any
// connection pool when credentials are missing.
func NewClient(conn Connection, opts ...Option) (*Client, error) {
	err := conn.Validate()
	if err != nil {
		return nil, err
	}

	client := &Client{
		baseURL:       conn.BaseURL(),
		accountPath:   conn.AccountPath(),
		authorization: conn.authorization(),
		codecs:        codec.NewSet(codec.Settings{}),
		userAgent:     constants.DefaultUserAgent,
		timeout:       constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if client.customHTTPClient != nil {
		retryClient.HTTPClient = client.customHTTPClient
	} else {
		retryClient.HTTPClient.Timeout = client.timeout
	}

	if client.debug && client.logger != nil {
		retryClient.RequestLogHook = client.logRequest
		retryClient.ResponseLogHook = client.logResponse
	}

	client.httpClient = retryClient

	return client, nil
}

// noRetry stops after the first attempt. A finished context is reported as
// the attempt's error.
func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.Redacted(),
		"attempt": attempt,
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status":       resp.StatusCode,
		"content_type": resp.Header.Get(constants.HeaderContentType),
	})
}

// BaseURL returns the versioned API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Codecs returns the codec set shared by all requests.
func (c *Client) Codecs() *codec.Set {
	return c.codecs
}

// Do performs the request. For non-2xx responses the *Response is returned
// together with a *bandwidth.HTTPError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.closed.Load() {
		return nil, bandwidth.ErrClientClosed
	}

	path, err := BuildPath(c.accountPath, req.Path, req.ID, req.Query)
	if err != nil {
		return nil, err
	}

	bodyCodec, err := c.codecs.For(req.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bandwidth.ErrInvalidArgument, err)
	}

	var body interface{}

	if req.Body != nil {
		data, err := bodyCodec.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", bandwidth.ErrInvalidArgument, err)
		}

		body = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.HeaderAuthorization, c.authorization)
	httpReq.Header.Set(constants.HeaderAccept, bodyCodec.MediaType())
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	if body != nil {
		httpReq.Header.Set(constants.HeaderContentType, bodyCodec.ContentType())
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	start := time.Now()

	resp, err := c.roundTrip(ctx, httpReq, req.Encoding)

	c.observe(req, resp, time.Since(start), err)

	if err != nil {
		return nil, err
	}

	return resp, CheckStatus(resp)
}

func (c *Client) roundTrip(ctx context.Context, httpReq *retryablehttp.Request, enc codec.Encoding) (*Response, error) {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil && httpResp.Body != nil {
			_ = httpResp.Body.Close()
		}

		return nil, c.transportError(ctx, "executing request", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.transportError(ctx, "reading response body", err)
	}

	return &Response{
		StatusCode:  httpResp.StatusCode,
		ContentType: httpResp.Header.Get(constants.HeaderContentType),
		Headers:     httpResp.Header,
		Body:        data,
		Encoding:    enc,
	}, nil
}

// transportError reports ErrCancelled only when the caller's context ended.
// Expiry of the client's own timeout is ErrTimeout.
func (c *Client) transportError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w", bandwidth.ErrCancelled, ctxErr)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%s: %w: %w", op, bandwidth.ErrTimeout, err)
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", bandwidth.ErrCancelled, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (c *Client) observe(req *Request, resp *Response, duration time.Duration, err error) {
	if c.observer == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	c.observer.ObserveRequest(req.Method, strings.Trim(req.Path, "/"), status, duration, err)
}

// Decode decodes resp with the codec of the encoding it was requested with.
func (c *Client) Decode(resp *Response, out interface{}) (bool, error) {
	respCodec, err := c.codecs.For(resp.Encoding)
	if err != nil {
		return false, fmt.Errorf("%w: %w", bandwidth.ErrInvalidArgument, err)
	}

	return Decode(resp, respCodec, out)
}

// Get performs a JSON GET request.
func (c *Client) Get(ctx context.Context, path, id string, query Query) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, ID: id, Query: query})
}

// Post performs a JSON POST request.
func (c *Client) Post(ctx context.Context, path, id string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, ID: id, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path, id string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, ID: id})
}

// Close releases pooled connections. Calling it more than once is a no-op.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.httpClient.HTTPClient.CloseIdleConnections()
	})

	return nil
}
