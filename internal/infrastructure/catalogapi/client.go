// Package catalogapi is the HTTP adapter for the remote catalog REST API.
//
// Every call takes the caller's ports.Credentials explicitly; the client
// itself holds no session state.
package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/shopdesk/store-admin/internal/api/metrics"
	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for reaching the catalog API.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client wraps a resty client configured for the catalog API.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
	now  func() time.Time
}

// New returns a Client for cfg. A default timeout is applied when none is
// provided.
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		method := resp.Request.Method
		metrics.UpstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode())).Inc()
		metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(resp.Time().Seconds())
		return nil
	})
	rc.OnError(func(req *resty.Request, err error) {
		metrics.UpstreamRequestsTotal.WithLabelValues(req.Method, "error").Inc()
	})

	return &Client{http: rc, log: log, now: time.Now}
}

// request starts a call carrying the bearer token, if any. Bodies are decoded
// as JSON whatever Content-Type the backend declares.
func (c *Client) request(ctx context.Context, creds ports.Credentials) *resty.Request {
	req := c.http.R().SetContext(ctx).ForceContentType("application/json")
	if creds.Token != "" {
		req.SetAuthToken(creds.Token)
	}
	return req
}

// listRequest adds the cache-busting parameter and headers of a fresh read.
func (c *Client) listRequest(ctx context.Context, creds ports.Credentials, opts ports.ListOptions) *resty.Request {
	req := c.request(ctx, creds)
	if opts.Fresh {
		req.SetQueryParam("_t", strconv.FormatInt(c.now().UnixMilli(), 10)).
			SetHeader("Cache-Control", "no-cache").
			SetHeader("Pragma", "no-cache")
	}
	return req
}

func (c *Client) writeRequest(ctx context.Context, creds ports.Credentials, opts ports.WriteOptions) *resty.Request {
	req := c.request(ctx, creds)
	if opts.IdempotencyKey != "" {
		req.SetHeader("Idempotency-Key", opts.IdempotencyKey)
	}
	return req
}

// check converts a transport failure or a non-2xx answer into an error.
func (c *Client) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !resp.IsError() {
		return nil
	}

	apiErr := &domain.APIError{Status: resp.StatusCode(), Message: errorMessage(resp.Body())}
	c.log.Debug().
		Str("op", op).
		Int("status", apiErr.Status).
		Str("message", apiErr.Message).
		Msg("catalog api rejected request")
	return fmt.Errorf("%s: %w", op, apiErr)
}

// errorBody is the error envelope of the catalog API. Some endpoints use
// "message", others "error".
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func errorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}
