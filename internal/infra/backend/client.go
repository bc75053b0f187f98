// Package backend talks to the backend API that owns orders, products and purchase orders.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const maxErrorBodySize = 64 << 10

// Params defines the parameters required for the backend client
type Params struct {
	fx.In

	Config  *config.Config
	Session service.Session
	Logger  *slog.Logger
}

// Client sends authenticated, rate limited requests to the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	session    service.Session
	logger     *slog.Logger
}

// New creates the backend client.
func New(params Params) *Client {
	cfg := params.Config.Backend

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		session:    params.Session,
		logger:     params.Logger,
	}
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any

	// anonymous requests never carry the bearer token
	anonymous bool
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query}, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, request{method: http.MethodPost, path: path, body: body}, out)
}

// do sends the request and decodes a JSON answer into out when out is not nil.
// A 401 or 403 on an authenticated request invalidates exactly the token it carried.
func (c *Client) do(ctx context.Context, req request, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "rate limiter error")
		}
	}

	httpReq, token, err := c.newRequest(ctx, req)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log(ctx).Warn("Backend request failed",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Any("error", err),
		)

		return errors.Wrap(domainerrors.ErrBackendUnavailable, err.Error())
	}
	defer resp.Body.Close()

	c.log(ctx).Debug("Backend request",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(ctx, req, token, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "failed to decode %s %s", req.method, req.path)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, string, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, "", errors.WithStack(err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	token := ""
	if !req.anonymous {
		token = c.session.Token()
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return httpReq, token, nil
}

func (c *Client) statusError(ctx context.Context, req request, token string, resp *http.Response) error {
	var payload errorBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	_ = json.Unmarshal(data, &payload)

	unauthorized := resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden
	if unauthorized && token != "" {
		if c.session.Invalidate(ctx, token) {
			c.log(ctx).Info("Session invalidated by backend",
				slog.String("path", req.path),
				slog.Int("status", resp.StatusCode),
			)
		}

		return errors.WithStack(domainerrors.ErrSessionExpired)
	}

	return errors.WithStack(domainerrors.NewBackendError(resp.StatusCode, payload.Message, req.path))
}
