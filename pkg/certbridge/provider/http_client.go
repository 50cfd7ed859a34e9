package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultAttempts = 3
)

// maskedParams are query parameter names whose values never reach a log line.
var maskedParams = []string{"auth_key", "api_key", "key", "password", "token", "secret"}

// Response is the structured result of one backend call. A well-formed 4xx
// (other than 429) lands here with a nil error because it is a caller error,
// not a transient fault.
type Response struct {
	StatusCode int            `json:"status_code"`
	RawBody    []byte         `json:"raw_body"`
	Parsed     map[string]any `json:"parsed,omitempty"`
}

// Client is the shared HTTP base every adapter builds on. Transport errors,
// 5xx and 429 are retried with exponential backoff up to a small fixed bound;
// everything else returns immediately.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	attempts   uint
}

type ClientOption func(*Client)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithAttempts(attempts uint) ClientOption {
	return func(c *Client) {
		c.attempts = attempts
	}
}

func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		attempts:   defaultAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (Response, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (Response, error) {
	return c.do(ctx, http.MethodPost, path, nil, func() (io.Reader, string) {
		return bytes.NewBufferString(form.Encode()), "application/x-www-form-urlencoded"
	})
}

func (c *Client) PostJSON(ctx context.Context, path string, body any) (Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("Client::PostJSON(): fail to marshal body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, func() (io.Reader, string) {
		return bytes.NewReader(raw), "application/json"
	})
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body func() (io.Reader, string)) (Response, error) {
	endPoint := c.baseURL + path
	if len(query) > 0 {
		endPoint += "?" + query.Encode()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Response{}, err
		}
	}

	var result Response
	err := retry.Do(
		func() error {
			var reader io.Reader
			var contentType string
			if body != nil {
				reader, contentType = body()
			}
			req, err := http.NewRequestWithContext(ctx, method, endPoint, reader)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if contentType != "" {
				req.Header.Set("Content-Type", contentType)
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				logrus.Debugf("request %s %s: %v", method, MaskURL(endPoint), err)
				return err
			}
			defer func() { _ = resp.Body.Close() }()

			rawBody, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}

			if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
				logrus.Debugf("request %s %s returned %d", method, MaskURL(endPoint), resp.StatusCode)
				return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			}

			result = Response{StatusCode: resp.StatusCode, RawBody: rawBody}
			parsed := map[string]any{}
			if json.Unmarshal(rawBody, &parsed) == nil {
				result.Parsed = parsed
			}
			return nil
		},
		retry.Attempts(c.attempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if ctx.Err() != nil {
		return Response{}, ctx.Err()
	}
	if err != nil {
		return Response{}, fmt.Errorf("request %s %s exceeded retries: %s%w", method, MaskURL(endPoint), err, model.ErrProviderUnreachable)
	}

	return result, nil
}

// MaskURL replaces credential-bearing query parameter values before a URL is
// written to any log or activity entry.
func MaskURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	changed := false
	for _, name := range maskedParams {
		if query.Has(name) {
			query.Set(name, "***")
			changed = true
		}
	}
	if changed {
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}
