package oembed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Option customises provider construction.
type Option func(*client)

// WithHTTPClient injects a custom HTTP client (timeouts, proxies,
// transports for tests).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithRequestTimeout caps each oEmbed lookup. Zero means no timeout,
// matching the historical behaviour of the tool.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *client) {
		c.timeout = timeout
	}
}

// WithEndpoint overrides the provider's endpoint template. The template
// must contain a single %s where the content URL is interpolated; tests
// use this to point providers at local servers.
func WithEndpoint(endpoint string) Option {
	return func(c *client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// client carries the fetch machinery shared by every provider.
type client struct {
	http     *http.Client
	timeout  time.Duration
	endpoint string
}

func newClient(endpoint string, options ...Option) client {
	c := client{
		http:     &http.Client{},
		endpoint: endpoint,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&c)
	}
	return c
}

// payload is the subset of the oEmbed response the generator consumes.
type payload struct {
	HTML string `json:"html"`
}

// fetch GETs the interpolated endpoint and unwraps the html field.
func (c client) fetch(ctx context.Context, provider, contentURL, queryURL string) (string, error) {
	reqCtx := ctx
	var cancel context.CancelFunc
	if c.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, queryURL, nil)
	if err != nil {
		return "", fmt.Errorf("oembed: build %s request for content %q: %w", provider, contentURL, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("oembed: %s request for content %q: %w", provider, contentURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("oembed: read %s response for content %q: %w", provider, contentURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{
			Provider:   provider,
			ContentURL: contentURL,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var result payload
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &DecodeError{Provider: provider, ContentURL: contentURL, Err: err}
	}
	if result.HTML == "" {
		return "", &DecodeError{Provider: provider, ContentURL: contentURL, Err: errors.New("response is missing the html field")}
	}

	return result.HTML, nil
}
