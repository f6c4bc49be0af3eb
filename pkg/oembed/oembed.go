// Package oembed resolves content URLs into ready-to-embed HTML markup by
// querying the provider's oEmbed endpoint. Providers issue a single
// blocking GET per lookup; there is no retry, backoff, or caching.
package oembed

import (
	"context"
	"fmt"

	"github.com/maiamcc/not-my-locker-room/pkg/content"
)

// Provider turns a content URL into an embeddable HTML snippet.
type Provider interface {
	// Name identifies the provider in diagnostics.
	Name() string

	// ContentType reports which content rows this provider serves.
	ContentType() content.Type

	// Resolve fetches the embed markup for the given content URL. Failures
	// are *StatusError for non-2xx responses and *DecodeError for
	// unusable 200 bodies.
	Resolve(ctx context.Context, contentURL string) (string, error)
}

// StatusError reports a non-200 response from an oEmbed endpoint.
type StatusError struct {
	Provider   string
	ContentURL string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("oembed: request to %s endpoint for content %q failed with status code %d, message %s",
		e.Provider, e.ContentURL, e.StatusCode, e.Body)
}

// DecodeError reports a 200 response whose body could not be decoded or
// was missing the embed markup.
type DecodeError struct {
	Provider   string
	ContentURL string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("oembed: %s response for content %q: %v", e.Provider, e.ContentURL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
