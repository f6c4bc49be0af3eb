package oembed

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/maiamcc/not-my-locker-room/pkg/content"
)

// TwitterEndpoint is the publish.twitter.com oEmbed endpoint template. The
// content URL is percent-encoded before interpolation.
const TwitterEndpoint = "https://publish.twitter.com/oembed?url=%s"

// Twitter resolves tweet URLs through the Twitter oEmbed API.
type Twitter struct {
	client client
}

var _ Provider = (*Twitter)(nil)

// NewTwitter constructs the Twitter provider.
func NewTwitter(options ...Option) *Twitter {
	return &Twitter{client: newClient(TwitterEndpoint, options...)}
}

func (t *Twitter) Name() string {
	return "Twitter"
}

func (t *Twitter) ContentType() content.Type {
	return content.TypeTwitter
}

// Resolve fetches the embed markup for a tweet.
func (t *Twitter) Resolve(ctx context.Context, contentURL string) (string, error) {
	if contentURL == "" {
		return "", errors.New("oembed: twitter content url is required")
	}
	queryURL := fmt.Sprintf(t.client.endpoint, url.QueryEscape(contentURL))
	return t.client.fetch(ctx, t.Name(), contentURL, queryURL)
}
