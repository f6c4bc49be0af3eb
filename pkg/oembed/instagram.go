package oembed

import (
	"context"
	"errors"
	"fmt"

	"github.com/maiamcc/not-my-locker-room/pkg/content"
)

// InstagramEndpoint is the api.instagram.com oEmbed endpoint template.
const InstagramEndpoint = "https://api.instagram.com/oembed/?url=%s"

// Instagram resolves post URLs through the Instagram oEmbed API.
type Instagram struct {
	client client
}

var _ Provider = (*Instagram)(nil)

// NewInstagram constructs the Instagram provider.
func NewInstagram(options ...Option) *Instagram {
	return &Instagram{client: newClient(InstagramEndpoint, options...)}
}

func (i *Instagram) Name() string {
	return "Instagram"
}

func (i *Instagram) ContentType() content.Type {
	return content.TypeInstagram
}

// Resolve fetches the embed markup for a post. Unlike the Twitter
// provider, the content URL is interpolated without percent-encoding;
// the asymmetry is inherited from the endpoint's historical behaviour
// and kept on purpose.
func (i *Instagram) Resolve(ctx context.Context, contentURL string) (string, error) {
	if contentURL == "" {
		return "", errors.New("oembed: instagram content url is required")
	}
	queryURL := fmt.Sprintf(i.client.endpoint, contentURL)
	return i.client.fetch(ctx, i.Name(), contentURL, queryURL)
}
