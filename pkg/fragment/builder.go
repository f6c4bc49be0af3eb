package fragment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maiamcc/not-my-locker-room/pkg/content"
	"github.com/maiamcc/not-my-locker-room/pkg/oembed"
)

// BuilderOption customises builder construction.
type BuilderOption func(*Builder)

// WithProviders injects the oEmbed provider registry used for embedded
// content types.
func WithProviders(providers *oembed.Registry) BuilderOption {
	return func(b *Builder) {
		if providers != nil {
			b.providers = providers
		}
	}
}

// WithRenderer injects the fragment renderer.
func WithRenderer(renderer *Renderer) BuilderOption {
	return func(b *Builder) {
		if renderer != nil {
			b.renderer = renderer
		}
	}
}

// WithLogger injects the logger skip reasons and fetch failures are
// reported through.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Builder turns one content row at a time into a Result, consulting the
// provider registry for embedded types and the renderer for markup.
type Builder struct {
	providers *oembed.Registry
	renderer  *Renderer
	logger    *slog.Logger
}

// NewBuilder constructs a Builder. Missing dependencies are initialised
// with the built-in implementations.
func NewBuilder(options ...BuilderOption) (*Builder, error) {
	b := &Builder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}

	if b.providers == nil {
		b.providers = oembed.DefaultRegistry()
	}
	if b.renderer == nil {
		renderer, err := NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("fragment builder: %w", err)
		}
		b.renderer = renderer
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b, nil
}

// Build resolves a single row. Invalid rows and failed fetches produce a
// skipped Result with the reason logged; they never abort the batch. No
// network call is attempted for rows that fail validation.
func (b *Builder) Build(ctx context.Context, row content.Row) Result {
	if row.Type == "" {
		return b.skip(row, "no content type provided")
	}
	if !row.Type.Valid() {
		return b.skip(row, fmt.Sprintf("unrecognized content type %q", row.Type))
	}

	if row.Type.Embedded() {
		return b.buildEmbedded(ctx, row)
	}
	return b.buildWebsite(row)
}

func (b *Builder) buildEmbedded(ctx context.Context, row content.Row) Result {
	if row.URL == "" {
		return b.skip(row, "no url provided")
	}

	provider, err := b.providers.Get(row.Type)
	if err != nil {
		return b.skip(row, fmt.Sprintf("unrecognized content type %q", row.Type))
	}

	embedCode, err := provider.Resolve(ctx, row.URL)
	if err != nil {
		b.logger.Warn("embed fetch failed, skipping row",
			slog.String("row", row.String()),
			slog.String("error", err.Error()))
		return SkipWithError("embed fetch failed", err)
	}

	wrapped, err := b.renderer.Container(row.Type, embedCode)
	if err != nil {
		b.logger.Warn("fragment render failed, skipping row",
			slog.String("row", row.String()),
			slog.String("error", err.Error()))
		return SkipWithError("fragment render failed", err)
	}
	return Rendered(wrapped)
}

func (b *Builder) buildWebsite(row content.Row) Result {
	if row.URL == "" {
		return b.skip(row, "no url provided")
	}
	if row.Quote == "" {
		return b.skip(row, "no quote provided")
	}

	body, err := b.renderer.Website(row.URL, row.Quote)
	if err != nil {
		b.logger.Warn("fragment render failed, skipping row",
			slog.String("row", row.String()),
			slog.String("error", err.Error()))
		return SkipWithError("fragment render failed", err)
	}

	wrapped, err := b.renderer.Container(content.TypeWebsite, body)
	if err != nil {
		b.logger.Warn("fragment render failed, skipping row",
			slog.String("row", row.String()),
			slog.String("error", err.Error()))
		return SkipWithError("fragment render failed", err)
	}
	return Rendered(wrapped)
}

func (b *Builder) skip(row content.Row, reason string) Result {
	b.logger.Warn("skipping content row",
		slog.String("row", row.String()),
		slog.String("reason", reason))
	return Skip(reason)
}
