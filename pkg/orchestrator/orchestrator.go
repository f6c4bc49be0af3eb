// Package orchestrator coordinates the full pipeline from content table
// to assembled homepage. It applies sensible defaults (built-in loader,
// Twitter/Instagram providers, embedded templates) while remaining open
// to dependency injection for advanced callers.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	internalLoader "github.com/maiamcc/not-my-locker-room/internal/content/loader"
	"github.com/maiamcc/not-my-locker-room/pkg/content"
	"github.com/maiamcc/not-my-locker-room/pkg/fragment"
	"github.com/maiamcc/not-my-locker-room/pkg/oembed"
	"github.com/maiamcc/not-my-locker-room/pkg/page"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithContentLoader injects a custom content table loader.
func WithContentLoader(loader content.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithTemplateLoader injects a custom raw loader for page templates.
func WithTemplateLoader(loader content.RawLoader) Option {
	return func(o *Orchestrator) {
		o.templateLoader = loader
	}
}

// WithFragmentBuilder injects a custom fragment builder.
func WithFragmentBuilder(builder *fragment.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithProviders injects the oEmbed provider registry the default builder
// dispatches through.
func WithProviders(providers *oembed.Registry) Option {
	return func(o *Orchestrator) {
		o.providers = providers
	}
}

// WithHTTPClient injects the HTTP client shared by the default providers
// and the loader's URL sources.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Orchestrator) {
		o.httpClient = client
	}
}

// WithRequestTimeout caps each remote fetch. Zero means no timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		o.timeout = timeout
	}
}

// WithLogger injects the logger progress and skip diagnostics are
// reported through.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator drives loader → fragment builder → page assembler. Rows
// are processed strictly in file order, one at a time; a row's fetch does
// not begin until the previous row has fully resolved.
type Orchestrator struct {
	loader         content.Loader
	templateLoader content.RawLoader
	builder        *fragment.Builder
	providers      *oembed.Registry
	httpClient     *http.Client
	timeout        time.Duration
	logger         *slog.Logger

	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so
// callers can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to generate a page.
type Request struct {
	// ContentSource identifies where the content table lives. Optional
	// when Rows is supplied.
	ContentSource content.Source

	// Rows allows callers to bypass the loader when they already have the
	// parsed table.
	Rows []content.Row

	// TemplateSource identifies where the page template lives. Optional
	// when Template is supplied.
	TemplateSource content.Source

	// Template allows callers to bypass loading with a pre-validated
	// template.
	Template *page.Template
}

// Generate executes the loader → fragment builder → page assembler
// sequence and returns the assembled page bytes. Per-row failures are
// logged and excluded; they never abort the run.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	tmpl, err := o.resolveTemplate(ctx, req)
	if err != nil {
		return nil, err
	}

	rows, err := o.resolveRows(ctx, req)
	if err != nil {
		return nil, err
	}
	o.logger.Info("loaded content rows", slog.Int("count", len(rows)))

	results := make([]fragment.Result, 0, len(rows))
	for i, row := range rows {
		o.logger.Info("processing content row",
			slog.Int("row", i+1),
			slog.Int("total", len(rows)))
		results = append(results, o.builder.Build(ctx, row))
	}

	assembled := page.Assemble(tmpl, fragment.Fragments(results))
	return []byte(assembled), nil
}

// GenerateToFile generates the page and writes it to outPath,
// overwriting any existing file.
func (o *Orchestrator) GenerateToFile(ctx context.Context, req Request, outPath string) error {
	if outPath == "" {
		return errors.New("orchestrator: output path is required")
	}

	output, err := o.Generate(ctx, req)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, output, 0o644); err != nil {
		return fmt.Errorf("orchestrator: write output: %w", err)
	}
	o.logger.Info("wrote generated page", slog.String("path", outPath))
	return nil
}

func (o *Orchestrator) resolveRows(ctx context.Context, req Request) ([]content.Row, error) {
	if req.Rows != nil {
		return req.Rows, nil
	}
	if req.ContentSource == nil {
		return nil, errors.New("orchestrator: content source or rows are required")
	}
	rows, err := o.loader.Load(ctx, req.ContentSource)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load content table: %w", err)
	}
	return rows, nil
}

func (o *Orchestrator) resolveTemplate(ctx context.Context, req Request) (*page.Template, error) {
	if req.Template != nil {
		return req.Template, nil
	}
	if req.TemplateSource == nil {
		return nil, errors.New("orchestrator: template source or template is required")
	}
	raw, err := o.templateLoader.LoadRaw(ctx, req.TemplateSource)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load page template: %w", err)
	}
	tmpl, err := page.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return tmpl, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	if o.loader == nil || o.templateLoader == nil {
		loader := internalLoader.New(content.NewLoaderOptions(
			content.WithHTTPClient(o.httpClient),
			content.WithHTTPFallback(o.timeout),
		))
		if o.loader == nil {
			o.loader = loader
		}
		if o.templateLoader == nil {
			o.templateLoader = loader
		}
	}

	if o.builder == nil {
		if o.providers == nil {
			var providerOptions []oembed.Option
			if o.httpClient != nil {
				providerOptions = append(providerOptions, oembed.WithHTTPClient(o.httpClient))
			}
			if o.timeout > 0 {
				providerOptions = append(providerOptions, oembed.WithRequestTimeout(o.timeout))
			}
			o.providers = oembed.DefaultRegistry(providerOptions...)
		}
		builder, err := fragment.NewBuilder(
			fragment.WithProviders(o.providers),
			fragment.WithLogger(o.logger),
		)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default fragment builder: %w", err)
		} else {
			o.builder = builder
		}
	}

	o.defaultsApplied = true
}
