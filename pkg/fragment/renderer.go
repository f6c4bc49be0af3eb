package fragment

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/maiamcc/not-my-locker-room/pkg/content"
	rendertemplate "github.com/maiamcc/not-my-locker-room/pkg/render/template"
	"github.com/maiamcc/not-my-locker-room/pkg/render/template/gotemplate"
)

// RendererOption customises renderer construction.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) RendererOption {
	return func(cfg *rendererConfig) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) RendererOption {
	return func(cfg *rendererConfig) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) RendererOption {
	return func(cfg *rendererConfig) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces fragment markup from the embedded template bundle.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// NewRenderer constructs a Renderer applying any provided options.
func NewRenderer(options ...RendererOption) (*Renderer, error) {
	cfg := rendererConfig{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("fragment renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

// Container wraps body markup in the content container element tagged with
// the row's content type class.
func (r *Renderer) Container(contentType content.Type, body string) (Fragment, error) {
	result, err := r.templates.RenderTemplate("templates/container.tmpl", map[string]any{
		"type": string(contentType),
		"body": body,
	})
	if err != nil {
		return "", fmt.Errorf("fragment renderer: render container: %w", err)
	}
	return Fragment(result), nil
}

// Website renders the two-line quote block for a website row.
func (r *Renderer) Website(url, quote string) (string, error) {
	result, err := r.templates.RenderTemplate("templates/website.tmpl", map[string]any{
		"url":   url,
		"quote": quote,
	})
	if err != nil {
		return "", fmt.Errorf("fragment renderer: render website block: %w", err)
	}
	return result, nil
}
