// Package homegen generates the www.notmylockerroom.com homepage from a
// CSV of content references, fetching embed markup for social rows
// through the provider oEmbed APIs and substituting the joined fragments
// into a single-placeholder page template.
package homegen

import (
	"context"
	"strings"

	"github.com/maiamcc/not-my-locker-room/pkg/content"
	"github.com/maiamcc/not-my-locker-room/pkg/fragment"
	"github.com/maiamcc/not-my-locker-room/pkg/orchestrator"
	"github.com/maiamcc/not-my-locker-room/pkg/page"
)

// Row aliases content.Row, exported via the root package for convenience.
type Row = content.Row

// Result aliases the per-row fragment outcome.
type Result = fragment.Result

// Request aliases the orchestrator request.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the content table and page template, resolves every row
// into a fragment, and returns the assembled page. It is the simplest
// entry point for callers that just want the page bytes.
func Generate(ctx context.Context, contentSrc, templateSrc content.Source, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		ContentSource:  contentSrc,
		TemplateSource: templateSrc,
	})
}

// GenerateFromRows renders a page using pre-loaded rows and a
// pre-validated template, bypassing the loader stage while still
// delegating to the orchestrator.
func GenerateFromRows(ctx context.Context, rows []content.Row, tmpl *page.Template, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Rows:     rows,
		Template: tmpl,
	})
}

// ParseSource maps a raw location onto a content.Source: http(s)
// locations become URL sources, everything else a file path. Empty input
// returns nil.
func ParseSource(raw string) content.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return content.SourceFromURL(path)
	}
	return content.SourceFromFile(path)
}
