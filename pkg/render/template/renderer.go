// Package template defines the renderer-agnostic template seam the
// fragment pipeline renders through.
package template

// TemplateRenderer abstracts the template engine so fragment rendering can
// swap implementations (or stubs in tests) without touching the pipeline.
type TemplateRenderer interface {
	// RenderTemplate renders a named template from the engine's bundle.
	RenderTemplate(name string, data map[string]any) (string, error)

	// RenderString renders inline template content.
	RenderString(templateContent string, data map[string]any) (string, error)
}
