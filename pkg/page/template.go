// Package page validates page templates and assembles the final page from
// rendered fragments.
package page

import (
	"fmt"
	"strings"
)

// Marker is the substitution marker character used by page templates.
const Marker = '%'

// Placeholder is the single-point substitution sequence a page template
// must contain exactly once.
const Placeholder = "%s"

// TemplateError reports a page template that violates the placeholder
// contract.
type TemplateError struct {
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("page: invalid template: %s", e.Reason)
}

// Template is a page template whose placeholder count has been validated
// up front: exactly one %s, with %% accepted as a literal marker. Any
// other marker directive is rejected instead of producing undefined
// output.
type Template struct {
	text string
}

// Parse validates template text and returns a Template ready for
// substitution.
func Parse(text string) (*Template, error) {
	placeholders := 0
	for i := 0; i < len(text); i++ {
		if text[i] != Marker {
			continue
		}
		if i+1 >= len(text) {
			return nil, &TemplateError{Reason: "dangling marker at end of template"}
		}
		switch text[i+1] {
		case 's':
			placeholders++
		case byte(Marker):
			// literal marker, consumed below
		default:
			return nil, &TemplateError{Reason: fmt.Sprintf("unsupported directive %%%c", text[i+1])}
		}
		i++
	}

	if placeholders != 1 {
		return nil, &TemplateError{Reason: fmt.Sprintf("template must contain exactly one %s placeholder, found %d", Placeholder, placeholders)}
	}

	return &Template{text: text}, nil
}

// MustParse panics on invalid template text. Useful in tests.
func MustParse(text string) *Template {
	tmpl, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Substitute inserts block at the placeholder and resolves %% escapes in
// the template text. The block itself is inserted verbatim and never
// rescanned for directives.
func (t *Template) Substitute(block string) string {
	var out strings.Builder
	out.Grow(len(t.text) + len(block))

	for i := 0; i < len(t.text); i++ {
		if t.text[i] != Marker {
			out.WriteByte(t.text[i])
			continue
		}
		switch t.text[i+1] {
		case 's':
			out.WriteString(block)
		case byte(Marker):
			out.WriteByte(byte(Marker))
		}
		i++
	}

	return out.String()
}
