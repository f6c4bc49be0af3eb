package page

import (
	"strings"

	"github.com/maiamcc/not-my-locker-room/pkg/fragment"
)

// Separator is the blank line inserted between fragments.
const Separator = "\n\n"

// Assemble joins rendered fragments with a blank line in row order,
// doubles any literal marker characters inside fragment content, and
// substitutes the block into the template's placeholder. Zero fragments
// substitute an empty string.
func Assemble(tmpl *Template, fragments []fragment.Fragment) string {
	escaped := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		escaped = append(escaped, escapeMarkers(string(frag)))
	}
	return tmpl.Substitute(strings.Join(escaped, Separator))
}

// escapeMarkers doubles the marker character so fragment content can
// never be misread as a substitution directive. The doubled bytes survive
// into the final page, matching the original generator.
func escapeMarkers(s string) string {
	return strings.ReplaceAll(s, string(Marker), string(Marker)+string(Marker))
}
