package content

import "strings"

// Column names recognized in the content table. Any other columns are
// carried by the CSV header but ignored by the pipeline.
const (
	ColumnType  = "type"
	ColumnURL   = "url"
	ColumnQuote = "quote"
)

// Type enumerates the kinds of content a row can reference.
type Type string

const (
	TypeTwitter   Type = "twitter"
	TypeInstagram Type = "instagram"
	TypeWebsite   Type = "website"
)

// Types lists every recognized content type.
func Types() []Type {
	return []Type{TypeTwitter, TypeInstagram, TypeWebsite}
}

// Valid reports whether t is one of the recognized content types.
func (t Type) Valid() bool {
	switch t {
	case TypeTwitter, TypeInstagram, TypeWebsite:
		return true
	default:
		return false
	}
}

// Embedded reports whether t resolves through a remote oEmbed endpoint
// rather than rendering locally.
func (t Type) Embedded() bool {
	return t == TypeTwitter || t == TypeInstagram
}

// Row is one entry of the content table. Rows are produced in file order
// and are never mutated after loading; validation happens downstream in
// the fragment builder, not here.
type Row struct {
	Type  Type
	URL   string
	Quote string
}

// String renders the row for diagnostics, mirroring the shape skip
// messages quote back to the operator.
func (r Row) String() string {
	var b strings.Builder
	b.WriteString("{type:")
	b.WriteString(string(r.Type))
	b.WriteString(" url:")
	b.WriteString(r.URL)
	if r.Quote != "" {
		b.WriteString(" quote:")
		b.WriteString(r.Quote)
	}
	b.WriteString("}")
	return b.String()
}
