package recommendation

import "strings"

// genrePlaceholder is replaced with the book's genre when a reason is rendered.
const genrePlaceholder = "{genre}"

const defaultReasonTemplate = "Because you rate {genre} highly"

// ReasonTable maps a genre to the template explaining why it was ranked where it was.
// Genres without an entry use the default template.
type ReasonTable struct {
	Default   string
	Templates map[string]string
}

func DefaultReasons() ReasonTable {
	return ReasonTable{
		Default: defaultReasonTemplate,
		Templates: map[string]string{
			"Fantasy": "Dialed down because you rate {genre} lower",
		},
	}
}

func (t ReasonTable) For(genre string) string {
	tmpl, ok := t.Templates[genre]
	if !ok {
		tmpl = t.Default
	}
	if tmpl == "" {
		tmpl = defaultReasonTemplate
	}
	return strings.ReplaceAll(tmpl, genrePlaceholder, genre)
}
