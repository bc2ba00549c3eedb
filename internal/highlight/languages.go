package highlight

import (
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/sahilm/fuzzy"
)

// Languages returns the names of all known lexers, sorted.
func Languages() []string {
	return lexers.Names(false)
}

// Themes returns the names of all known syntax styles, sorted.
func Themes() []string {
	return chromastyles.Names()
}

// Known reports whether a lexer exists for the given language name or alias.
func Known(lang string) bool {
	return lexers.Get(lang) != nil
}

// Suggest returns up to max language names fuzzy-matching the query,
// best matches first. Aliases are included, so "golang" finds "Go".
func Suggest(query string, max int) []string {
	matches := fuzzy.Find(query, lexers.Names(true))
	if len(matches) > max {
		matches = matches[:max]
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Str
	}
	return names
}
