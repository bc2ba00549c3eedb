package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// Chroma is the production Highlighter, backed by the chroma lexer library.
// Lexers are cached per language name since the pipeline highlights one line
// at a time.
type Chroma struct {
	style  *chroma.Style
	lexers map[string]chroma.Lexer
}

// NewChroma returns a Highlighter using the named chroma style, falling back
// to the default style when the name is unknown.
func NewChroma(styleName string) *Chroma {
	style := chromastyles.Get(styleName)
	if style == nil {
		style = chromastyles.Fallback
	}
	return &Chroma{style: style, lexers: make(map[string]chroma.Lexer)}
}

func (c *Chroma) lexer(lang string) chroma.Lexer {
	if lx, ok := c.lexers[lang]; ok {
		return lx
	}
	lx := lexers.Get(lang)
	if lx == nil {
		lx = lexers.Fallback
	}
	lx = chroma.Coalesce(lx)
	c.lexers[lang] = lx
	return lx
}

// Highlight tokenizes one line and returns its style partition. Lexer errors
// and unaccounted-for trailing bytes degrade to the default style rather
// than failing: the partition always covers the line exactly.
func (c *Chroma) Highlight(line []byte, lang string) []StyleSpan {
	if len(line) == 0 {
		return []StyleSpan{{}}
	}
	it, err := c.lexer(lang).Tokenise(nil, string(line))
	if err != nil {
		return []StyleSpan{{End: len(line)}}
	}

	var spans []StyleSpan
	pos := 0
	for tok := it(); tok != chroma.EOF && pos < len(line); tok = it() {
		n := len(tok.Value)
		if n == 0 {
			continue
		}
		// Many lexers append a newline to their input (EnsureNL); clamp so
		// the final token cannot overrun the line.
		if pos+n > len(line) {
			n = len(line) - pos
		}
		entry := c.style.Get(tok.Type)
		span := StyleSpan{
			Start:     pos,
			End:       pos + n,
			Bold:      entry.Bold == chroma.Yes,
			Italic:    entry.Italic == chroma.Yes,
			Underline: entry.Underline == chroma.Yes,
		}
		if entry.Colour.IsSet() {
			span.Color = entry.Colour.String()
		}
		spans = append(spans, span)
		pos += n
	}
	if pos < len(line) {
		spans = append(spans, StyleSpan{Start: pos, End: len(line)})
	}
	return spans
}
