package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"glint/internal/diff"
)

// Emitter serializes styled spans and pass-through lines to the output sink.
// It buffers exactly one line of output at a time; a failed write is
// propagated immediately, never retried, so the caller can stop consuming
// input as soon as the downstream sink goes away.
type Emitter struct {
	w     io.Writer
	pal   Palette
	width int // pad changed-line backgrounds to this display width; 0 disables
	buf   bytes.Buffer
}

// NewEmitter returns an Emitter writing through w.
func NewEmitter(w io.Writer, pal Palette, width int) *Emitter {
	return &Emitter{w: w, pal: pal, width: width}
}

// Palette returns the palette the emitter renders with.
func (e *Emitter) Palette() Palette { return e.pal }

// EmitPassthrough writes a header, hunk header, or unrecognized line. Headers
// are bold, hunk headers take the palette's hunk color, and anything else
// goes out verbatim.
func (e *Emitter) EmitPassthrough(kind diff.Kind, line []byte) error {
	e.buf.Reset()
	switch kind {
	case diff.Header:
		e.buf.WriteString(lipgloss.NewStyle().Bold(true).Render(string(line)))
	case diff.HunkHeader:
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(e.pal.HunkHeaderFg))
		e.buf.WriteString(st.Render(string(line)))
	default:
		e.buf.Write(line)
	}
	e.buf.WriteByte('\n')
	_, err := e.w.Write(e.buf.Bytes())
	return err
}

// EmitSpans writes one annotated content line: each span's bytes wrapped in
// its style, with the style reset at every span boundary. Removed and added
// lines have their background padded out to the configured width.
func (e *Emitter) EmitSpans(line []byte, kind diff.Kind, spans []MergedSpan) error {
	e.buf.Reset()
	for _, s := range spans {
		if s.End <= s.Start {
			continue
		}
		e.buf.WriteString(styleFor(s).Render(string(line[s.Start:s.End])))
	}
	if e.width > 0 && (kind == diff.Removed || kind == diff.Added) {
		if pad := e.width - runewidth.StringWidth(string(line)); pad > 0 {
			bg, _ := e.pal.lineBackgrounds(kind)
			st := lipgloss.NewStyle().Background(lipgloss.Color(bg))
			e.buf.WriteString(st.Render(strings.Repeat(" ", pad)))
		}
	}
	e.buf.WriteByte('\n')
	_, err := e.w.Write(e.buf.Bytes())
	return err
}

func styleFor(s MergedSpan) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Color != "" {
		st = st.Foreground(lipgloss.Color(s.Color))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Bg != "" {
		st = st.Background(lipgloss.Color(s.Bg))
	}
	return st
}
