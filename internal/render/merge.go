package render

import (
	"glint/internal/diff"
	"glint/internal/highlight"
)

// MergedSpan is one byte range of a line carrying both its syntax style and
// its change emphasis, ready for the emitter. The two channels are layered:
// the highlighter supplies the foreground and weight, the change
// classification supplies the background, and neither overrides the other.
type MergedSpan struct {
	Start     int
	End       int
	Color     string // foreground, from the highlighter
	Bold      bool
	Italic    bool
	Underline bool
	Bg        string // background emphasis; empty for none
}

// Merge intersects a line's change partition with its syntax partition and
// returns spans that cover the line exactly once, with no gaps or overlaps,
// even when the two input partitions' boundaries do not align. The result is
// built fresh per line, never cached.
//
// edits may be nil: for a context line, or for one side of an unpaired
// insertion or deletion, the result is the style partition with the line
// kind's uniform background. When edits are present, changed spans get the
// emphasis background and unchanged spans the base background.
func Merge(lineLen int, kind diff.Kind, edits []diff.EditSpan, styles []highlight.StyleSpan, pal Palette) []MergedSpan {
	baseBg, emphBg := pal.lineBackgrounds(kind)
	if len(styles) == 0 {
		styles = []highlight.StyleSpan{{End: lineLen}}
	}

	if edits == nil {
		out := make([]MergedSpan, 0, len(styles))
		for _, s := range styles {
			out = append(out, combine(s.Start, s.End, s, baseBg))
		}
		return out
	}

	if lineLen == 0 {
		return []MergedSpan{combine(0, 0, styles[0], baseBg)}
	}

	var out []MergedSpan
	pos := 0
	for i, j := 0, 0; i < len(edits) && j < len(styles); {
		e, s := edits[i], styles[j]
		end := min(e.End, s.End)
		if end > pos {
			bg := baseBg
			if e.Changed {
				bg = emphBg
			}
			out = append(out, combine(pos, end, s, bg))
			pos = end
		}
		// Advance whichever partition's current span ends first; both when
		// the boundaries coincide. The sweep always advances, so no byte
		// range is ever emitted twice.
		if e.End == end {
			i++
		}
		if s.End == end {
			j++
		}
	}
	return out
}

func combine(start, end int, s highlight.StyleSpan, bg string) MergedSpan {
	return MergedSpan{
		Start:     start,
		End:       end,
		Color:     s.Color,
		Bold:      s.Bold,
		Italic:    s.Italic,
		Underline: s.Underline,
		Bg:        bg,
	}
}
