// Package render turns the engine's change spans and the highlighter's style
// spans into styled terminal output.
package render

import "glint/internal/diff"

// Palette holds the change-emphasis colors layered under the syntax
// foreground, plus the decoration colors for pass-through lines. Backgrounds
// are hex strings; an empty string means no background.
type Palette struct {
	RemovedBg     string // whole removed lines
	RemovedEmphBg string // changed spans within a paired removed line
	AddedBg       string // whole added lines
	AddedEmphBg   string // changed spans within a paired added line
	HunkHeaderFg  string
}

// DefaultPalette returns the stock dark palette.
func DefaultPalette() Palette {
	return Palette{
		RemovedBg:     "#3f0001",
		RemovedEmphBg: "#901011",
		AddedBg:       "#002800",
		AddedEmphBg:   "#006000",
		HunkHeaderFg:  "#00afaf",
	}
}

// lineBackgrounds returns the base and emphasis backgrounds for a line kind.
// Context and pass-through kinds carry no background at all.
func (p Palette) lineBackgrounds(kind diff.Kind) (base, emph string) {
	switch kind {
	case diff.Removed:
		return p.RemovedBg, p.RemovedEmphBg
	case diff.Added:
		return p.AddedBg, p.AddedEmphBg
	default:
		return "", ""
	}
}
