package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"glint/internal/render"
)

// colorsCmd prints one sample line per palette role so the active colors can
// be checked in the terminal they will actually render in.
func colorsCmd() {
	lipgloss.SetColorProfile(termenv.TrueColor)
	pal := render.DefaultPalette()

	rows := []struct {
		name string
		fg   string
		bg   string
	}{
		{"removed line", "", pal.RemovedBg},
		{"removed emphasis", "", pal.RemovedEmphBg},
		{"added line", "", pal.AddedBg},
		{"added emphasis", "", pal.AddedEmphBg},
		{"hunk header", pal.HunkHeaderFg, ""},
	}

	for _, row := range rows {
		st := lipgloss.NewStyle()
		if row.fg != "" {
			st = st.Foreground(lipgloss.Color(row.fg))
		}
		if row.bg != "" {
			st = st.Background(lipgloss.Color(row.bg))
		}
		fmt.Printf("%-18s %s\n", row.name, st.Render("the quick brown fox"))
	}
}
