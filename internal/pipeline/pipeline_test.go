package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"glint/internal/highlight"
	"glint/internal/pager"
	"glint/internal/render"
)

// stubHighlighter returns a single default span per line and records the
// languages it was asked for.
type stubHighlighter struct {
	langs []string
}

func (s *stubHighlighter) Highlight(line []byte, lang string) []highlight.StyleSpan {
	s.langs = append(s.langs, lang)
	return []highlight.StyleSpan{{End: len(line)}}
}

func runPlain(t *testing.T, input string, opts Options) string {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	var buf bytes.Buffer
	p := New(&stubHighlighter{}, render.NewEmitter(&buf, render.DefaultPalette(), 0), opts)
	if err := p.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return buf.String()
}

const sampleDiff = `diff --git a/main.go b/main.go
index 83db48f..bf269f4 100644
--- a/main.go
+++ b/main.go
@@ -1,3 +1,3 @@
 package main
-foo = 1
+foo = 2
 // done
`

func TestRunPreservesDocumentOrder(t *testing.T) {
	got := runPlain(t, sampleDiff, Options{MinSimilarity: 0.3})
	want := `diff --git a/main.go b/main.go
index 83db48f..bf269f4 100644
--- a/main.go
+++ b/main.go
@@ -1,3 +1,3 @@
package main
foo = 1
foo = 2
// done
`
	if got != want {
		t.Errorf("output =\n%q\nwant\n%q", got, want)
	}
}

func TestRunInterleavedContextKeepsOrder(t *testing.T) {
	input := "@@ -1,3 +1,3 @@\n-a\n ctx\n+b\n"
	got := runPlain(t, input, Options{})
	want := "@@ -1,3 +1,3 @@\na\nctx\nb\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunRemovedBlockBeforeAddedBlock(t *testing.T) {
	input := "@@ -1,2 +1,2 @@\n-r1\n+a1\n-r2\n+a2\n"
	got := runPlain(t, input, Options{})
	want := "@@ -1,2 +1,2 @@\nr1\nr2\na1\na2\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunUnrecognizedLinesVerbatim(t *testing.T) {
	input := "random prose\n\\ No newline at end of file\n"
	got := runPlain(t, input, Options{})
	if got != input {
		t.Errorf("output = %q, want input unchanged", got)
	}
}

func TestRunExpandsTabs(t *testing.T) {
	input := "@@ -1 +1 @@\n+\tindented\n"
	got := runPlain(t, input, Options{TabWidth: 4})
	want := "@@ -1 +1 @@\n    indented\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunMissingFinalNewline(t *testing.T) {
	got := runPlain(t, "@@ -1 +0,0 @@\n-last", Options{})
	want := "@@ -1 +0,0 @@\nlast\n"
	if got != want {
		t.Errorf("output = %q, want trailing hunk flushed at EOF", got)
	}
}

func TestRunDetectsLanguageFromHeaders(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	var buf bytes.Buffer
	hl := &stubHighlighter{}
	p := New(hl, render.NewEmitter(&buf, render.DefaultPalette(), 0), Options{})
	input := "--- a/main.go\n+++ b/main.go\n@@ -1 +1 @@\n-x := 1\n+x := 2\n"
	if err := p.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(hl.langs) == 0 {
		t.Fatal("highlighter never called")
	}
	for _, lang := range hl.langs {
		if lang != "Go" {
			t.Errorf("highlight language = %q, want Go", lang)
		}
	}
}

func TestRunForcedLanguageWins(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	var buf bytes.Buffer
	hl := &stubHighlighter{}
	p := New(hl, render.NewEmitter(&buf, render.DefaultPalette(), 0), Options{Lang: "python"})
	input := "+++ b/main.go\n@@ -1 +1 @@\n+x = 2\n"
	if err := p.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	for _, lang := range hl.langs {
		if lang != "python" {
			t.Errorf("highlight language = %q, want the forced python", lang)
		}
	}
}

// epipeWriter accepts n writes then fails like a closed pipe, counting any
// attempts made after the failure.
type epipeWriter struct {
	n     int
	seen  int
	extra int
}

func (w *epipeWriter) Write(p []byte) (int, error) {
	w.seen++
	if w.seen > w.n {
		if w.seen > w.n+1 {
			w.extra++
		}
		return 0, syscall.EPIPE
	}
	return len(p), nil
}

func TestRunStopsOnClosedSink(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	w := &epipeWriter{n: 3}
	p := New(&stubHighlighter{}, render.NewEmitter(w, render.DefaultPalette(), 0), Options{})

	input := "h1\nh2\nh3\nh4\nh5\nh6\n"
	err := p.Run(strings.NewReader(input))
	if err == nil {
		t.Fatal("Run() = nil, want a closed-pipe error")
	}
	if !pager.IsClosed(err) {
		t.Errorf("IsClosed(%v) = false, want the closed-early outcome", err)
	}
	if !errors.Is(err, syscall.EPIPE) {
		t.Errorf("error %v does not wrap EPIPE", err)
	}
	if w.extra != 0 {
		t.Errorf("pipeline attempted %d writes after the sink closed", w.extra)
	}
}

func TestHeaderPath(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"+++ b/internal/diff/pair.go", "b/internal/diff/pair.go", true},
		{"+++ new.py\t2026-01-02 10:00:00", "new.py", true},
		{"+++ /dev/null", "", false},
		{"diff --git a/x.rs b/x.rs", "b/x.rs", true},
		{"index 83db48f..bf269f4", "", false},
	}
	for _, tt := range tests {
		got, ok := headerPath([]byte(tt.line))
		if got != tt.want || ok != tt.ok {
			t.Errorf("headerPath(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}
