// Package highlight supplies syntax-highlight partitions for single lines of
// source text. The annotation pipeline depends only on the Highlighter
// interface, so the chroma-backed implementation can be swapped or stubbed
// in tests without touching pipeline logic.
package highlight

// StyleSpan is one syntax-colored byte range of a line. The spans returned
// for a line partition it: contiguous, non-overlapping, covering every byte.
type StyleSpan struct {
	Start     int
	End       int
	Color     string // hex foreground like "#a6e22e"; empty for the default
	Bold      bool
	Italic    bool
	Underline bool
}

// Highlighter produces a full style partition for one line of source text.
// Implementations never fail: byte ranges the grammar cannot classify still
// appear in the partition, carrying the default (empty) style.
type Highlighter interface {
	Highlight(line []byte, lang string) []StyleSpan
}
