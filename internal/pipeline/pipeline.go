// Package pipeline streams unified-diff text through the annotation engine:
// classify each line, assemble change blocks, pair removed and added lines,
// compute intra-line edit spans, merge them with syntax-highlight spans, and
// emit the styled result. The pipeline is single-threaded and holds at most
// one change block in memory at a time.
package pipeline

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"glint/internal/diff"
	"glint/internal/highlight"
	"glint/internal/render"
)

// Options control the annotation pipeline.
type Options struct {
	Lang          string  // forced language; "" detects from diff file headers
	MinSimilarity float64 // pairing threshold in [0,1]
	TabWidth      int     // spaces per tab in content lines; <= 0 keeps tabs
	MaxLineLength int     // longest line eligible for pairing and intra-line diffing; <= 0 disables
}

// Pipeline drives one diff stream from a reader to an emitter.
type Pipeline struct {
	hl   highlight.Highlighter
	em   *render.Emitter
	opts Options
	asm  diff.Assembler
	lang string
}

// New returns a Pipeline rendering through em and coloring via hl.
func New(hl highlight.Highlighter, em *render.Emitter, opts Options) *Pipeline {
	return &Pipeline{hl: hl, em: em, opts: opts, lang: opts.Lang}
}

// Run consumes the stream line by line until EOF or the first failed write.
// Output lines leave in the same relative order their inputs arrived;
// pass-through lines are flushed before the change block that follows them.
// A write failure stops input consumption immediately and is returned as-is,
// so the caller can distinguish a closed downstream sink from other errors.
func (p *Pipeline) Run(r io.Reader) error {
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if werr := p.feed(trimEOL(line)); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	if h := p.asm.Flush(); h != nil {
		return p.paint(h)
	}
	return nil
}

func (p *Pipeline) feed(line []byte) error {
	kind := diff.Classify(line)
	if kind == diff.Header && p.opts.Lang == "" {
		if path, ok := headerPath(line); ok {
			if lang := highlight.DetectLanguage(path); lang != "" {
				p.lang = lang
			}
		}
	}

	content := p.contentOf(kind, line)
	closed, pass := p.asm.Feed(kind, content)
	if closed != nil {
		if err := p.paint(closed); err != nil {
			return err
		}
	}
	if !pass {
		return nil
	}

	switch kind {
	case diff.Context:
		spans := render.Merge(len(content), kind, nil, p.hl.Highlight(content, p.lang), p.em.Palette())
		return p.em.EmitSpans(content, kind, spans)
	case diff.Removed, diff.Added:
		// A change marker outside any hunk is not diff content; pass the
		// original line through verbatim.
		return p.em.EmitPassthrough(diff.Other, line)
	default:
		return p.em.EmitPassthrough(kind, line)
	}
}

// paint renders one completed change block: removed lines first, then added
// lines, each with intra-line emphasis where a similar partner was found.
func (p *Pipeline) paint(h *diff.Hunk) error {
	pairs := diff.PairLines(h.Removed, h.Added, p.opts.MinSimilarity, p.opts.MaxLineLength)

	removedEdits := make([][]diff.EditSpan, len(h.Removed))
	addedEdits := make([][]diff.EditSpan, len(h.Added))
	for _, pr := range pairs {
		if pr.HasRemoved() && pr.HasAdded() {
			re, ae := diff.DiffPair(h.Removed[pr.RemovedIdx], h.Added[pr.AddedIdx])
			removedEdits[pr.RemovedIdx] = re
			addedEdits[pr.AddedIdx] = ae
		}
	}

	for i, line := range h.Removed {
		if err := p.emitContent(line, diff.Removed, removedEdits[i]); err != nil {
			return err
		}
	}
	for i, line := range h.Added {
		if err := p.emitContent(line, diff.Added, addedEdits[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) emitContent(line []byte, kind diff.Kind, edits []diff.EditSpan) error {
	spans := render.Merge(len(line), kind, edits, p.hl.Highlight(line, p.lang), p.em.Palette())
	return p.em.EmitSpans(line, kind, spans)
}

// contentOf strips the leading diff marker from removed, added, and context
// lines and expands tabs, so that all later span offsets refer to the text
// actually rendered. Other kinds keep their full line.
func (p *Pipeline) contentOf(kind diff.Kind, line []byte) []byte {
	switch kind {
	case diff.Removed, diff.Added:
		return p.expandTabs(line[1:])
	case diff.Context:
		if len(line) > 0 {
			line = line[1:]
		}
		return p.expandTabs(line)
	default:
		return line
	}
}

func (p *Pipeline) expandTabs(line []byte) []byte {
	if p.opts.TabWidth <= 0 || !bytes.ContainsRune(line, '\t') {
		return line
	}
	spaces := bytes.Repeat([]byte{' '}, p.opts.TabWidth)
	return bytes.ReplaceAll(line, []byte{'\t'}, spaces)
}

// headerPath extracts the new-file path from a "+++ b/..." or "diff --git"
// header line. It reports false for /dev/null and for headers that carry no
// usable path.
func headerPath(line []byte) (string, bool) {
	s := string(line)
	if rest, ok := strings.CutPrefix(s, "+++ "); ok {
		// Strip the timestamp some diff tools append after a tab.
		if i := strings.IndexByte(rest, '\t'); i >= 0 {
			rest = rest[:i]
		}
		if rest == "" || rest == "/dev/null" {
			return "", false
		}
		return rest, true
	}
	if rest, ok := strings.CutPrefix(s, "diff --git "); ok {
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return "", false
		}
		return fields[len(fields)-1], true
	}
	return "", false
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}
