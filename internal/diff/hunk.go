package diff

// Hunk holds the removed and added lines of one change block, each in
// arrival order. The assembler reuses a single Hunk across blocks, so a Hunk
// returned by Feed or Flush is only valid until the next call.
type Hunk struct {
	Removed [][]byte
	Added   [][]byte
}

func (h *Hunk) empty() bool {
	return len(h.Removed) == 0 && len(h.Added) == 0
}

func (h *Hunk) reset() {
	h.Removed = h.Removed[:0]
	h.Added = h.Added[:0]
}

// Assembler groups classified lines into change blocks. A block is a
// contiguous run of Removed and Added lines inside a hunk; it is terminated
// by a context line, a header, the next hunk header, or end of stream, which
// keeps output in document order while buffering at most one block at a
// time. Removed and Added lines outside a hunk header's scope are not
// buffered; they pass through like any other unrecognized content.
type Assembler struct {
	hunk    Hunk
	inHunk  bool
	pending bool // the buffered hunk was handed out and awaits reset
}

// Feed consumes one classified line. It returns the completed block if this
// line terminates one, and reports whether the line itself passes through to
// the emitter rather than joining a block. A block is always returned before
// the line that closed it is processed.
func (a *Assembler) Feed(kind Kind, line []byte) (*Hunk, bool) {
	a.recycle()
	switch kind {
	case HunkHeader:
		a.inHunk = true
		return a.close(), true
	case Header:
		a.inHunk = false
		return a.close(), true
	case Removed:
		if !a.inHunk {
			return nil, true
		}
		a.hunk.Removed = append(a.hunk.Removed, append([]byte(nil), line...))
		return nil, false
	case Added:
		if !a.inHunk {
			return nil, true
		}
		a.hunk.Added = append(a.hunk.Added, append([]byte(nil), line...))
		return nil, false
	default: // Context, Other
		return a.close(), true
	}
}

// Flush terminates any open block at end of stream, even if unbalanced.
func (a *Assembler) Flush() *Hunk {
	a.recycle()
	a.inHunk = false
	return a.close()
}

func (a *Assembler) close() *Hunk {
	if a.hunk.empty() {
		return nil
	}
	a.pending = true
	return &a.hunk
}

func (a *Assembler) recycle() {
	if a.pending {
		a.hunk.reset()
		a.pending = false
	}
}
