package diff

import (
	"bytes"
	"regexp"
)

// Kind classifies one raw line of unified-diff text.
type Kind int

const (
	Header     Kind = iota // file headers and other diff metadata
	HunkHeader             // @@ -l,c +l,c @@ markers (and @@@ combined-diff forms)
	Removed                // lines prefixed with -
	Added                  // lines prefixed with +
	Context                // unchanged lines prefixed with a space, or empty lines
	Other                  // anything unrecognized; passed through verbatim
)

// hunkHeaderRe matches both ordinary and combined-diff hunk headers.
var hunkHeaderRe = regexp.MustCompile(`^@@+ (?:[-+][0-9]+(?:,[0-9]+)? )+@@+`)

// headerPrefixes are the metadata lines emitted by git and diff tools ahead
// of and between hunks. Checked before the -/+ markers so that "--- a/file"
// and "+++ b/file" are not mistaken for content.
var headerPrefixes = [][]byte{
	[]byte("diff "),
	[]byte("--- "),
	[]byte("+++ "),
	[]byte("index "),
	[]byte("commit "),
	[]byte("old mode"),
	[]byte("new mode"),
	[]byte("deleted file"),
	[]byte("new file"),
	[]byte("copy from"),
	[]byte("copy to"),
	[]byte("rename from"),
	[]byte("rename to"),
	[]byte("similarity index"),
	[]byte("dissimilarity index"),
	[]byte("Binary files"),
	[]byte("Only in "),
}

// Classify tags one line of diff text. It never rejects input: anything that
// does not fit the unified-diff taxonomy is Other and passes through
// untouched, since diff-producing tools vary.
func Classify(line []byte) Kind {
	switch {
	case hunkHeaderRe.Match(line):
		return HunkHeader
	case isHeader(line):
		return Header
	case len(line) > 0 && line[0] == '-':
		return Removed
	case len(line) > 0 && line[0] == '+':
		return Added
	case len(line) == 0 || line[0] == ' ':
		return Context
	default:
		return Other
	}
}

func isHeader(line []byte) bool {
	for _, p := range headerPrefixes {
		if bytes.HasPrefix(line, p) {
			return true
		}
	}
	// Bare separators, as produced by git format-patch.
	return bytes.Equal(line, []byte("---")) || bytes.Equal(line, []byte("+++"))
}
