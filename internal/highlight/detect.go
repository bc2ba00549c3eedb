package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// DetectLanguage returns the lexer name for a file path as it appears in a
// diff header, or "" when no lexer matches. The "a/" and "b/" prefixes git
// puts on paths are stripped first.
func DetectLanguage(path string) string {
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")
	lx := lexers.Match(filepath.Base(path))
	if lx == nil {
		return ""
	}
	return lx.Config().Name
}
