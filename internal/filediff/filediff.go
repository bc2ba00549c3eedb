// Package filediff renders a unified diff of two files on disk, ready to be
// fed through the annotation pipeline.
package filediff

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns unified-diff text comparing pathA against pathB with three
// lines of context, and reports whether the files differ. Identical files
// yield empty text.
func Unified(pathA, pathB string) (string, bool, error) {
	a, err := os.ReadFile(pathA)
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", pathA, err)
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", pathB, err)
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: pathA,
		ToFile:   pathB,
		Context:  3,
	})
	if err != nil {
		return "", false, fmt.Errorf("computing diff: %w", err)
	}
	return text, text != "", nil
}
