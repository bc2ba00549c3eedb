package diff

// EditSpan is a byte range of a line marked changed or unchanged relative to
// the line it was paired with. The spans produced for a line always
// partition it: contiguous, non-overlapping, covering every byte.
type EditSpan struct {
	Start   int
	End     int
	Changed bool
}

// DiffPair aligns the token sequences of a paired removed/added line and
// returns the changed spans for each side. Tokens on the longest common
// subsequence are unchanged; everything else is changed. Adjacent tokens
// with the same classification collapse into one span. The result is
// deterministic: identical inputs always yield identical partitions.
func DiffPair(removed, added []byte) (removedSpans, addedSpans []EditSpan) {
	rTok := Tokenize(removed)
	aTok := Tokenize(added)
	keepR, keepA := lcsKeep(rTok, aTok)
	return spansFromTokens(rTok, keepR), spansFromTokens(aTok, keepA)
}

// lcsKeep marks the tokens of each side that belong to the longest common
// token subsequence, via the classic O(m*n) dynamic program. Ties during
// backtracking always prefer the removed side, keeping the result stable.
func lcsKeep(a, b []string) (keepA, keepB []bool) {
	m, n := len(a), len(b)
	keepA = make([]bool, m)
	keepB = make([]bool, n)
	if m == 0 || n == 0 {
		return keepA, keepB
	}
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case a[i-1] == b[j-1]:
				dp[i][j] = dp[i-1][j-1] + 1
			case dp[i-1][j] >= dp[i][j-1]:
				dp[i][j] = dp[i-1][j]
			default:
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case a[i-1] == b[j-1]:
			keepA[i-1] = true
			keepB[j-1] = true
			i--
			j--
		case dp[i-1][j] >= dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return keepA, keepB
}

// lcsLen returns only the length of the longest common token subsequence,
// using two rolling rows.
func lcsLen(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// spansFromTokens converts a per-token classification into a byte-offset
// partition, merging adjacent tokens with the same classification. An empty
// line yields a single zero-length unchanged span so the partition is never
// empty.
func spansFromTokens(tokens []string, keep []bool) []EditSpan {
	if len(tokens) == 0 {
		return []EditSpan{{}}
	}
	var spans []EditSpan
	pos := 0
	for i, tok := range tokens {
		changed := !keep[i]
		end := pos + len(tok)
		if n := len(spans); n > 0 && spans[n-1].Changed == changed {
			spans[n-1].End = end
		} else {
			spans = append(spans, EditSpan{Start: pos, End: end, Changed: changed})
		}
		pos = end
	}
	return spans
}
