package diff

// Pair associates a removed line with the added line it most likely evolved
// into. Indexes refer to a Hunk's Removed and Added sequences; -1 marks an
// absent side. At most one side is absent, never both. Score is the
// similarity that committed the pair and is zero for one-sided pairs.
type Pair struct {
	RemovedIdx int
	AddedIdx   int
	Score      float64
}

// HasRemoved reports whether the pair has a removed side.
func (p Pair) HasRemoved() bool { return p.RemovedIdx >= 0 }

// HasAdded reports whether the pair has an added side.
func (p Pair) HasAdded() bool { return p.AddedIdx >= 0 }

// Similarity scores how alike two lines are, as the normalized token overlap
// 2*LCS / (len(a)+len(b)), in [0,1]. Two empty lines score 1.
func Similarity(a, b []byte) float64 {
	return tokenSimilarity(Tokenize(a), Tokenize(b))
}

func tokenSimilarity(ta, tb []string) float64 {
	total := len(ta) + len(tb)
	if total == 0 {
		return 1
	}
	return float64(2*lcsLen(ta, tb)) / float64(total)
}

// PairLines matches removed lines to added lines by similarity. It scores
// every combination, then greedily commits the highest-scoring unmatched
// combination at or above minSimilarity until none remains; leftovers become
// one-sided pairs. Greedy matching is deliberate: hunks are small, and when
// lines are unrelated it degrades to no pairing instead of forcing
// nonsensical matches. Ties break toward the lowest removed index, then the
// lowest added index, so results are deterministic.
//
// Lines longer than maxLineLen bytes are never paired, which bounds the
// quadratic alignment cost on pathological input; maxLineLen <= 0 disables
// the limit. Every removed and added index appears in exactly one returned
// pair, ordered by removed index with added-only pairs trailing.
func PairLines(removed, added [][]byte, minSimilarity float64, maxLineLen int) []Pair {
	r, a := len(removed), len(added)

	eligible := func(line []byte) bool {
		return maxLineLen <= 0 || len(line) <= maxLineLen
	}

	matchedWith := make([]int, r) // removed idx -> added idx, -1 if none
	scoreOf := make([]float64, r)
	for i := range matchedWith {
		matchedWith[i] = -1
	}
	usedAdded := make([]bool, a)

	if r > 0 && a > 0 {
		rTok := make([][]string, r)
		for i, line := range removed {
			if eligible(line) {
				rTok[i] = Tokenize(line)
			}
		}
		aTok := make([][]string, a)
		for j, line := range added {
			if eligible(line) {
				aTok[j] = Tokenize(line)
			}
		}

		scores := make([][]float64, r)
		for i := range scores {
			scores[i] = make([]float64, a)
			if !eligible(removed[i]) {
				continue
			}
			for j := range scores[i] {
				if eligible(added[j]) {
					scores[i][j] = tokenSimilarity(rTok[i], aTok[j])
				}
			}
		}

		for {
			best, bi, bj := -1.0, -1, -1
			for i := 0; i < r; i++ {
				if matchedWith[i] >= 0 || !eligible(removed[i]) {
					continue
				}
				for j := 0; j < a; j++ {
					if usedAdded[j] || !eligible(added[j]) {
						continue
					}
					if scores[i][j] > best {
						best, bi, bj = scores[i][j], i, j
					}
				}
			}
			if bi < 0 || best < minSimilarity {
				break
			}
			matchedWith[bi] = bj
			scoreOf[bi] = best
			usedAdded[bj] = true
		}
	}

	pairs := make([]Pair, 0, r+a)
	for i := 0; i < r; i++ {
		pairs = append(pairs, Pair{RemovedIdx: i, AddedIdx: matchedWith[i], Score: scoreOf[i]})
	}
	for j := 0; j < a; j++ {
		if !usedAdded[j] {
			pairs = append(pairs, Pair{RemovedIdx: -1, AddedIdx: j})
		}
	}
	return pairs
}
