package diff

import "testing"

func lines(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

// checkTotality fails unless every removed and added index appears in
// exactly one pair.
func checkTotality(t *testing.T, pairs []Pair, r, a int) {
	t.Helper()
	seenR := make(map[int]bool)
	seenA := make(map[int]bool)
	for _, p := range pairs {
		if !p.HasRemoved() && !p.HasAdded() {
			t.Fatalf("pair with neither side: %+v", p)
		}
		if p.HasRemoved() {
			if seenR[p.RemovedIdx] {
				t.Fatalf("removed index %d paired twice", p.RemovedIdx)
			}
			seenR[p.RemovedIdx] = true
		}
		if p.HasAdded() {
			if seenA[p.AddedIdx] {
				t.Fatalf("added index %d paired twice", p.AddedIdx)
			}
			seenA[p.AddedIdx] = true
		}
	}
	if len(seenR) != r || len(seenA) != a {
		t.Fatalf("pairs cover %d removed / %d added, want %d / %d", len(seenR), len(seenA), r, a)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"foo", "foo", 1},
		{"foo", "bar", 0},
		{"foo = 1", "foo = 2", 0.8},
	}
	for _, tt := range tests {
		if got := Similarity([]byte(tt.a), []byte(tt.b)); got != tt.want {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPairLinesSimilarLinesPair(t *testing.T) {
	pairs := PairLines(lines("foo = 1"), lines("foo = 2"), 0.3, 0)
	checkTotality(t, pairs, 1, 1)
	if len(pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(pairs))
	}
	p := pairs[0]
	if !p.HasRemoved() || !p.HasAdded() {
		t.Fatalf("pair = %+v, want both sides", p)
	}
	if p.Score < 0.3 {
		t.Errorf("Score = %v, want >= threshold", p.Score)
	}
}

func TestPairLinesUnrelatedStayUnpaired(t *testing.T) {
	pairs := PairLines(lines("foo = 1"), lines("bar(baz, qux)"), 0.3, 0)
	checkTotality(t, pairs, 1, 1)
	if len(pairs) != 2 {
		t.Fatalf("pairs = %d, want 2 one-sided pairs", len(pairs))
	}
	for _, p := range pairs {
		if p.HasRemoved() && p.HasAdded() {
			t.Errorf("unrelated lines paired: %+v", p)
		}
	}
}

func TestPairLinesPureDeletion(t *testing.T) {
	pairs := PairLines(lines("gone one", "gone two"), nil, 0.3, 0)
	checkTotality(t, pairs, 2, 0)
	for _, p := range pairs {
		if p.HasAdded() {
			t.Errorf("pure deletion produced an added side: %+v", p)
		}
	}
}

func TestPairLinesPureInsertion(t *testing.T) {
	pairs := PairLines(nil, lines("new one", "new two"), 0.3, 0)
	checkTotality(t, pairs, 0, 2)
}

func TestPairLinesGreedyPicksBestFirst(t *testing.T) {
	removed := lines("alpha beta gamma", "unrelated junk")
	added := lines("alpha beta delta", "alpha beta gamma")
	pairs := PairLines(removed, added, 0.3, 0)
	checkTotality(t, pairs, 2, 2)
	// The exact match commits first, so removed[0] takes added[1].
	if pairs[0].RemovedIdx != 0 || pairs[0].AddedIdx != 1 {
		t.Errorf("best pair = %+v, want removed 0 with added 1", pairs[0])
	}
}

func TestPairLinesDeterministicTieBreak(t *testing.T) {
	// Two identical removed lines compete for two identical added lines;
	// ties resolve to the lowest indexes in order.
	removed := lines("same line", "same line")
	added := lines("same line", "same line")
	for range 10 {
		pairs := PairLines(removed, added, 0.3, 0)
		checkTotality(t, pairs, 2, 2)
		if pairs[0].AddedIdx != 0 || pairs[1].AddedIdx != 1 {
			t.Fatalf("tie-break not stable: %+v", pairs)
		}
	}
}

func TestPairLinesLongLinesNeverPair(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	pairs := PairLines([][]byte{long}, [][]byte{long}, 0.0, 10)
	checkTotality(t, pairs, 1, 1)
	for _, p := range pairs {
		if p.HasRemoved() && p.HasAdded() {
			t.Errorf("over-length lines paired: %+v", p)
		}
	}
}

func TestPairLinesTotalityMixed(t *testing.T) {
	removed := lines("a = 1", "b = 2", "zzz qqq")
	added := lines("a = 9", "brand new line")
	pairs := PairLines(removed, added, 0.3, 0)
	checkTotality(t, pairs, 3, 2)
}
