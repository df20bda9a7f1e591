package ngram

import (
	"strings"

	"github.com/jotoba/jotoba-go/internal/engine"
)

// sentinel pads a string so the first and last character also participate
// in an N-character window. U+0001 never occurs in real Japanese or
// gloss text, so it cannot collide with an actual n-gram.
const sentinel = rune(0x0001)

// NGramIndex builds, for every indexed string, all padded N-grams and
// tracks their frequency via an embedded TermFreqIndex. N is typically 2
// for the native (Japanese) engine.
type NGramIndex struct {
	N    int
	Freq *TermFreqIndex

	nextOOV int32 // counts down from -1 for fresh out-of-vocabulary ids
}

func NewNGramIndex(n int) *NGramIndex {
	return &NGramIndex{N: n, Freq: NewTermFreqIndex(), nextOOV: -1}
}

// Grams splits s into its padded N-grams in order.
func (idx *NGramIndex) Grams(s string) []string {
	pad := strings.Repeat(string(sentinel), idx.N-1)
	padded := []rune(pad + s + pad)
	if len(padded) < idx.N {
		return nil
	}
	grams := make([]string, 0, len(padded)-idx.N+1)
	for i := 0; i+idx.N <= len(padded); i++ {
		grams = append(grams, string(padded[i:i+idx.N]))
	}
	return grams
}

// Index records every n-gram of s in the frequency table, growing the
// vocabulary. Called once per indexed string at build time.
func (idx *NGramIndex) Index(s string) []uint32 {
	grams := idx.Grams(s)
	ids := make([]uint32, len(grams))
	for i, g := range grams {
		ids[i] = idx.Freq.Observe(g)
	}
	return ids
}

// Vectorize builds the sparse query vector for s: known n-grams get
// weight log2(total/freq); out-of-vocabulary n-grams receive a fresh
// negative id and weight 1.
func (idx *NGramIndex) Vectorize(s string) engine.SparseVec32 {
	grams := idx.Grams(s)
	entries := make([]engine.SparseEntry, 0, len(grams))
	seenOOV := make(map[string]int32)
	for _, g := range grams {
		if id, ok := idx.Freq.ID(g); ok {
			entries = append(entries, engine.SparseEntry{Dim: int32(id), Weight: float32(idx.Freq.IDF(id))})
			continue
		}
		oovID, ok := seenOOV[g]
		if !ok {
			oovID = idx.nextOOV
			idx.nextOOV--
			seenOOV[g] = oovID
		}
		entries = append(entries, engine.SparseEntry{Dim: oovID, Weight: 1})
	}
	return engine.NewSparseVec32(entries)
}

// TermIDSet extracts just the known (non-negative) term ids from s's
// n-grams, used by the native producer to drive NGramRetrieve candidate
// lookups.
func (idx *NGramIndex) TermIDSet(s string) []uint32 {
	grams := idx.Grams(s)
	seen := make(map[uint32]bool, len(grams))
	var ids []uint32
	for _, g := range grams {
		if id, ok := idx.Freq.ID(g); ok && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// VecSim is a dice-family similarity:
// vec_sim(a,b) = 2*sum_{d in a∩b}(w_a+w_b) / (sum(w_a) + sum(w_b)).
// It is symmetric and VecSim(a,a) == 1 for any non-empty a.
func VecSim(a, b engine.SparseVec32) float64 {
	return engine.WeightedDice(a, b)
}

// Dice computes the unweighted set-overlap dice coefficient
// 2|A∩B|/(|A|+|B|) over two term-id sets, used by the native producer's
// base relevance score before NativeOrder rescoring.
func Dice(a, b []uint32) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	bSet := make(map[uint32]bool, len(b))
	for _, id := range b {
		bSet[id] = true
	}
	overlap := 0
	for _, id := range a {
		if bSet[id] {
			overlap++
		}
	}
	return 2 * float64(overlap) / float64(len(a)+len(b))
}
