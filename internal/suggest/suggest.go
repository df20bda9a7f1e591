package suggest

import (
	"container/heap"
	"sort"
)

// Ranked is one suggestion after scoring, ready for the merge step.
type Ranked struct {
	Entry Entry
	Score float64
}

type rankedHeap []Ranked

func (h rankedHeap) Len() int            { return len(h) }
func (h rankedHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h rankedHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *rankedHeap) Push(x any)         { *h = append(*h, x.(Ranked)) }
func (h *rankedHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// score combines an entry's frequency rank against maxFreq with its
// string similarity to query, weighted per opts.
func score(e Entry, strSim float64, maxFreq int, opts ExtensionOptions) float64 {
	freqScore := 0.0
	if maxFreq > 0 {
		freqScore = float64(e.Freq) / float64(maxFreq)
	}
	return opts.WeightTotal * (opts.WeightFreq*freqScore + opts.WeightStr*strSim)
}

// Suggest runs every extension in extensions against query and trie,
// merges their results through a min-heap holding the opts.Limit best
// scores, and returns the ranked suggestions in descending score order,
// ties broken by shorter term first, then lexicographic order.
func Suggest(query string, trie *Trie, extensions []Extension, opts ExtensionOptions) []Ranked {
	seen := make(map[string]bool)
	var candidates []Entry
	maxFreq := 0
	for _, ext := range extensions {
		for _, e := range ext(query, trie, opts) {
			if seen[e.Term] {
				continue
			}
			seen[e.Term] = true
			candidates = append(candidates, e)
			if e.Freq > maxFreq {
				maxFreq = e.Freq
			}
		}
	}

	h := &rankedHeap{}
	heap.Init(h)
	for _, e := range candidates {
		strSim := ngramSimilarity(query, e.Term)
		s := score(e, strSim, maxFreq, opts)
		if s < opts.Threshold {
			continue
		}
		if h.Len() < opts.Limit || opts.Limit <= 0 {
			heap.Push(h, Ranked{Entry: e, Score: s})
			continue
		}
		if (*h)[0].Score < s {
			heap.Pop(h)
			heap.Push(h, Ranked{Entry: e, Score: s})
		}
	}

	out := make([]Ranked, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(Ranked)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		li, lj := len([]rune(out[i].Entry.Term)), len([]rune(out[j].Entry.Term))
		if li != lj {
			return li < lj
		}
		return out[i].Entry.Term < out[j].Entry.Term
	})
	return out
}
