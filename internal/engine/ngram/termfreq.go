// Package ngram implements an n-gram / vector-space similarity engine: a
// TermFreqIndex backing an NGramIndex that builds sparse query vectors
// and scores them against indexed strings with a dice-family similarity.
package ngram

import (
	"math"
	"sort"
)

// TermFreqIndex maps a term to a dense term id and tracks how many times
// each term id was observed, plus the running total: total == sum(freqs)
// always holds.
type TermFreqIndex struct {
	termToID map[string]uint32
	idToTerm []string
	freq     map[uint32]int
	total    int
}

func NewTermFreqIndex() *TermFreqIndex {
	return &TermFreqIndex{termToID: make(map[string]uint32), freq: make(map[uint32]int)}
}

// Observe records one occurrence of term, assigning it a fresh term id on
// first sight.
func (t *TermFreqIndex) Observe(term string) uint32 {
	id, ok := t.termToID[term]
	if !ok {
		id = uint32(len(t.idToTerm))
		t.termToID[term] = id
		t.idToTerm = append(t.idToTerm, term)
	}
	t.freq[id]++
	t.total++
	return id
}

// ID returns the term id for term, if known.
func (t *TermFreqIndex) ID(term string) (uint32, bool) {
	id, ok := t.termToID[term]
	return id, ok
}

// Term returns the term for id, if in range.
func (t *TermFreqIndex) Term(id uint32) (string, bool) {
	if int(id) >= len(t.idToTerm) {
		return "", false
	}
	return t.idToTerm[id], true
}

// Freq returns the observed frequency of term id.
func (t *TermFreqIndex) Freq(id uint32) int { return t.freq[id] }

// Total returns the running sum of all frequencies.
func (t *TermFreqIndex) Total() int { return t.total }

// Compress removes every term with freq < threshold from both the
// term->id and id->freq maps. Term ids of surviving terms are NOT
// renumbered -- postings built against this index remain valid.
func (t *TermFreqIndex) Compress(threshold int) {
	var removedTotal int
	for id, f := range t.freq {
		if f < threshold {
			term := t.idToTerm[id]
			delete(t.termToID, term)
			delete(t.freq, id)
			removedTotal += f
		}
	}
	t.total -= removedTotal
}

// IDF returns the inverse-document-frequency-like weight for a known term
// id: log2(total/freq). Callers must check Freq(id) > 0 first.
func (t *TermFreqIndex) IDF(id uint32) float64 {
	f := t.freq[id]
	if f == 0 {
		return 0
	}
	return math.Log2(float64(t.total) / float64(f))
}

// sortedIDs returns every term id currently present, ascending. It has no
// caller in this package.
func (t *TermFreqIndex) sortedIDs() []uint32 {
	ids := make([]uint32, 0, len(t.freq))
	for id := range t.freq {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
