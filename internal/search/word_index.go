package search

import (
	"sort"

	"github.com/jotoba/jotoba-go/internal/engine"
	"github.com/jotoba/jotoba-go/internal/engine/ngram"
	"github.com/jotoba/jotoba-go/internal/engine/vsm"
	"github.com/jotoba/jotoba-go/internal/resource"
)

// WordIndex builds every search structure the word producers need on top
// of a loaded resource.WordRetrieve: the native n-gram index over kana
// readings, a kanji-reading lookup, and one vector-space per gloss
// language.
type WordIndex struct {
	Retrieve resource.WordRetrieve

	native *ngram.NGramIndex
	// nativeTerms[seq] are the n-gram term ids observed for that word's
	// kana reading, used by the Native producer's candidate lookup.
	nativeTerms map[uint32][]uint32
	// postings[termID] -> sequences whose kana n-grams include that term.
	postings map[uint32][]uint32

	// kanjiReading maps "{literal}{reading}" to every sequence whose
	// word uses that kanji with that reading.
	kanjiReading map[string][]uint32

	// foreign[language] is the vector space built from every gloss in
	// that language; foreignVecs[language][seq] is that word's vector.
	foreign     map[string]*vsm.VectorSpace
	foreignVecs map[string]map[uint32]engine.SparseVec32
	glosses     map[string]map[uint32][]string // language -> seq -> gloss texts
}

// BuildWordIndex indexes every word in wr.
func BuildWordIndex(wr resource.WordRetrieve) *WordIndex {
	idx := &WordIndex{
		Retrieve:     wr,
		native:       ngram.NewNGramIndex(2),
		nativeTerms:  make(map[uint32][]uint32),
		postings:     make(map[uint32][]uint32),
		kanjiReading: make(map[string][]uint32),
		foreign:      make(map[string]*vsm.VectorSpace),
		foreignVecs:  make(map[string]map[uint32]engine.SparseVec32),
		glosses:      make(map[string]map[uint32][]string),
	}

	wr.All(func(seq uint32, w *resource.Word) bool {
		idx.native.Index(w.Readings.Kana)
		terms := idx.native.TermIDSet(w.Readings.Kana)
		idx.nativeTerms[seq] = terms
		for _, t := range terms {
			idx.postings[t] = append(idx.postings[t], seq)
		}

		if w.Readings.Kanji != nil {
			key := *w.Readings.Kanji + w.Readings.Kana
			idx.kanjiReading[key] = append(idx.kanjiReading[key], seq)
		}

		for _, sense := range w.Senses {
			if sense.Language == "jpn" {
				continue
			}
			vs, ok := idx.foreign[sense.Language]
			if !ok {
				vs = vsm.NewVectorSpace()
				idx.foreign[sense.Language] = vs
				idx.foreignVecs[sense.Language] = make(map[uint32]engine.SparseVec32)
				idx.glosses[sense.Language] = make(map[uint32][]string)
			}
			for _, gloss := range sense.Glosses {
				raw := vs.IndexGloss(gloss.Text)
				idx.foreignVecs[sense.Language][seq] = append(idx.foreignVecs[sense.Language][seq], raw...)
				idx.glosses[sense.Language][seq] = append(idx.glosses[sense.Language][seq], gloss.Text)
			}
		}
		return true
	})

	// Finalize every foreign vector now that document frequencies are
	// complete, per vsm.VectorSpace.Finalize's contract.
	for lang, vs := range idx.foreign {
		for seq, raw := range idx.foreignVecs[lang] {
			idx.foreignVecs[lang][seq] = vs.Finalize(engine.NewSparseVec32(raw))
		}
	}

	return idx
}

// NativeCandidates returns every sequence sharing at least one n-gram
// term id with queryTermIDs.
func (idx *WordIndex) NativeCandidates(queryTermIDs []uint32) []uint32 {
	seen := make(map[uint32]bool)
	var out []uint32
	for _, t := range queryTermIDs {
		for _, seq := range idx.postings[t] {
			if !seen[seq] {
				seen[seq] = true
				out = append(out, seq)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NativeQueryTerms vectorizes a query string into native n-gram term ids.
func (idx *WordIndex) NativeQueryTerms(s string) []uint32 { return idx.native.TermIDSet(s) }

// NativeDice returns the dice similarity between a word's stored n-gram
// term set and the given query term ids.
func (idx *WordIndex) NativeDice(seq uint32, queryTermIDs []uint32) float64 {
	return ngram.Dice(idx.nativeTerms[seq], queryTermIDs)
}

// KanjiReadingLookup resolves a "{literal}{reading}" key to every word
// sequence that uses that kanji with that reading.
func (idx *WordIndex) KanjiReadingLookup(key string) []uint32 { return idx.kanjiReading[key] }

// ForeignCandidates returns every sequence with a vector in language.
func (idx *WordIndex) ForeignCandidates(language string) []uint32 {
	vecs, ok := idx.foreignVecs[language]
	if !ok {
		return nil
	}
	out := make([]uint32, 0, len(vecs))
	for seq := range vecs {
		out = append(out, seq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ForeignQueryVector vectorizes a query string against language's space.
func (idx *WordIndex) ForeignQueryVector(language, query string) engine.SparseVec32 {
	vs, ok := idx.foreign[language]
	if !ok {
		return nil
	}
	return vs.VectorizeQuery(query)
}

// ForeignDotProduct scores word seq's language vector against q.
func (idx *WordIndex) ForeignDotProduct(language string, seq uint32, q engine.SparseVec32) float64 {
	vecs, ok := idx.foreignVecs[language]
	if !ok {
		return 0
	}
	return engine.DotProduct(vecs[seq], q)
}

// Glosses returns a word's gloss texts in language.
func (idx *WordIndex) Glosses(language string, seq uint32) []string {
	return idx.glosses[language][seq]
}
