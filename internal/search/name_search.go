package search

import (
	"sort"

	"github.com/jotoba/jotoba-go/internal/engine/ngram"
	"github.com/jotoba/jotoba-go/internal/query"
	"github.com/jotoba/jotoba-go/internal/resource"
)

// NameIndex backs the name-search Native producer. It reuses the same
// native n-gram machinery as WordIndex, over Name.Kana only;
// Name.Transcription is not indexed, and there is no KanjiReading, Split
// or Foreign name producer.
type NameIndex struct {
	Retrieve resource.NameRetrieve

	native      *ngram.NGramIndex
	nativeTerms map[uint32][]uint32
	postings    map[uint32][]uint32
}

func BuildNameIndex(nr resource.NameRetrieve) *NameIndex {
	idx := &NameIndex{
		Retrieve:    nr,
		native:      ngram.NewNGramIndex(2),
		nativeTerms: make(map[uint32][]uint32),
		postings:    make(map[uint32][]uint32),
	}
	nr.All(func(seq uint32, n *resource.Name) bool {
		idx.native.Index(n.Kana)
		terms := idx.native.TermIDSet(n.Kana)
		idx.nativeTerms[seq] = terms
		for _, t := range terms {
			idx.postings[t] = append(idx.postings[t], seq)
		}
		return true
	})
	return idx
}

func (idx *NameIndex) candidates(terms []uint32) []uint32 {
	seen := make(map[uint32]bool)
	var out []uint32
	for _, t := range terms {
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

// NativeNameProducer implements the name-search Native producer: n-gram
// retrieval against name kana readings, scored by dice.
type NativeNameProducer struct {
	Index *NameIndex
	Query *query.Query
}

func (p *NativeNameProducer) Name() string { return "name.native" }

func (p *NativeNameProducer) ShouldRun(alreadyFound int) bool {
	return p.Query.Language == query.LangJapanese && p.Query.Text != ""
}

func (p *NativeNameProducer) terms() []uint32 { return p.Index.native.TermIDSet(p.Query.Text) }

func (p *NativeNameProducer) Produce(sink *Sink) {
	terms := p.terms()
	for _, seq := range p.Index.candidates(terms) {
		n, ok := p.Index.Retrieve.BySequence(seq)
		if !ok {
			continue
		}
		dice := ngram.Dice(p.Index.nativeTerms[seq], terms)
		sink.Push(Item{DocID: seq, Entity: n, Relevance: float32(dice)})
	}
}

func (p *NativeNameProducer) EstimateTo(counter *Counter) {
	counter.Add(len(p.Index.candidates(p.terms())))
}

// NameProducers builds the name-search pipeline, which holds only the
// Native producer. There is no KanjiReading producer (names carry no
// kanji-reading index), no Split producer (the sentence reader only
// segments multi-word input, which name queries rarely are) and no
// Foreign producer.
func NameProducers(idx *NameIndex, q *query.Query) []Producer {
	return []Producer{
		&NativeNameProducer{Index: idx, Query: q},
	}
}
