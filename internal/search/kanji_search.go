package search

import (
	"sort"
	"strings"

	"github.com/jotoba/jotoba-go/internal/query"
	"github.com/jotoba/jotoba-go/internal/resource"
	"github.com/jotoba/jotoba-go/internal/workerpool"
)

// KanjiLiteralProducer looks up every kanji character in the query text
// directly as a literal.
type KanjiLiteralProducer struct {
	Retrieve resource.KanjiRetrieve
	Query    *query.Query
}

func (p *KanjiLiteralProducer) Name() string { return "kanji.literal" }

func (p *KanjiLiteralProducer) literals() []rune {
	var out []rune
	for _, r := range p.Query.Text {
		if _, ok := p.Retrieve.ByLiteral(r); ok {
			out = append(out, r)
		}
	}
	return out
}

func (p *KanjiLiteralProducer) ShouldRun(alreadyFound int) bool { return len(p.literals()) > 0 }

func (p *KanjiLiteralProducer) Produce(sink *Sink) {
	for i, lit := range p.literals() {
		k, ok := p.Retrieve.ByLiteral(lit)
		if !ok {
			continue
		}
		sink.Push(Item{DocID: uint32(lit), Entity: k, Relevance: float32(len(p.literals()) - i)})
	}
}

func (p *KanjiLiteralProducer) EstimateTo(counter *Counter) { counter.Add(len(p.literals())) }

// KanjiFromWordProducer implements the kanji-search "kana->kanji via a
// native word search that surfaces contained kanji" producer: every
// kanji character used by a word whose kana reading matches the query.
type KanjiFromWordProducer struct {
	WordIndex *WordIndex
	Retrieve  resource.KanjiRetrieve
	Query     *query.Query
}

func (p *KanjiFromWordProducer) Name() string { return "kanji.from_word" }

func (p *KanjiFromWordProducer) ShouldRun(alreadyFound int) bool {
	return p.Query.Language == query.LangJapanese && p.Query.Text != ""
}

func (p *KanjiFromWordProducer) literals() []rune {
	terms := p.WordIndex.NativeQueryTerms(p.Query.Text)
	seen := make(map[rune]bool)
	var out []rune
	for _, seq := range p.WordIndex.NativeCandidates(terms) {
		w, ok := p.WordIndex.Retrieve.BySequence(seq)
		if !ok || w.Readings.Kanji == nil {
			continue
		}
		for _, r := range *w.Readings.Kanji {
			if _, known := p.Retrieve.ByLiteral(r); known && !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}

func (p *KanjiFromWordProducer) Produce(sink *Sink) {
	for i, lit := range p.literals() {
		k, ok := p.Retrieve.ByLiteral(lit)
		if !ok {
			continue
		}
		sink.Push(Item{DocID: uint32(lit), Entity: k, Relevance: float32(len(p.literals()) - i)})
	}
}

func (p *KanjiFromWordProducer) EstimateTo(counter *Counter) { counter.Add(len(p.literals())) }

// KanjiMeaningProducer implements the kanji-search "meaning substring
// match" producer.
type KanjiMeaningProducer struct {
	Retrieve resource.KanjiRetrieve
	Query    *query.Query
}

func (p *KanjiMeaningProducer) Name() string { return "kanji.meaning" }

func (p *KanjiMeaningProducer) ShouldRun(alreadyFound int) bool {
	return p.Query.Language == query.LangForeign && p.Query.Text != ""
}

func (p *KanjiMeaningProducer) matches(yield func(lit rune, k *resource.Kanji)) {
	query := strings.ToLower(p.Query.Text)
	p.Retrieve.All(func(lit rune, k *resource.Kanji) bool {
		for _, m := range k.Meanings {
			if strings.Contains(strings.ToLower(m), query) {
				yield(lit, k)
				break
			}
		}
		return true
	})
}

func (p *KanjiMeaningProducer) Produce(sink *Sink) {
	p.matches(func(lit rune, k *resource.Kanji) {
		sink.Push(Item{DocID: uint32(lit), Entity: k, Relevance: 1})
	})
}

func (p *KanjiMeaningProducer) EstimateTo(counter *Counter) {
	var n int
	p.matches(func(rune, *resource.Kanji) { n++ })
	counter.Add(n)
}

// radicalCache holds combination results across requests; the key set is
// small (a handful of radicals recur constantly) and a miss is cheap to
// recompute, so one process-wide cache is shared by every radical
// producer instance.
var radicalCache = workerpool.NewBoundedCache[string, []rune](512)

// KanjiRadicalProducer implements kanji search by radical combination:
// each quoted term in the query is treated as a single radical literal,
// and only kanji composed of every one of them are returned.
type KanjiRadicalProducer struct {
	Retrieve resource.KanjiRetrieve
	Query    *query.Query
}

func (p *KanjiRadicalProducer) Name() string { return "kanji.radical" }

func (p *KanjiRadicalProducer) radicals() []rune {
	var out []rune
	for _, term := range p.Query.MustContain {
		r := []rune(term)
		if len(r) == 1 {
			out = append(out, r[0])
		}
	}
	return out
}

func (p *KanjiRadicalProducer) ShouldRun(alreadyFound int) bool { return len(p.radicals()) >= 2 }

func (p *KanjiRadicalProducer) literals() []rune {
	radicals := p.radicals()
	sorted := append([]rune(nil), radicals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	key := string(sorted)
	return radicalCache.GetOrCompute(key, func() []rune { return p.Retrieve.ByRadicals(radicals...) })
}

func (p *KanjiRadicalProducer) Produce(sink *Sink) {
	lits := p.literals()
	for i, lit := range lits {
		k, ok := p.Retrieve.ByLiteral(lit)
		if !ok {
			continue
		}
		sink.Push(Item{DocID: uint32(lit), Entity: k, Relevance: float32(len(lits) - i)})
	}
}

func (p *KanjiRadicalProducer) EstimateTo(counter *Counter) { counter.Add(len(p.literals())) }

// KanjiProducers builds the fixed-order kanji-search pipeline.
func KanjiProducers(kr resource.KanjiRetrieve, wordIdx *WordIndex, q *query.Query) []Producer {
	return []Producer{
		&KanjiLiteralProducer{Retrieve: kr, Query: q},
		&KanjiRadicalProducer{Retrieve: kr, Query: q},
		&KanjiFromWordProducer{WordIndex: wordIdx, Retrieve: kr, Query: q},
		&KanjiMeaningProducer{Retrieve: kr, Query: q},
	}
}
