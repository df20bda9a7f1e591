package search

import (
	"strings"

	"github.com/jotoba/jotoba-go/internal/jputil"
	"github.com/jotoba/jotoba-go/internal/query"
	"github.com/jotoba/jotoba-go/internal/resource"
)

// SentenceTagProducer streams sentences carrying a requested tag.
type SentenceTagProducer struct {
	Retrieve resource.SentenceRetrieve
	Query    *query.Query
}

func (p *SentenceTagProducer) Name() string { return "sentence.tag" }

func (p *SentenceTagProducer) ShouldRun(alreadyFound int) bool {
	return p.Query.Text == "" && len(p.Query.Tags.SentenceTag) > 0
}

func (p *SentenceTagProducer) ids() []uint32 {
	seen := make(map[uint32]bool)
	var out []uint32
	for _, tag := range p.Query.Tags.SentenceTag {
		for _, id := range p.Retrieve.ByTag(tag) {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

func (p *SentenceTagProducer) Produce(sink *Sink) {
	ids := p.ids()
	for i, id := range ids {
		s, ok := p.Retrieve.ByID(id)
		if !ok {
			continue
		}
		sink.Push(Item{DocID: id, Entity: s, Relevance: float32(len(ids) - i)})
	}
}

func (p *SentenceTagProducer) EstimateTo(counter *Counter) { counter.Add(len(p.ids())) }

// SentenceLanguageProducer streams every sentence carrying the user's
// language (plus English fallback), subject to two filters: excluding
// docs lacking the user language unless English fallback is allowed, and
// a must_contain term filter applied by the executor's Sink filter
// rather than here.
type SentenceLanguageProducer struct {
	Retrieve     resource.SentenceRetrieve
	Query        *query.Query
	ShowEnglish  bool
}

func (p *SentenceLanguageProducer) Name() string { return "sentence.language" }

func (p *SentenceLanguageProducer) ShouldRun(alreadyFound int) bool { return p.Query.Text != "" }

func (p *SentenceLanguageProducer) ids() []uint32 {
	seen := make(map[uint32]bool)
	var out []uint32
	langs := []string{p.Query.UserLanguage}
	if p.ShowEnglish {
		langs = append(langs, "eng")
	}
	for _, lang := range langs {
		for _, id := range p.Retrieve.ByLanguage(lang) {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

func (p *SentenceLanguageProducer) Produce(sink *Sink) {
	for _, id := range p.ids() {
		s, ok := p.Retrieve.ByID(id)
		if !ok {
			continue
		}
		sink.Push(Item{DocID: id, Entity: s, Relevance: 1})
	}
}

func (p *SentenceLanguageProducer) EstimateTo(counter *Counter) { counter.Add(len(p.ids())) }

// MustContainFilter builds the Sink filter enforcing that every
// non-Japanese must_contain term appears, verbatim, somewhere in the
// candidate sentence's translations.
func MustContainFilter(q *query.Query) func(Item) bool {
	if len(q.MustContain) == 0 {
		return nil
	}
	return func(it Item) bool {
		s, ok := it.Entity.(*resource.Sentence)
		if !ok {
			return true
		}
		for _, must := range q.MustContain {
			if jputil.ContainsJapanese(must) {
				continue
			}
			found := false
			for _, tr := range s.Translations {
				if strings.Contains(tr.Text, must) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}
}

// SentenceProducers builds the fixed-order sentence-search pipeline:
// Tag, then Sentence(jp|foreign).
func SentenceProducers(sr resource.SentenceRetrieve, q *query.Query, showEnglish bool) []Producer {
	return []Producer{
		&SentenceTagProducer{Retrieve: sr, Query: q},
		&SentenceLanguageProducer{Retrieve: sr, Query: q, ShowEnglish: showEnglish},
	}
}
