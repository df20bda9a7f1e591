package search

import (
	"regexp"

	"github.com/jotoba/jotoba-go/internal/query"
	"github.com/jotoba/jotoba-go/internal/resource"
)

// RegexProducer fires when the query is a regex, scanning the word
// catalog's readings and validating each candidate against the compiled
// pattern, scored by RegexOrder. A bucketed regex index keyed by leading
// character is future work; this scans every reading, which is correct
// but not sub-linear.
type RegexProducer struct {
	Index *WordIndex
	Query *query.Query
}

func (p *RegexProducer) Name() string { return "word.regex" }

var (
	reStar  = regexp.MustCompile(`\\\*`)
	rePlus  = regexp.MustCompile(`\\\+`)
	reQuest = regexp.MustCompile(`\\\?`)
)

func (p *RegexProducer) compile() (*regexp.Regexp, bool) {
	if p.Query.Form != query.FormRegex {
		return nil, false
	}
	pattern := regexp.QuoteMeta(p.Query.Text)
	pattern = reStar.ReplaceAllString(pattern, ".*")
	pattern = rePlus.ReplaceAllString(pattern, ".+")
	pattern = reQuest.ReplaceAllString(pattern, ".?")
	re, err := regexp.Compile("^" + pattern + "$")
	if err != nil {
		return nil, false
	}
	return re, true
}

func (p *RegexProducer) ShouldRun(alreadyFound int) bool {
	_, ok := p.compile()
	return ok
}

func (p *RegexProducer) matches(re *regexp.Regexp, yield func(seq uint32, w *resource.Word, reading string)) {
	p.Index.Retrieve.All(func(seq uint32, w *resource.Word) bool {
		if re.MatchString(w.Readings.Kana) {
			yield(seq, w, w.Readings.Kana)
			return true
		}
		if w.Readings.Kanji != nil && re.MatchString(*w.Readings.Kanji) {
			yield(seq, w, *w.Readings.Kanji)
		}
		return true
	})
}

func (p *RegexProducer) Produce(sink *Sink) {
	re, ok := p.compile()
	if !ok {
		return
	}
	order := RegexOrder{}
	p.matches(re, func(seq uint32, w *resource.Word, reading string) {
		order.Reading = func(uint32) string { return reading }
		rel := order.Score(SortData{Query: p.Query, Text: p.Query.Text, Item: Item{DocID: seq, Entity: w}})
		sink.Push(Item{DocID: seq, Entity: w, Relevance: rel})
	})
}

func (p *RegexProducer) EstimateTo(counter *Counter) {
	re, ok := p.compile()
	if !ok {
		return
	}
	var n int
	p.matches(re, func(seq uint32, w *resource.Word, reading string) { n++ })
	counter.Add(n)
}
