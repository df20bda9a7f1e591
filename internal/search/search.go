package search

import (
	"strings"

	"github.com/jotoba/jotoba-go/internal/query"
	"github.com/jotoba/jotoba-go/internal/resource"
	"github.com/jotoba/jotoba-go/internal/sentence"
	"github.com/jotoba/jotoba-go/internal/suggest"
)

// Engine bundles the built indexes and resource handles one Search call
// needs, regardless of which of the four targets the query resolves to.
// It is built once at startup and shared read-only across requests.
type Engine struct {
	Words       *WordIndex
	Names       *NameIndex
	Kanji       resource.KanjiRetrieve
	Sentences   resource.SentenceRetrieve
	Reader      *sentence.Reader
	Trie        *suggest.Trie
	ShowEnglish bool
}

// suggestExtensions is the fixed extension set every completion request
// runs: kanji-prefix alignment, kana-tail alignment, n-gram similarity,
// and hashtag completion.
var suggestExtensions = []suggest.Extension{
	suggest.Hashtag,
	suggest.KanjiAlign,
	suggest.KanaEnd,
	suggest.NGramExt,
}

// Suggestions runs the completion engine's fixed extension set against
// eng's trie and returns the merged, ranked result.
func Suggestions(text string, eng *Engine) []suggest.Ranked {
	if eng.Trie == nil {
		return nil
	}
	return suggest.Suggest(text, eng.Trie, suggestExtensions, suggest.DefaultExtensionOptions())
}

// AddData carries the supplementary fields a client renders alongside the
// result page: the sentence-reader's segmentation (if it ran), the
// grammar inflections it recognized, and the original query string.
type AddData struct {
	OriginalQuery string
	SentenceParse *sentence.ParseResult
	Inflections   []sentence.Inflection
}

// SearchResult is the executor's downstream shape: a result page, the
// total estimated item count, and AddData.
type SearchResult struct {
	Items      []Item
	TotalItems int
	AddData    AddData
}

// Search runs q's target-specific producer pipeline into a bounded Sink,
// executes it, and pages the result: query.Parse's output feeds
// pipelineFor, Executor.Execute produces a Result, and Result.Page slices
// the requested page, matching the parse -> produce -> sink -> execute ->
// page flow every target shares.
func Search(q *query.Query, eng *Engine) SearchResult {
	producers, filter, maxTopDist := pipelineFor(q, eng)

	sink := NewSink(q.PageOffset+q.PageSize, filter)
	ex := &Executor{Producers: producers, Sink: sink, MaxTopDist: maxTopDist}
	res := ex.Execute()

	total := res.TotalPushed
	if total >= MaxEstimate {
		total = Guess(producers, 0)
	}

	return SearchResult{
		Items:      res.Page(q.PageOffset, q.PageSize),
		TotalItems: total,
		AddData:    addDataFor(q, eng),
	}
}

// pipelineFor selects the producer family, Sink filter, and max_top_dist
// post-filter for q's resolved target.
func pipelineFor(q *query.Query, eng *Engine) ([]Producer, func(Item) bool, float32) {
	switch q.Target {
	case query.TargetKanji:
		return KanjiProducers(eng.Kanji, eng.Words, q), nil, 0
	case query.TargetNames:
		return NameProducers(eng.Names, q), nil, 0
	case query.TargetSentences:
		return SentenceProducers(eng.Sentences, q, eng.ShowEnglish), MustContainFilter(q), 0
	default:
		const wordMaxTopDist = 0.4
		return WordProducers(eng.Words, q, eng.Reader, eng.ShowEnglish), PartOfSpeechFilter(q), wordMaxTopDist
	}
}

// addDataFor runs the sentence reader once more (cheap relative to the
// search itself) to surface the segmentation/inflection info a word-search
// response carries alongside its items.
func addDataFor(q *query.Query, eng *Engine) AddData {
	add := AddData{OriginalQuery: q.Raw}
	if q.Target != query.TargetWords || eng.Reader == nil || q.Text == "" {
		return add
	}
	res := eng.Reader.Parse(q.Text)
	if res.Kind == sentence.ResultNone {
		return add
	}
	add.SentenceParse = &res
	for _, part := range res.Parts {
		add.Inflections = append(add.Inflections, part.Inflections()...)
	}
	return add
}

// PartOfSpeechFilter builds the Sink filter enforcing that every
// #<pos> tag in the query (noun, verb, adjective, ...) is satisfied by at
// least one of the word's senses; the word-search analogue of
// MustContainFilter.
func PartOfSpeechFilter(q *query.Query) func(Item) bool {
	if len(q.Tags.PartOfSpeech) == 0 {
		return nil
	}
	want := make(map[string]bool, len(q.Tags.PartOfSpeech))
	for _, pos := range q.Tags.PartOfSpeech {
		want[pos] = true
	}
	return func(it Item) bool {
		w, ok := it.Entity.(*resource.Word)
		if !ok {
			return true
		}
		matched := make(map[string]bool, len(want))
		for _, sense := range w.Senses {
			for _, raw := range sense.PartOfSpeech {
				if s := posSimpleOf(raw); want[s] {
					matched[s] = true
				}
			}
		}
		return len(matched) == len(want)
	}
}

// posPrefixTable maps a JMdict-style part-of-speech code to its PosSimple
// bucket. Order matters: more specific prefixes are checked first so e.g.
// "num" isn't swallowed by the "n" (noun) entry.
var posPrefixTable = []struct{ prefix, simple string }{
	{"adj-", "Adjective"},
	{"adv", "Adverb"},
	{"aux-v", "AuxVerb"},
	{"conj", "Conjunction"},
	{"int", "Interjection"},
	{"num", "Numeral"},
	{"pn", "Pronoun"},
	{"pref", "Prefix"},
	{"prt", "Particle"},
	{"suf", "Suffix"},
	{"exp", "Expression"},
	{"v", "Verb"},
	{"n", "Noun"},
}

func posSimpleOf(raw string) string {
	lower := strings.ToLower(raw)
	for _, p := range posPrefixTable {
		if strings.HasPrefix(lower, p.prefix) {
			return p.simple
		}
	}
	return ""
}
