package search

import (
	"strconv"

	"github.com/jotoba/jotoba-go/internal/jputil"
	"github.com/jotoba/jotoba-go/internal/query"
	"github.com/jotoba/jotoba-go/internal/sentence"
)

// SequenceProducer fires when the query is a bare integer, doing a
// direct sequence lookup.
type SequenceProducer struct {
	Index *WordIndex
	Query *query.Query
}

func (p *SequenceProducer) Name() string { return "word.sequence" }

func (p *SequenceProducer) seq() (uint32, bool) {
	n, err := strconv.ParseUint(p.Query.Text, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

func (p *SequenceProducer) ShouldRun(alreadyFound int) bool {
	_, ok := p.seq()
	return ok
}

func (p *SequenceProducer) Produce(sink *Sink) {
	seq, ok := p.seq()
	if !ok {
		return
	}
	w, ok := p.Index.Retrieve.BySequence(seq)
	if !ok {
		return
	}
	sink.Push(Item{DocID: seq, Entity: w, Relevance: 1})
}

func (p *SequenceProducer) EstimateTo(counter *Counter) {
	if _, ok := p.seq(); ok {
		counter.Add(1)
	}
}

// TagProducer fires when the query string is empty but a producer-tag
// exists (JLPT, GenkiLesson, or irregular-ichidan), emitting up to 1000
// items with a decreasing-rank score.
type TagProducer struct {
	Index *WordIndex
	Query *query.Query
}

func (p *TagProducer) Name() string { return "word.tag" }

func (p *TagProducer) hasTag() bool {
	t := p.Query.Tags
	return t.JLPT != 0 || t.GenkiLesson != 0 || t.IrregularIchidan
}

func (p *TagProducer) ShouldRun(alreadyFound int) bool {
	return p.Query.Text == "" && p.hasTag()
}

const tagProducerLimit = 1000

// seqs merges every tagged sequence set into one deduped, order-preserving
// list, since a query can combine JLPT with GenkiLesson or
// irregular-ichidan at once.
func (p *TagProducer) seqs() []uint32 {
	t := p.Query.Tags
	seen := make(map[uint32]bool)
	var out []uint32
	add := func(seqs []uint32) {
		for _, s := range seqs {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	if t.JLPT != 0 {
		add(p.Index.Retrieve.ByJLPT(t.JLPT))
	}
	if t.GenkiLesson != 0 {
		add(p.Index.Retrieve.ByGenkiLesson(t.GenkiLesson))
	}
	if t.IrregularIchidan {
		add(p.Index.Retrieve.IrregularIchidanSeqs())
	}
	if len(out) > tagProducerLimit {
		out = out[:tagProducerLimit]
	}
	return out
}

func (p *TagProducer) Produce(sink *Sink) {
	seqs := p.seqs()
	n := len(seqs)
	for i := 0; i < n; i++ {
		w, ok := p.Index.Retrieve.BySequence(seqs[i])
		if !ok {
			continue
		}
		rank := float32(n-i) / float32(n)
		sink.Push(Item{DocID: seqs[i], Entity: w, Relevance: rank})
	}
}

func (p *TagProducer) EstimateTo(counter *Counter) {
	if !p.hasTag() {
		return
	}
	counter.Add(len(p.seqs()))
}

// KanjiReadingProducer fires when Form == KanjiReading, looking up
// "{literal}{reading}" in the dedicated index.
type KanjiReadingProducer struct {
	Index *WordIndex
	Query *query.Query
}

func (p *KanjiReadingProducer) Name() string { return "word.kanji_reading" }

func (p *KanjiReadingProducer) key() string {
	runes := []rune(p.Query.Text)
	if len(runes) < 3 {
		return ""
	}
	return string(runes[0]) + string(runes[2:])
}

func (p *KanjiReadingProducer) ShouldRun(alreadyFound int) bool {
	return p.Query.Form == query.FormKanjiReading
}

func (p *KanjiReadingProducer) Produce(sink *Sink) {
	seqs := p.Index.KanjiReadingLookup(p.key())
	for i, seq := range seqs {
		w, ok := p.Index.Retrieve.BySequence(seq)
		if !ok {
			continue
		}
		sink.Push(Item{DocID: seq, Entity: w, Relevance: float32(len(seqs) - i)})
	}
}

func (p *KanjiReadingProducer) EstimateTo(counter *Counter) {
	counter.Add(len(p.Index.KanjiReadingLookup(p.key())))
}

// RomajiProducer fires when the query is romanized text that converts to
// valid Japanese, running native search on the kana transliteration.
type RomajiProducer struct {
	Index *WordIndex
	Query *query.Query
	Relevance NativeOrder
}

func (p *RomajiProducer) Name() string { return "word.romaji" }

func (p *RomajiProducer) kana() (string, bool) { return jputil.RomajiToHiragana(p.Query.Text) }

func (p *RomajiProducer) ShouldRun(alreadyFound int) bool {
	_, ok := p.kana()
	return ok
}

func (p *RomajiProducer) Produce(sink *Sink) {
	kana, ok := p.kana()
	if !ok {
		return
	}
	terms := p.Index.NativeQueryTerms(kana)
	for _, seq := range p.Index.NativeCandidates(terms) {
		w, ok := p.Index.Retrieve.BySequence(seq)
		if !ok {
			continue
		}
		dice := p.Index.NativeDice(seq, terms)
		sd := SortData{Query: p.Query, Text: kana, Item: Item{DocID: seq, Entity: w}}
		rel := p.scoreWith(dice, sd)
		sink.Push(Item{DocID: seq, Entity: w, Relevance: rel})
	}
}

func (p *RomajiProducer) scoreWith(dice float64, sd SortData) float32 {
	order := p.Relevance
	order.DiceScore = func(uint32) float64 { return dice }
	return order.Score(sd)
}

func (p *RomajiProducer) EstimateTo(counter *Counter) {
	kana, ok := p.kana()
	if !ok {
		return
	}
	terms := p.Index.NativeQueryTerms(kana)
	counter.Add(len(p.Index.NativeCandidates(terms)))
}

// NativeProducer runs n-gram retrieval against the native index, scored
// by dice of matched term ids then rescored by NativeOrder.
type NativeProducer struct {
	Index *WordIndex
	Query *query.Query
}

func (p *NativeProducer) Name() string { return "word.native" }

func (p *NativeProducer) ShouldRun(alreadyFound int) bool {
	return p.Query.Language == query.LangJapanese && p.Query.Text != ""
}

func (p *NativeProducer) candidates() ([]uint32, []uint32) {
	terms := p.Index.NativeQueryTerms(p.Query.Text)
	return p.Index.NativeCandidates(terms), terms
}

func (p *NativeProducer) Produce(sink *Sink) {
	cands, terms := p.candidates()
	for _, seq := range cands {
		w, ok := p.Index.Retrieve.BySequence(seq)
		if !ok {
			continue
		}
		dice := p.Index.NativeDice(seq, terms)
		order := NativeOrder{DiceScore: func(uint32) float64 { return dice }}
		rel := order.Score(SortData{Query: p.Query, Text: p.Query.Text, Item: Item{DocID: seq, Entity: w}})
		sink.Push(Item{DocID: seq, Entity: w, Relevance: rel})
	}
}

func (p *NativeProducer) EstimateTo(counter *Counter) {
	cands, _ := p.candidates()
	counter.Add(len(cands))
}

// ForeignProducer runs vector-space retrieval in the user's language
// bucket (plus English when ShowEnglish), scored by dot product then
// rescored by ForeignOrder.
type ForeignProducer struct {
	Index       *WordIndex
	Query       *query.Query
	ShowEnglish bool
}

func (p *ForeignProducer) Name() string { return "word.foreign" }

func (p *ForeignProducer) ShouldRun(alreadyFound int) bool {
	return p.Query.Language == query.LangForeign && p.Query.Text != ""
}

func (p *ForeignProducer) languages() []string {
	langs := []string{p.Query.UserLanguage}
	if p.ShowEnglish && p.Query.UserLanguage != "eng" {
		langs = append(langs, "eng")
	}
	return langs
}

func (p *ForeignProducer) Produce(sink *Sink) {
	for _, lang := range p.languages() {
		qVec := p.Index.ForeignQueryVector(lang, p.Query.Text)
		for _, seq := range p.Index.ForeignCandidates(lang) {
			w, ok := p.Index.Retrieve.BySequence(seq)
			if !ok {
				continue
			}
			order := ForeignOrder{
				DotProduct: func(uint32) float64 { return p.Index.ForeignDotProduct(lang, seq, qVec) },
				Glosses:    func(uint32) []string { return p.Index.Glosses(lang, seq) },
			}
			rel := order.Score(SortData{Query: p.Query, Text: p.Query.Text, Item: Item{DocID: seq, Entity: w}, Language: lang})
			sink.Push(Item{DocID: seq, Entity: w, Relevance: rel})
		}
	}
}

func (p *ForeignProducer) EstimateTo(counter *Counter) {
	for _, lang := range p.languages() {
		counter.Add(len(p.Index.ForeignCandidates(lang)))
	}
}

// SentenceReaderProducer fires if the sentence reader detects an
// inflected word or a multi-word sentence, running native search on the
// normalized lemma(s).
type SentenceReaderProducer struct {
	Index  *WordIndex
	Query  *query.Query
	Reader *sentence.Reader
}

func (p *SentenceReaderProducer) Name() string { return "word.sentence_reader" }

func (p *SentenceReaderProducer) parse() sentence.ParseResult {
	if p.Reader == nil {
		return sentence.ParseResult{Kind: sentence.ResultNone}
	}
	return p.Reader.Parse(p.Query.Text)
}

func (p *SentenceReaderProducer) ShouldRun(alreadyFound int) bool {
	res := p.parse()
	return res.Kind == sentence.ResultInflectedWord || res.Kind == sentence.ResultSentence
}

func (p *SentenceReaderProducer) Produce(sink *Sink) {
	res := p.parse()
	for i, part := range res.Parts {
		lemma := part.GetNormalized()
		terms := p.Index.NativeQueryTerms(lemma)
		cands := p.Index.NativeCandidates(terms)
		// earlier sentence positions score higher.
		positionBoost := float32(len(res.Parts)-i) / float32(len(res.Parts))
		for _, seq := range cands {
			w, ok := p.Index.Retrieve.BySequence(seq)
			if !ok {
				continue
			}
			dice := p.Index.NativeDice(seq, terms)
			sink.Push(Item{DocID: seq, Entity: w, Relevance: float32(dice) * positionBoost})
		}
	}
}

func (p *SentenceReaderProducer) EstimateTo(counter *Counter) {
	res := p.parse()
	for _, part := range res.Parts {
		terms := p.Index.NativeQueryTerms(part.GetNormalized())
		counter.Add(len(p.Index.NativeCandidates(terms)))
	}
}
