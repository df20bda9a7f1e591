package search

import (
	"testing"

	"github.com/jotoba/jotoba-go/internal/query"
	"github.com/jotoba/jotoba-go/internal/resource"
)

func TestNativeNameProducerFindsKanaMatch(t *testing.T) {
	rs := buildFullStorage(t, nil, nil, []resource.Name{
		{Sequence: 1, Kana: "たなか", Transcription: "Tanaka", NameType: []string{"surname"}},
	}, nil)
	idx := BuildNameIndex(rs.Names())
	q := query.Parse("たなか", query.TargetNames, 1, 10, "eng")
	p := &NativeNameProducer{Index: idx, Query: &q}
	if !p.ShouldRun(0) {
		t.Fatalf("expected ShouldRun true")
	}
	sink := NewSink(10, nil)
	p.Produce(sink)
	if len(sink.Items()) == 0 {
		t.Fatalf("expected at least one name match")
	}
}

func TestSentenceLanguageProducerRunsOnNonEmptyQuery(t *testing.T) {
	rs := buildFullStorage(t, nil, nil, nil, []resource.Sentence{
		{ID: 1, Japanese: "猫が好きです。"},
	})
	q := query.Parse("cats", query.TargetSentences, 1, 10, "eng")
	p := &SentenceLanguageProducer{Retrieve: rs.Sentences(), Query: &q}
	if !p.ShouldRun(0) {
		t.Fatalf("expected ShouldRun true for a non-empty query")
	}
	sink := NewSink(10, nil)
	p.Produce(sink)
	_ = sink.Items() // no language-tagged translations in this fixture; just exercise the path
}

func TestMustContainFilterRejectsMissingSubstring(t *testing.T) {
	q := query.Parse(`find "exact" match`, query.TargetSentences, 1, 10, "eng")
	filter := MustContainFilter(&q)
	if filter == nil {
		t.Fatalf("expected a non-nil filter when MustContain is set")
	}
	s := &resource.Sentence{Translations: []resource.Translation{{Text: "this has exact wording", Language: "eng"}}}
	if !filter(Item{Entity: s}) {
		t.Fatalf("expected sentence containing 'exact' to pass the filter")
	}
	miss := &resource.Sentence{Translations: []resource.Translation{{Text: "nothing relevant here", Language: "eng"}}}
	if filter(Item{Entity: miss}) {
		t.Fatalf("expected sentence missing 'exact' to be rejected")
	}
}

func TestKanjiLiteralProducerFindsQueryKanji(t *testing.T) {
	rs := buildFullStorage(t, nil, []resource.Kanji{
		{Literal: '水', Meanings: []string{"water"}},
	}, nil, nil)
	q := query.Parse("水", query.TargetKanji, 1, 10, "eng")
	p := &KanjiLiteralProducer{Retrieve: rs.Kanji(), Query: &q}
	if !p.ShouldRun(0) {
		t.Fatalf("expected ShouldRun true")
	}
	sink := NewSink(10, nil)
	p.Produce(sink)
	items := sink.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 kanji match, got %d", len(items))
	}
}

func TestKanjiMeaningProducerSubstringMatch(t *testing.T) {
	rs := buildFullStorage(t, nil, []resource.Kanji{
		{Literal: '水', Meanings: []string{"water"}},
		{Literal: '火', Meanings: []string{"fire"}},
	}, nil, nil)
	q := query.Parse("water", query.TargetKanji, 1, 10, "eng")
	p := &KanjiMeaningProducer{Retrieve: rs.Kanji(), Query: &q}
	if !p.ShouldRun(0) {
		t.Fatalf("expected ShouldRun true for a foreign-language query")
	}
	sink := NewSink(10, nil)
	p.Produce(sink)
	items := sink.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 kanji meaning match, got %d", len(items))
	}
	if k, ok := items[0].Entity.(*resource.Kanji); !ok || k.Literal != '水' {
		t.Fatalf("expected matched kanji to be 水, got %+v", items[0].Entity)
	}
}
