package resource

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func encodeTestBlob(t *testing.T) []byte {
	t.Helper()
	jlpt := 3
	b := blob{
		Features: []Feature{FeatureWords, FeatureKanji, FeatureNames, FeatureSentences},
		Words: []wordRecord{{
			Word: Word{
				Sequence: 1,
				Readings: Readings{Kana: "おんがく"},
				JLPT:     &jlpt,
				Senses: []Sense{{
					ID:           1,
					Language:     "eng",
					Glosses:      []Gloss{{Text: "music"}},
					PartOfSpeech: []string{"noun"},
				}},
			},
		}},
		Kanji: []kanjiRecord{{Kanji: Kanji{Literal: '音', StrokeCount: 9}}},
		Names: []nameRecord{{Name: Name{Sequence: 1, Kana: "たろう", Transcription: "Tarou"}}},
		Sentences: []sentenceRecord{{
			Sentence: Sentence{
				ID:           1,
				Japanese:     "音楽が好きです。",
				Translations: []Translation{{Text: "I like music.", Language: "eng"}},
			},
		}},
	}
	data, err := cbor.Marshal(b)
	if err != nil {
		t.Fatalf("marshal test blob: %v", err)
	}
	return data
}

func TestLoadAndCheck(t *testing.T) {
	data := encodeTestBlob(t)
	rs, err := Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := rs.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}

	w, ok := rs.Words().BySequence(1)
	if !ok || w.Readings.Kana != "おんがく" {
		t.Fatalf("BySequence(1) = %+v, %v", w, ok)
	}
	if len(rs.Words().ByJLPT(3)) != 1 {
		t.Fatalf("expected one JLPT 3 word")
	}

	k, ok := rs.Kanji().ByLiteral('音')
	if !ok || k.StrokeCount != 9 {
		t.Fatalf("ByLiteral('音') = %+v, %v", k, ok)
	}

	s, ok := rs.Sentences().ByID(1)
	if !ok || s.LanguageMask == 0 {
		t.Fatalf("expected sentence language mask to be computed, got %+v", s)
	}
	if len(rs.Sentences().ByLanguage("eng")) != 1 {
		t.Fatalf("expected sentence indexed under eng")
	}
}

func TestCheckFailsOnMissingFeature(t *testing.T) {
	rs := empty()
	rs.features = NewFeatureSet(FeatureWords, FeatureKanji)
	if err := rs.Check(); err == nil {
		t.Fatalf("expected Check to fail when names/sentences are missing")
	}
}
