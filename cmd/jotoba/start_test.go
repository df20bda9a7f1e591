package main

import (
	"testing"

	"github.com/jotoba/jotoba-go/internal/logging"
)

func TestBuildEnginePopulatesIndexesAndTrie(t *testing.T) {
	cfg := writeFullResourceStore(t, t.TempDir())
	rs, err := loadResources(cfg)
	if err != nil {
		t.Fatalf("loadResources: %v", err)
	}

	logger := logging.Disabled
	eng, err := buildEngine(rs, &logger)
	if err != nil {
		t.Fatalf("buildEngine: %v", err)
	}

	if eng.Words == nil || eng.Names == nil {
		t.Fatal("buildEngine did not build the word/name indexes")
	}
	if eng.Reader == nil {
		t.Fatal("buildEngine did not build a sentence reader")
	}
	// One kana reading + one kanji literal seeded from words.bin/kanji.bin,
	// plus one name reading from names.bin.
	if eng.Trie.Len() == 0 {
		t.Fatal("populateSuggestionTrie left the trie empty")
	}
}
