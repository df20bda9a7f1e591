package suggest

import "testing"

func buildTestTrie() *Trie {
	t := NewTrie()
	t.Insert("食べる", 100)
	t.Insert("食べ物", 80)
	t.Insert("飲む", 50)
	return t
}

func TestTrieCompletePrefix(t *testing.T) {
	trie := buildTestTrie()
	entries := trie.Complete("食べ")
	if len(entries) != 2 {
		t.Fatalf("Complete(食べ) = %+v, want 2 entries", entries)
	}
}

func TestTrieCompleteNoMatch(t *testing.T) {
	trie := buildTestTrie()
	if entries := trie.Complete("走"); entries != nil {
		t.Fatalf("Complete(走) = %+v, want nil", entries)
	}
}

func TestKanjiAlignMatchesLeadingKanjiRun(t *testing.T) {
	trie := buildTestTrie()
	entries := KanjiAlign("食べたい", trie, DefaultExtensionOptions())
	if len(entries) == 0 {
		t.Fatalf("expected at least one kanji-aligned suggestion")
	}
}

func TestHashtagSuggestsKnownTags(t *testing.T) {
	trie := NewTrie()
	entries := Hashtag("#ka", trie, DefaultExtensionOptions())
	found := false
	for _, e := range entries {
		if e.Term == "#kanji" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected #kanji among suggestions, got %+v", entries)
	}
}

func TestHashtagIgnoresNonHashtagQuery(t *testing.T) {
	trie := NewTrie()
	if entries := Hashtag("kanji", trie, DefaultExtensionOptions()); entries != nil {
		t.Fatalf("expected nil for a non-hashtag query, got %+v", entries)
	}
}

func TestSuggestMergesAndRanksWithinLimit(t *testing.T) {
	trie := buildTestTrie()
	opts := ExtensionOptions{WeightFreq: 0.3, WeightStr: 0.7, WeightTotal: 1.0, Threshold: 0, Limit: 1}
	ranked := Suggest("食べ", trie, []Extension{KanjiAlign}, opts)
	if len(ranked) != 1 {
		t.Fatalf("expected exactly 1 suggestion bounded by Limit, got %d", len(ranked))
	}
}

func TestSuggestDeduplicatesAcrossExtensions(t *testing.T) {
	trie := buildTestTrie()
	opts := DefaultExtensionOptions()
	opts.Threshold = 0
	ranked := Suggest("食べ", trie, []Extension{KanjiAlign, KanjiAlign}, opts)
	seen := make(map[string]bool)
	for _, r := range ranked {
		if seen[r.Entry.Term] {
			t.Fatalf("duplicate suggestion %q across extensions", r.Entry.Term)
		}
		seen[r.Entry.Term] = true
	}
}
