package suggest

import (
	"strings"

	"github.com/jotoba/jotoba-go/internal/engine/ngram"
	"github.com/jotoba/jotoba-go/internal/jputil"
)

// ExtensionOptions tunes every extension's contribution to a suggestion's
// final score: a weighted combination of term frequency, string
// similarity and a combined total, plus a minimum similarity threshold
// and a result limit.
type ExtensionOptions struct {
	WeightFreq  float64
	WeightStr   float64
	WeightTotal float64
	Threshold   float64
	Limit       int
}

// DefaultExtensionOptions provides one sane default configuration rather
// than requiring every caller to hand-tune weights.
func DefaultExtensionOptions() ExtensionOptions {
	return ExtensionOptions{WeightFreq: 0.3, WeightStr: 0.7, WeightTotal: 1.0, Threshold: 0.4, Limit: 30}
}

// Extension is a stateless function of the query and trie producing
// candidate suggestions.
type Extension func(query string, trie *Trie, opts ExtensionOptions) []Entry

// KanjiAlign suggests entries whose term shares a leading kanji run with
// query, useful when the user has typed a kanji compound's first
// character(s).
func KanjiAlign(query string, trie *Trie, opts ExtensionOptions) []Entry {
	runes := []rune(query)
	var lead []rune
	for _, r := range runes {
		if !jputil.IsKanji(r) {
			break
		}
		lead = append(lead, r)
	}
	if len(lead) == 0 {
		return nil
	}
	return trie.Complete(string(lead))
}

// KanaEnd suggests entries whose term ends with the same kana tail as
// query, useful for conjugation-aware completion.
func KanaEnd(query string, trie *Trie, opts ExtensionOptions) []Entry {
	runes := []rune(query)
	if len(runes) == 0 {
		return nil
	}
	tailLen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if !jputil.IsKana(runes[i]) {
			break
		}
		tailLen++
	}
	if tailLen == 0 {
		return nil
	}
	tail := string(runes[len(runes)-tailLen:])

	var out []Entry
	var walk func(node *trieNode)
	walk = func(node *trieNode) {
		for _, e := range node.entries {
			if strings.HasSuffix(e.Term, tail) {
				out = append(out, e)
			}
		}
		for _, child := range node.children {
			walk(child)
		}
	}
	walk(trie.root)
	return out
}

// NGramExt ranks every trie entry by n-gram dice similarity to query,
// keeping those at or above opts.Threshold.
func NGramExt(query string, trie *Trie, opts ExtensionOptions) []Entry {
	idx := ngram.NewNGramIndex(2)
	qTerms := func() []uint32 {
		idx.Index(query)
		return idx.TermIDSet(query)
	}()

	var all []Entry
	var walk func(node *trieNode)
	walk = func(node *trieNode) {
		all = append(all, node.entries...)
		for _, child := range node.children {
			walk(child)
		}
	}
	walk(trie.root)

	var out []Entry
	for _, e := range all {
		terms := idx.TermIDSet(e.Term)
		if sim := ngram.Dice(qTerms, terms); sim >= opts.Threshold {
			out = append(out, e)
		}
	}
	return out
}

// SimilarTerms is an alias for NGramExt kept as a separate entry point so
// callers can compose a different threshold/weight profile for "similar
// but not a prefix" suggestions without touching NGramExt's autocomplete
// use.
func SimilarTerms(query string, trie *Trie, opts ExtensionOptions) []Entry {
	return NGramExt(query, trie, opts)
}

// Hashtag suggests the closed set of recognized hashtags when query
// starts with "#".
func Hashtag(query string, trie *Trie, opts ExtensionOptions) []Entry {
	if !strings.HasPrefix(query, "#") {
		return nil
	}
	known := []string{"#kanji", "#sentence", "#name", "#word", "#hidden", "#irregular-ichidan"}
	var out []Entry
	for _, tag := range known {
		if strings.HasPrefix(tag, query) {
			out = append(out, Entry{Term: tag, Freq: 1})
		}
	}
	return out
}
