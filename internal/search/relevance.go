package search

import (
	"strings"

	"github.com/jotoba/jotoba-go/internal/engine/vsm"
	"github.com/jotoba/jotoba-go/internal/resource"
)

// NativeOrder is the native-search relevance engine: base dice similarity
// with multiplicative penalties/boosts layered on top.
type NativeOrder struct {
	// DiceScore is the producer-computed base score (dice of matched
	// term-id sets), looked up by doc id.
	DiceScore func(docID uint32) float64
	// ReadingStartsWithQuery reports whether the matched reading begins
	// with the (normalized) query string.
	ReadingStartsWithQuery func(docID uint32) bool
	// AlternativeEqualsQuery reports whether an alternative reading of
	// the word equals the original query exactly.
	AlternativeEqualsQuery func(docID uint32) bool
	// SingleKanjiReadingFrequency returns the normalized reading
	// frequency to add when the word is a single kanji, or 0 otherwise.
	SingleKanjiReadingFrequency func(docID uint32) float64
}

// Score applies penalties 0.9 (reading doesn't start with query), 0.99
// (not common), 0.99 (not JLPT-tagged); boost x0.8 when an alternative
// reading equals the original query; plus the single-kanji
// reading-frequency addend.
func (n NativeOrder) Score(d SortData) float32 {
	w, ok := d.Item.Entity.(*resource.Word)
	base := n.DiceScore(d.Item.DocID)
	if ok {
		if n.ReadingStartsWithQuery != nil && !n.ReadingStartsWithQuery(d.Item.DocID) {
			base *= 0.9
		}
		if !w.IsCommon {
			base *= 0.99
		}
		if w.JLPT == nil {
			base *= 0.99
		}
		if n.AlternativeEqualsQuery != nil && n.AlternativeEqualsQuery(d.Item.DocID) {
			base *= 0.8
		}
		if w.Readings.Kanji != nil && len([]rune(*w.Readings.Kanji)) == 1 && n.SingleKanjiReadingFrequency != nil {
			base += n.SingleKanjiReadingFrequency(d.Item.DocID)
		}
	}
	return float32(base)
}

// ForeignOrder is the foreign (vector-space) relevance engine:
// dot-product base score, rescored using the best gloss n-gram
// similarity for near-miss (misspelled) queries.
type ForeignOrder struct {
	// DotProduct is the producer-computed query*doc dot product.
	DotProduct func(docID uint32) float64
	// Glosses returns the candidate's gloss texts in the query language.
	Glosses func(docID uint32) []string
}

// Score computes base = dot product; when the best gloss similarity is
// >= 0.6, adds 100*dot; final = (bonus+text_sim)/2.
func (f ForeignOrder) Score(d SortData) float32 {
	dot := f.DotProduct(d.Item.DocID)
	var glosses []string
	if f.Glosses != nil {
		glosses = f.Glosses(d.Item.DocID)
	}
	textSim := vsm.BestGlossSimilarity(d.Text, glosses)
	bonus := dot
	if textSim >= 0.6 {
		bonus += 100 * dot
	}
	return float32((bonus + textSim) / 2)
}

// RegexOrder is the regex-search relevance engine: a length-based
// penalty biasing toward shorter readings first.
type RegexOrder struct {
	Reading func(docID uint32) string
}

// Score returns 1/(1+len(reading)), so shorter matched readings score
// higher.
func (r RegexOrder) Score(d SortData) float32 {
	reading := ""
	if r.Reading != nil {
		reading = r.Reading(d.Item.DocID)
	}
	return float32(1) / float32(1+len([]rune(reading)))
}

// stripParens mirrors the gloss cleanup vsm applies inside ForeignOrder's
// gloss similarity. Nothing in this package calls it.
func stripParens(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(', '（':
			depth++
			continue
		case ')', '）':
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
