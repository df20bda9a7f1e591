package suggest

import "github.com/jotoba/jotoba-go/internal/engine/ngram"

// ngramSimilarity scores how similar b is to a via bigram dice overlap;
// Suggest uses it for each candidate's string-similarity component.
func ngramSimilarity(a, b string) float64 {
	idx := ngram.NewNGramIndex(2)
	idx.Index(a)
	aTerms := idx.TermIDSet(a)
	bTerms := idx.TermIDSet(b)
	return ngram.Dice(aTerms, bTerms)
}
