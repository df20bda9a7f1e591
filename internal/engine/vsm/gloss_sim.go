package vsm

import "github.com/jotoba/jotoba-go/internal/engine/ngram"

// stripParens removes ASCII/fullwidth parenthesized asides from a gloss
// before comparing it to a misspelled query.
func stripParens(s string) string {
	out := make([]rune, 0, len(s))
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
			out = append(out, r)
		}
	}
	return string(out)
}

// GlossSimilarity is the secondary n-gram similarity the foreign producer
// composes for near-misses (misspellings): it builds a throwaway trigram
// index over the gloss, vectorizes query and gloss against it, and scores
// their weighted dice overlap.
func GlossSimilarity(query, gloss string) float64 {
	idx := ngram.NewNGramIndex(3)
	idx.Index(stripParens(gloss))
	qVec := idx.Vectorize(query)
	gVec := idx.Vectorize(stripParens(gloss))
	return ngram.VecSim(qVec, gVec)
}

// BestGlossSimilarity returns the highest GlossSimilarity across glosses,
// used by ForeignOrder to decide whether the ≥0.6 exact-match bonus
// applies.
func BestGlossSimilarity(query string, glosses []string) float64 {
	var best float64
	for _, g := range glosses {
		if sim := GlossSimilarity(query, g); sim > best {
			best = sim
		}
	}
	return best
}
