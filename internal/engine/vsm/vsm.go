// Package vsm implements a vector-space similarity engine: sparse
// (term_id, idf) vectors over lowercased, punctuation-normalized gloss
// text, one per-language posting bucket, scored by dot product.
package vsm

import (
	"math"
	"strings"
	"unicode"

	"github.com/jotoba/jotoba-go/internal/engine"
)

// punctNormalize maps gloss punctuation to a space separator.
var punctNormalize = strings.NewReplacer(
	".", " ", ",", " ", "[", " ", "]", " ", "(", " ", ")", " ", "…", " ",
)

// Tokenize lowercases s, normalizes gloss punctuation to spaces, and splits
// on whitespace -- the tokenization shared by indexing and query time.
func Tokenize(s string) []string {
	s = punctNormalize.Replace(strings.ToLower(s))
	return strings.FieldsFunc(s, func(r rune) bool { return unicode.IsSpace(r) })
}

// VectorSpace holds the shared term vocabulary and document frequency
// counts backing every per-language bucket's sparse vectors -- idf is
// computed once against the whole vocabulary.
type VectorSpace struct {
	termToID map[string]uint32
	idToTerm []string
	docFreq  map[uint32]int
	numDocs  int
}

func NewVectorSpace() *VectorSpace {
	return &VectorSpace{termToID: make(map[string]uint32), docFreq: make(map[uint32]int)}
}

func (vs *VectorSpace) id(term string) uint32 {
	id, ok := vs.termToID[term]
	if !ok {
		id = uint32(len(vs.idToTerm))
		vs.termToID[term] = id
		vs.idToTerm = append(vs.idToTerm, term)
	}
	return id
}

// ID returns the term id for term, if known.
func (vs *VectorSpace) ID(term string) (uint32, bool) {
	id, ok := vs.termToID[term]
	return id, ok
}

// IndexGloss registers one gloss's terms, bumping document frequency once
// per distinct term, and returns its sparse vector with raw term-frequency
// weights (idf is applied once df is final, via Finalize).
func (vs *VectorSpace) IndexGloss(gloss string) engine.SparseVec32 {
	terms := Tokenize(gloss)
	vs.numDocs++
	seen := make(map[uint32]bool, len(terms))
	tf := make(map[uint32]float32, len(terms))
	for _, term := range terms {
		id := vs.id(term)
		tf[id]++
		if !seen[id] {
			seen[id] = true
			vs.docFreq[id]++
		}
	}
	entries := make([]engine.SparseEntry, 0, len(tf))
	for id, w := range tf {
		entries = append(entries, engine.SparseEntry{Dim: int32(id), Weight: w})
	}
	return engine.NewSparseVec32(entries)
}

// idf returns log2((numDocs+1)/(df+1))+1, a smoothed inverse document
// frequency that never reaches zero or divides by zero for df==numDocs.
func (vs *VectorSpace) idf(id uint32) float64 {
	df := vs.docFreq[id]
	return math.Log2(float64(vs.numDocs+1)/float64(df+1)) + 1
}

// Finalize rescales a raw term-frequency vector (as returned by
// IndexGloss) into the (term_id, idf) weighted vector stored in the
// posting bucket. Called once after all glosses for a language are
// indexed, so document frequencies are complete.
func (vs *VectorSpace) Finalize(raw engine.SparseVec32) engine.SparseVec32 {
	out := make(engine.SparseVec32, len(raw))
	for i, e := range raw {
		out[i] = engine.SparseEntry{Dim: e.Dim, Weight: float32(vs.idf(uint32(e.Dim)))}
	}
	return out
}

// VectorizeQuery builds the query-time vector for a search string: every
// token gets its idf weight (skipping unknown terms), and the whole
// normalized query also contributes as a single additional term when it
// matches a known gloss term (rewards exact multi-word match).
func (vs *VectorSpace) VectorizeQuery(query string) engine.SparseVec32 {
	terms := Tokenize(query)
	entries := make([]engine.SparseEntry, 0, len(terms)+1)
	for _, term := range terms {
		if id, ok := vs.ID(term); ok {
			entries = append(entries, engine.SparseEntry{Dim: int32(id), Weight: float32(vs.idf(id))})
		}
	}
	whole := strings.Join(terms, " ")
	if id, ok := vs.ID(whole); ok {
		entries = append(entries, engine.SparseEntry{Dim: int32(id), Weight: float32(vs.idf(id))})
	}
	return engine.NewSparseVec32(entries)
}

// Relevance is the vector-space engine's base score: the dot product of
// query and document vectors.
func Relevance(query, doc engine.SparseVec32) float64 {
	return engine.DotProduct(query, doc)
}
