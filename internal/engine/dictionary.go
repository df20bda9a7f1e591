// Package engine implements the generic index framework: a (Dictionary,
// Postings, Storage) backend plus the default and n-gram retriever
// strategies built on top of it. It is parametrized over a document type
// per concrete index (engine.Index[Doc]) rather than via a shared
// interface, since Go's generics don't support higher-kinded
// parametrization over the backend itself.
package engine

import "sort"

// Dictionary is a sorted, bijective mapping between a canonical term and a
// dense term id in [0, |D|). Sorted order lets range-style lookups (e.g.
// "all terms prefixed by...") binary search rather than scan.
type Dictionary struct {
	terms  []string // sorted; index == term_id
	lookup map[string]uint32
}

// NewDictionary builds a Dictionary from the given terms, deduplicating
// and sorting them; term ids are assigned in the resulting sorted order.
func NewDictionary(terms []string) *Dictionary {
	seen := make(map[string]bool, len(terms))
	uniq := make([]string, 0, len(terms))
	for _, t := range terms {
		if !seen[t] {
			seen[t] = true
			uniq = append(uniq, t)
		}
	}
	sort.Strings(uniq)
	lookup := make(map[string]uint32, len(uniq))
	for i, t := range uniq {
		lookup[t] = uint32(i)
	}
	return &Dictionary{terms: uniq, lookup: lookup}
}

// GetID returns the term id for term, if present.
func (d *Dictionary) GetID(term string) (uint32, bool) {
	id, ok := d.lookup[term]
	return id, ok
}

// GetTerm returns the canonical term for id, if id is in range.
func (d *Dictionary) GetTerm(id uint32) (string, bool) {
	if int(id) >= len(d.terms) {
		return "", false
	}
	return d.terms[id], true
}

// Len returns |D|, the number of distinct terms.
func (d *Dictionary) Len() int { return len(d.terms) }

// DictionaryBuilder accumulates terms incrementally (e.g. while scanning a corpus)
// before a single NewDictionary call freezes them into dense ids.
type DictionaryBuilder struct {
	terms []string
}

func (b *DictionaryBuilder) Add(term string) { b.terms = append(b.terms, term) }

func (b *DictionaryBuilder) Build() *Dictionary { return NewDictionary(b.terms) }
