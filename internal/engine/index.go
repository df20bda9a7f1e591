package engine

import "sort"

// Index is the concrete (Dictionary, Postings, Storage) backend,
// monomorphized per document kind for zero-cost dispatch rather than a
// boxed interface.
type Index[Doc any] struct {
	Dict     *Dictionary
	Postings *Postings
	Store    *Storage[Doc]
}

func NewIndex[Doc any]() *Index[Doc] {
	return &Index[Doc]{Dict: &Dictionary{}, Postings: NewPostings(), Store: NewStorage[Doc]()}
}

// Retrieve is a chainable query builder: ByTermIDs/ByTerms narrows the
// candidate term ids, InPosting/InPostings scopes the bucket(s), and
// Documents() runs the default retriever, yielding matching documents in
// ascending doc-id order.
type Retrieve[Doc any] struct {
	idx     *Index[Doc]
	termIDs []uint32
	buckets []Bucket
}

// NewRetrieve starts a retrieval chain against idx.
func NewRetrieve[Doc any](idx *Index[Doc]) *Retrieve[Doc] {
	return &Retrieve[Doc]{idx: idx}
}

// ByTermIDs restricts retrieval to documents containing any of termIDs.
func (r *Retrieve[Doc]) ByTermIDs(termIDs []uint32) *Retrieve[Doc] {
	r.termIDs = termIDs
	return r
}

// ByTerms resolves terms to term ids via the index dictionary and calls
// ByTermIDs, skipping any term absent from the dictionary.
func (r *Retrieve[Doc]) ByTerms(terms []string) *Retrieve[Doc] {
	ids := make([]uint32, 0, len(terms))
	for _, t := range terms {
		if id, ok := r.idx.Dict.GetID(t); ok {
			ids = append(ids, id)
		}
	}
	return r.ByTermIDs(ids)
}

// InPosting scopes retrieval to a single bucket.
func (r *Retrieve[Doc]) InPosting(bucket Bucket) *Retrieve[Doc] {
	r.buckets = []Bucket{bucket}
	return r
}

// InPostings scopes retrieval to the union of several buckets.
func (r *Retrieve[Doc]) InPostings(buckets []Bucket) *Retrieve[Doc] {
	r.buckets = buckets
	return r
}

// DocIDs runs the default retriever: union of postings lists for each
// term id, deduplicated, ascending doc-id order.
func (r *Retrieve[Doc]) DocIDs() []uint32 {
	if len(r.termIDs) == 0 {
		return nil
	}
	if len(r.buckets) <= 1 {
		bucket := Bucket("")
		if len(r.buckets) == 1 {
			bucket = r.buckets[0]
		}
		return r.idx.Postings.Union(bucket, r.termIDs)
	}
	ids := r.idx.Postings.UnionAcrossBuckets(r.buckets, r.termIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Documents runs DocIDs and resolves each id against Store, in ascending
// doc-id order; ids that don't resolve (shouldn't happen per the "every
// doc_id referenced from postings exists in Storage" invariant) are
// skipped rather than panicking.
func (r *Retrieve[Doc]) Documents() []Doc {
	ids := r.DocIDs()
	out := make([]Doc, 0, len(ids))
	for _, id := range ids {
		if doc, ok := r.idx.Store.Get(id); ok {
			out = append(out, doc)
		}
	}
	return out
}
