package engine

import "sort"

// NGramCandidate is one document sharing at least one n-gram with the
// query, along with the subset of query term ids it matched -- the caller
// (the n-gram engine) uses MatchedQueryTermIDs to compute dice or
// weighted-dice similarity.
type NGramCandidate[Doc any] struct {
	DocID             uint32
	Doc               Doc
	MatchedQueryTermIDs []uint32
}

// NGramRetrieve finds every document in bucket sharing at least one of
// queryTermIDs, grouping which query term ids each document matched.
// Results are ordered by ascending doc id for deterministic downstream
// scoring/tie-breaking.
func NGramRetrieve[Doc any](idx *Index[Doc], bucket Bucket, queryTermIDs []uint32) []NGramCandidate[Doc] {
	matched := make(map[uint32][]uint32) // docID -> matched query term ids

	for _, qID := range queryTermIDs {
		bm := idx.Postings.Get(bucket, qID)
		if bm == nil {
			continue
		}
		it := bm.Iterator()
		for it.HasNext() {
			docID := it.Next()
			matched[docID] = append(matched[docID], qID)
		}
	}

	docIDs := make([]uint32, 0, len(matched))
	for id := range matched {
		docIDs = append(docIDs, id)
	}
	sort.Slice(docIDs, func(i, j int) bool { return docIDs[i] < docIDs[j] })

	out := make([]NGramCandidate[Doc], 0, len(docIDs))
	for _, id := range docIDs {
		doc, ok := idx.Store.Get(id)
		if !ok {
			continue
		}
		out = append(out, NGramCandidate[Doc]{DocID: id, Doc: doc, MatchedQueryTermIDs: matched[id]})
	}
	return out
}
