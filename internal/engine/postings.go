package engine

import "github.com/RoaringBitmap/roaring"

// Bucket labels a partition of a Postings list, e.g. a language code or a
// script class.
type Bucket string

// Postings maps a term id to the set of document ids containing that
// term, within one Bucket. Doc-id sets are stored as Roaring bitmaps --
// compressed, sorted, cheap to union/intersect -- and iteration is always
// in ascending doc-id order.
type Postings struct {
	buckets map[Bucket]map[uint32]*roaring.Bitmap
}

func NewPostings() *Postings {
	return &Postings{buckets: make(map[Bucket]map[uint32]*roaring.Bitmap)}
}

// Add records that docID contains termID within bucket.
func (p *Postings) Add(bucket Bucket, termID, docID uint32) {
	terms, ok := p.buckets[bucket]
	if !ok {
		terms = make(map[uint32]*roaring.Bitmap)
		p.buckets[bucket] = terms
	}
	bm, ok := terms[termID]
	if !ok {
		bm = roaring.New()
		terms[termID] = bm
	}
	bm.Add(docID)
}

// Get returns the doc-id bitmap for termID within bucket, or nil if there
// is no such entry (decoded lazily means "look up on demand"; there is no
// separate decode step once loaded into the Roaring representation).
func (p *Postings) Get(bucket Bucket, termID uint32) *roaring.Bitmap {
	terms, ok := p.buckets[bucket]
	if !ok {
		return nil
	}
	return terms[termID]
}

// Buckets returns the set of bucket labels with at least one entry.
func (p *Postings) Buckets() []Bucket {
	out := make([]Bucket, 0, len(p.buckets))
	for b := range p.buckets {
		out = append(out, b)
	}
	return out
}

// Union returns the union of doc-id sets for termIDs within bucket,
// ascending doc-id order -- the default retriever's core operation.
func (p *Postings) Union(bucket Bucket, termIDs []uint32) []uint32 {
	result := roaring.New()
	for _, id := range termIDs {
		if bm := p.Get(bucket, id); bm != nil {
			result.Or(bm)
		}
	}
	return result.ToArray()
}

// UnionAcrossBuckets unions term-id postings across multiple buckets.
func (p *Postings) UnionAcrossBuckets(buckets []Bucket, termIDs []uint32) []uint32 {
	result := roaring.New()
	for _, bucket := range buckets {
		for _, id := range termIDs {
			if bm := p.Get(bucket, id); bm != nil {
				result.Or(bm)
			}
		}
	}
	return result.ToArray()
}
