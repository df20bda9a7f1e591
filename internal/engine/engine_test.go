package engine

import "testing"

func TestDictionaryRoundtrip(t *testing.T) {
	d := NewDictionary([]string{"cat", "apple", "banana", "apple"})
	if d.Len() != 3 {
		t.Fatalf("expected 3 distinct terms, got %d", d.Len())
	}
	id, ok := d.GetID("apple")
	if !ok {
		t.Fatalf("expected apple to be present")
	}
	term, ok := d.GetTerm(id)
	if !ok || term != "apple" {
		t.Fatalf("GetTerm(GetID(apple)) = %q, %v", term, ok)
	}
}

func TestDefaultRetrieverUnionAscending(t *testing.T) {
	idx := NewIndex[string]()
	idx.Dict = NewDictionary([]string{"a", "b"})
	idx.Store.Put(5, "five")
	idx.Store.Put(2, "two")
	idx.Store.Put(9, "nine")

	aID, _ := idx.Dict.GetID("a")
	bID, _ := idx.Dict.GetID("b")
	idx.Postings.Add("kana", aID, 5)
	idx.Postings.Add("kana", aID, 2)
	idx.Postings.Add("kana", bID, 9)

	ids := NewRetrieve(idx).ByTerms([]string{"a", "b"}).InPosting("kana").DocIDs()
	want := []uint32{2, 5, 9}
	if len(ids) != len(want) {
		t.Fatalf("DocIDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("DocIDs() = %v, want %v", ids, want)
		}
	}
}

func TestNGramRetrieveGroupsMatches(t *testing.T) {
	idx := NewIndex[string]()
	idx.Store.Put(1, "doc1")
	idx.Store.Put(2, "doc2")
	idx.Postings.Add("native", 10, 1)
	idx.Postings.Add("native", 11, 1)
	idx.Postings.Add("native", 11, 2)

	cands := NGramRetrieve(idx, "native", []uint32{10, 11})
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}
	if cands[0].DocID != 1 || len(cands[0].MatchedQueryTermIDs) != 2 {
		t.Fatalf("doc1 candidate = %+v", cands[0])
	}
	if cands[1].DocID != 2 || len(cands[1].MatchedQueryTermIDs) != 1 {
		t.Fatalf("doc2 candidate = %+v", cands[1])
	}
}
