package resource

// NameStorage holds the Name catalog, keyed by Sequence.
type NameStorage struct {
	byID     *IntMap[uint32, *Name]
	byType   map[string][]uint32
	byKana   map[string][]uint32
}

func newNameStorage() *NameStorage {
	return &NameStorage{
		byID:   NewIntMap[uint32, *Name](1024),
		byType: make(map[string][]uint32),
		byKana: make(map[string][]uint32),
	}
}

func (s *NameStorage) insert(n *Name) {
	s.byID.Put(n.Sequence, n)
	for _, t := range n.NameType {
		s.byType[t] = append(s.byType[t], n.Sequence)
	}
	s.byKana[n.Kana] = append(s.byKana[n.Kana], n.Sequence)
}

// NameRetrieve is a cheap, copyable handle onto a loaded NameStorage.
type NameRetrieve struct{ s *NameStorage }

func (s *NameStorage) Retrieve() NameRetrieve { return NameRetrieve{s: s} }

func (r NameRetrieve) BySequence(seq uint32) (*Name, bool) { return r.s.byID.Get(seq) }

func (r NameRetrieve) ByType(t string) []uint32 { return r.s.byType[t] }

func (r NameRetrieve) ByKana(kana string) []uint32 { return r.s.byKana[kana] }

func (r NameRetrieve) Len() int { return r.s.byID.Len() }

func (r NameRetrieve) All(yield func(uint32, *Name) bool) { r.s.byID.All(yield) }
