package resource

// KanjiStorage holds the Kanji catalog keyed by literal, plus secondary
// indexes used by producers and the radical-combination cache.
type KanjiStorage struct {
	byLiteral *IntMap[rune, *Kanji]
	byRadical map[rune][]rune
	byJLPT    map[int][]rune
	byGrade   map[int][]rune
}

func newKanjiStorage() *KanjiStorage {
	return &KanjiStorage{
		byLiteral: NewIntMap[rune, *Kanji](8192),
		byRadical: make(map[rune][]rune),
		byJLPT:    make(map[int][]rune),
		byGrade:   make(map[int][]rune),
	}
}

func (s *KanjiStorage) insert(k *Kanji) {
	s.byLiteral.Put(k.Literal, k)
	s.byRadical[k.Radical.Literal] = append(s.byRadical[k.Radical.Literal], k.Literal)
	if k.JLPT != nil {
		s.byJLPT[*k.JLPT] = append(s.byJLPT[*k.JLPT], k.Literal)
	}
	if k.Grade != nil {
		s.byGrade[*k.Grade] = append(s.byGrade[*k.Grade], k.Literal)
	}
}

// KanjiRetrieve is a cheap, copyable handle onto a loaded KanjiStorage.
type KanjiRetrieve struct{ s *KanjiStorage }

func (s *KanjiStorage) Retrieve() KanjiRetrieve { return KanjiRetrieve{s: s} }

func (r KanjiRetrieve) ByLiteral(lit rune) (*Kanji, bool) { return r.s.byLiteral.Get(lit) }

func (r KanjiRetrieve) ByRadicals(radicals ...rune) []rune {
	seen := make(map[rune]int, 64)
	for _, rad := range radicals {
		for _, lit := range r.s.byRadical[rad] {
			seen[lit]++
		}
	}
	var out []rune
	for lit, count := range seen {
		if count == len(radicals) {
			out = append(out, lit)
		}
	}
	return out
}

func (r KanjiRetrieve) ByJLPT(level int) []rune { return r.s.byJLPT[level] }

func (r KanjiRetrieve) Len() int { return r.s.byLiteral.Len() }

func (r KanjiRetrieve) All(yield func(rune, *Kanji) bool) { r.s.byLiteral.All(yield) }
