package resource

// WordStorage holds the Word catalog plus secondary indexes over it.
type WordStorage struct {
	byID          *IntMap[uint32, *Word]
	byJLPT        map[int][]uint32
	byGenki       map[int][]uint32
	byMisc        map[string][]uint32
	byPOSSimple   map[string][]uint32
	irregularIchi map[uint32]bool
	irregularSeqs []uint32
}

func newWordStorage() *WordStorage {
	return &WordStorage{
		byID:        NewIntMap[uint32, *Word](1024),
		byJLPT:      make(map[int][]uint32),
		byGenki:     make(map[int][]uint32),
		byMisc:      make(map[string][]uint32),
		byPOSSimple: make(map[string][]uint32),
	}
}

func (s *WordStorage) insert(w *Word, irregularIchidan bool) {
	s.byID.Put(w.Sequence, w)
	if w.JLPT != nil {
		s.byJLPT[*w.JLPT] = append(s.byJLPT[*w.JLPT], w.Sequence)
	}
	if w.GenkiLesson != nil {
		s.byGenki[*w.GenkiLesson] = append(s.byGenki[*w.GenkiLesson], w.Sequence)
	}
	for _, sense := range w.Senses {
		if sense.Misc != nil {
			s.byMisc[*sense.Misc] = append(s.byMisc[*sense.Misc], w.Sequence)
		}
		for _, pos := range sense.PartOfSpeech {
			s.byPOSSimple[pos] = append(s.byPOSSimple[pos], w.Sequence)
		}
	}
	if irregularIchidan {
		if s.irregularIchi == nil {
			s.irregularIchi = make(map[uint32]bool)
		}
		if !s.irregularIchi[w.Sequence] {
			s.irregularSeqs = append(s.irregularSeqs, w.Sequence)
		}
		s.irregularIchi[w.Sequence] = true
	}
}

// WordRetrieve is a cheap, copyable handle onto a loaded WordStorage,
// exposing the lookups producers need.
type WordRetrieve struct{ s *WordStorage }

func (s *WordStorage) Retrieve() WordRetrieve { return WordRetrieve{s: s} }

func (r WordRetrieve) BySequence(seq uint32) (*Word, bool) { return r.s.byID.Get(seq) }

func (r WordRetrieve) ByJLPT(level int) []uint32 { return r.s.byJLPT[level] }

func (r WordRetrieve) ByGenkiLesson(lesson int) []uint32 { return r.s.byGenki[lesson] }

func (r WordRetrieve) ByMisc(misc string) []uint32 { return r.s.byMisc[misc] }

func (r WordRetrieve) ByPOSSimple(pos string) []uint32 { return r.s.byPOSSimple[pos] }

func (r WordRetrieve) IrregularIchidan(seq uint32) bool { return r.s.irregularIchi[seq] }

// IrregularIchidanSeqs lists every word sequence flagged irregular-ichidan,
// in insertion order, for the #irregular-ichidan tag producer.
func (r WordRetrieve) IrregularIchidanSeqs() []uint32 { return r.s.irregularSeqs }

func (r WordRetrieve) Len() int { return r.s.byID.Len() }

func (r WordRetrieve) All(yield func(uint32, *Word) bool) { r.s.byID.All(yield) }
