package resource

// LanguageBit returns the single-bit mask assigned to a language code (0
// for a language not in languageBitIndex), used to build
// Sentence.LanguageMask and for cheap language-membership tests without
// scanning every Translation.
func LanguageBit(lang string) uint64 {
	idx, ok := languageBitIndex[lang]
	if !ok {
		return 0
	}
	return 1 << idx
}

// languageBitIndex is a small closed table; unknown languages get no bit
// (LanguageBit returns 0), so they add nothing to LanguageMask and
// ByLanguage finds no sentence for them.
var languageBitIndex = map[string]uint{
	"eng": 1, "ger": 2, "rus": 3, "spa": 4, "fre": 5, "dut": 6,
	"hun": 7, "swe": 8, "slv": 9, "kor": 10, "jpn": 11,
}

// SentenceStorage holds the Sentence catalog, keyed by ID.
type SentenceStorage struct {
	byID      *IntMap[uint32, *Sentence]
	byJLPT    map[int][]uint32
	byTag     map[string][]uint32
	langIndex map[uint64][]uint32 // bit -> sentence ids carrying that language
}

func newSentenceStorage() *SentenceStorage {
	return &SentenceStorage{
		byID:      NewIntMap[uint32, *Sentence](1024),
		byJLPT:    make(map[int][]uint32),
		byTag:     make(map[string][]uint32),
		langIndex: make(map[uint64][]uint32),
	}
}

func (s *SentenceStorage) insert(sent *Sentence, tags []string) {
	var mask uint64
	for _, tr := range sent.Translations {
		mask |= LanguageBit(tr.Language)
	}
	sent.LanguageMask = mask
	s.byID.Put(sent.ID, sent)
	if sent.JLPTGuess != nil {
		s.byJLPT[*sent.JLPTGuess] = append(s.byJLPT[*sent.JLPTGuess], sent.ID)
	}
	for _, tag := range tags {
		s.byTag[tag] = append(s.byTag[tag], sent.ID)
	}
	for bit := uint64(1); bit != 0 && bit <= mask; bit <<= 1 {
		if mask&bit != 0 {
			s.langIndex[bit] = append(s.langIndex[bit], sent.ID)
		}
	}
}

// SentenceRetrieve is a cheap, copyable handle onto a loaded SentenceStorage.
type SentenceRetrieve struct{ s *SentenceStorage }

func (s *SentenceStorage) Retrieve() SentenceRetrieve { return SentenceRetrieve{s: s} }

func (r SentenceRetrieve) ByID(id uint32) (*Sentence, bool) { return r.s.byID.Get(id) }

func (r SentenceRetrieve) ByTag(tag string) []uint32 { return r.s.byTag[tag] }

func (r SentenceRetrieve) ByLanguage(lang string) []uint32 { return r.s.langIndex[LanguageBit(lang)] }

func (r SentenceRetrieve) Len() int { return r.s.byID.Len() }

func (r SentenceRetrieve) All(yield func(uint32, *Sentence) bool) { r.s.byID.All(yield) }
