// Package resource implements the immutable, process-loaded entity
// catalog: Word, Kanji, Name, Sentence and their auxiliary secondary
// indexes, aggregated behind a single ResourceStorage.
//
// Everything here is read-only after Load. Cyclic references (Word->Sense
// ->example_sentence->Sentence, Kanji<->Word via kun/on_dicts) are stored
// as bare ids and resolved through the Retrieve handles at query time,
// never embedded.
package resource

// Word is keyed by Sequence.
type Word struct {
	Sequence             uint32
	Readings             Readings
	Senses               []Sense
	JLPT                 *int
	GenkiLesson          *int
	Accents              []int
	TransitivePair       *uint32
	IntransitivePair     *uint32
	IsCommon             bool
	SentencesAvailable   uint8 // bitmask of languages with example sentences
}

// Readings holds a word's kanji/kana/furigana/alternative surface forms.
type Readings struct {
	Kanji        *string
	Kana         string
	Furigana     *string
	Alternatives []string
}

// Sense is one language-tagged meaning of a Word.
type Sense struct {
	ID                int
	Language          string
	Glosses           []Gloss
	PartOfSpeech      []string
	Misc              *string
	Field             *string
	Dialect           *string
	XRef              *string
	Antonym           *string
	Info              *string
	ExampleSentenceID *uint32
	Gairaigo          *Gairaigo
}

// Gairaigo carries loanword source-language metadata.
type Gairaigo struct {
	Language   string
	OriginWord string
}

// Gloss is one gloss text with an optional gloss-type tag (e.g. "lit",
// "fig", "expl").
type Gloss struct {
	Text string
	Type *string
}

// Kanji is keyed by Literal.
type Kanji struct {
	Literal      rune
	StrokeCount  int
	Grade        *int
	JLPT         *int
	Frequency    *int
	Onyomi       []string
	Kunyomi      []string
	Nanori       []string
	Meanings     []string
	Parts        []rune
	Radical      DetailedRadical
	SimilarKanji []rune
	KunDicts     []uint32 // Word.Sequence ids whose kana reading uses a kun reading of this kanji
	OnDicts      []uint32 // Word.Sequence ids whose kana reading uses an on reading of this kanji
}

// DetailedRadical describes a kanji's structural radical.
type DetailedRadical struct {
	Literal      rune
	Alternative  *rune
	StrokeCount  int
	Readings     []string
	Translations []string
}

// Name is keyed by Sequence.
type Name struct {
	Sequence      uint32
	Kanji         *string
	Kana          string
	Transcription string
	NameType      []string
}

// Sentence is keyed by ID.
type Sentence struct {
	ID            uint32
	Japanese      string
	Furigana      string
	Translations  []Translation
	JLPTGuess     *int
	Level         *int
	LanguageMask  uint64 // cached bitmask of Translation.Language, see LanguageBit
}

// Translation is one language's rendering of a Sentence.
type Translation struct {
	Text     string
	Language string
}
