// Package sentence implements the sentence reader: it wraps a
// unidic-style morpheme tokenizer (kagome/IPA) and groups morphemes into
// Parts, each a content word plus its chain of attached auxiliaries,
// classified into an Inflection via the grammar analyzer in rules.go.
package sentence

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Morpheme is one token emitted by the tokenizer, carrying the subset of
// kagome's IPA feature columns the grammar analyzer needs.
type Morpheme struct {
	Surface   string
	BaseForm  string
	Reading   string
	POS       []string // kagome POS feature columns, e.g. ["動詞","自立","*","*"]
	CForm     string   // conjugation form (feature column 5)
}

func (m Morpheme) wordClass() string {
	if len(m.POS) == 0 {
		return ""
	}
	return m.POS[0]
}

// isContent reports whether a morpheme can start a new Part: a content
// word, i.e. not a particle/auxiliary-verb/symbol.
func isContent(m Morpheme) bool {
	switch m.wordClass() {
	case "動詞", "名詞", "形容詞", "副詞", "連体詞", "接続詞", "感動詞", "形容動詞":
		return true
	default:
		return false
	}
}

// isAttachable reports whether a morpheme can continue an existing Part
// as an auxiliary (particle, auxiliary verb, suffix).
func isAttachable(m Morpheme) bool {
	switch m.wordClass() {
	case "助詞", "助動詞", "接尾辞":
		return true
	default:
		return false
	}
}

// Part is one lexical unit plus the auxiliaries attached to it.
type Part struct {
	Content    Morpheme
	Auxiliary  []Morpheme
	tags       []Inflection
}

// GetNormalized returns the dictionary (lemma) form of the content word.
func (p Part) GetNormalized() string { return p.Content.BaseForm }

// GetInflected returns the surface-form concatenation of the content word
// and every attached auxiliary, i.e. the text as it actually appeared.
func (p Part) GetInflected() string {
	var b strings.Builder
	b.WriteString(p.Content.Surface)
	for _, aux := range p.Auxiliary {
		b.WriteString(aux.Surface)
	}
	return b.String()
}

// Inflections returns the grammar tags recognized for this part.
func (p Part) Inflections() []Inflection { return p.tags }

// WordClass returns the content word's kagome part-of-speech label.
func (p Part) WordClass() string { return p.Content.wordClass() }

// ParseResultKind discriminates the three possible shapes a parse result
// can take.
type ParseResultKind int

const (
	ResultNone ParseResultKind = iota
	ResultInflectedWord
	ResultSentence
)

// ParseResult is the sentence reader's output: exactly one of None (no
// content parts recognized), InflectedWord (one content part carrying at
// least one inflection), or Sentence (two or more content parts).
type ParseResult struct {
	Kind  ParseResultKind
	Parts []Part
}

// Reader wraps a kagome/IPA tokenizer (ipa.Dict() + tokenizer.OmitBosEos()),
// adding grammar-aware Part grouping on top of the raw morpheme stream.
type Reader struct {
	t     *tokenizer.Tokenizer
	rules RuleSet
}

// NewReader builds a Reader with the default closed-tag RuleSet.
func NewReader() (*Reader, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Reader{t: t, rules: DefaultRuleSet()}, nil
}

// morphemes tokenizes text into the Morpheme shape the grammar analyzer
// consumes, mapping kagome's IPA feature columns onto base form, reading,
// and conjugation form.
func (r *Reader) morphemes(text string) []Morpheme {
	tokens := r.t.Tokenize(text)
	out := make([]Morpheme, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(tok.Surface) == "" {
			continue
		}
		features := tok.Features()
		base := tok.Surface
		if len(features) > 6 && features[6] != "*" {
			base = features[6]
		}
		reading := ""
		if len(features) > 7 && features[7] != "*" {
			reading = features[7]
		}
		cform := ""
		if len(features) > 5 {
			cform = features[5]
		}
		out = append(out, Morpheme{
			Surface:  tok.Surface,
			BaseForm: base,
			Reading:  reading,
			POS:      features,
			CForm:    cform,
		})
	}
	return out
}

// group walks the morpheme stream bottom-up, starting a new Part at every
// content morpheme and attaching subsequent attachable morphemes to it,
// then classifies each Part's auxiliary chain via the grammar analyzer.
func (r *Reader) group(morphemes []Morpheme) []Part {
	var parts []Part
	for _, m := range morphemes {
		switch {
		case isContent(m):
			parts = append(parts, Part{Content: m})
		case isAttachable(m) && len(parts) > 0:
			last := &parts[len(parts)-1]
			last.Auxiliary = append(last.Auxiliary, m)
		}
	}
	for i := range parts {
		parts[i].tags = r.rules.Classify(parts[i].Auxiliary)
	}
	return parts
}

// Parse tokenizes and groups text, returning the ParseResult shape that
// matches the number of content parts found.
func (r *Reader) Parse(text string) ParseResult {
	parts := r.group(r.morphemes(text))
	switch {
	case len(parts) == 0:
		return ParseResult{Kind: ResultNone}
	case len(parts) == 1 && len(parts[0].tags) > 0:
		return ParseResult{Kind: ResultInflectedWord, Parts: parts}
	case len(parts) >= 2:
		return ParseResult{Kind: ResultSentence, Parts: parts}
	default:
		return ParseResult{Kind: ResultNone, Parts: parts}
	}
}
