// Package query turns a raw search string plus request settings into an
// immutable Query value object consumed by every producer.
package query

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jotoba/jotoba-go/internal/jputil"
)

// SearchTarget is the requested search domain.
type SearchTarget int

const (
	TargetWords SearchTarget = iota
	TargetKanji
	TargetNames
	TargetSentences
)

// Language is the detected script/language family of the query text.
type Language int

const (
	LangJapanese Language = iota
	LangKorean
	LangForeign
)

// Form marks a structural shape the parser recognized in the query text.
type Form int

const (
	FormNormal Form = iota
	FormKanjiReading
	FormRegex
)

// Query is the immutable result of parsing a raw search string, consumed
// by every producer.
type Query struct {
	Raw          string
	Text         string // query text with tags and quotes stripped
	Target       SearchTarget
	Language     Language
	Form         Form
	MustContain  []string
	Tags         Tags
	Page         int
	PageSize     int
	PageOffset   int
	UserLanguage string
}

// Tags holds every hashtag the parser recognized, split by kind.
type Tags struct {
	SearchType      string // "kanji", "sentence", "name", "word"
	JLPT            int    // 1..5, 0 if absent
	GenkiLesson     int    // 3..23, 0 if absent
	PartOfSpeech    []string
	Misc            []string
	SentenceTag     []string
	Hidden          bool
	IrregularIchidan bool
}

var hashtagRe = regexp.MustCompile(`#[A-Za-z0-9-]+`)
var quotedRe = regexp.MustCompile(`"([^"]*)"`)

const (
	minPage     = 1
	maxPage     = 100
	defaultSize = 10
)

// Parse runs the full parsing pipeline: tag extraction, quote extraction,
// language detection, form detection, and page clamping.
func Parse(raw string, target SearchTarget, page, pageSize int, userLanguage string) Query {
	text, tags := extractTags(raw)
	text, mustContain := extractQuoted(text)
	text = strings.TrimSpace(text)

	if tags.SearchType != "" {
		target = targetFromTag(tags.SearchType, target)
	}

	lang := detectLanguage(text)
	form := detectForm(text)

	if page < minPage {
		page = minPage
	}
	if page > maxPage {
		page = maxPage
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}

	return Query{
		Raw:          raw,
		Text:         text,
		Target:       target,
		Language:     lang,
		Form:         form,
		MustContain:  mustContain,
		Tags:         tags,
		Page:         page,
		PageSize:     pageSize,
		PageOffset:   (page - 1) * pageSize,
		UserLanguage: userLanguage,
	}
}

func targetFromTag(searchType string, fallback SearchTarget) SearchTarget {
	switch searchType {
	case "kanji":
		return TargetKanji
	case "sentence":
		return TargetSentences
	case "name":
		return TargetNames
	case "word":
		return TargetWords
	default:
		return fallback
	}
}

// extractTags finds every hashtag, classifies it, and strips it (plus at
// most one following space) from the query text.
func extractTags(raw string) (string, Tags) {
	var tags Tags
	out := hashtagRe.ReplaceAllStringFunc(raw, func(tag string) string {
		classifyTag(tag[1:], &tags)
		return ""
	})
	// Collapse a single leftover space left behind by a stripped tag.
	out = regexp.MustCompile(`  +`).ReplaceAllString(out, " ")
	return out, tags
}

func classifyTag(name string, tags *Tags) {
	lower := strings.ToLower(name)
	switch {
	case lower == "kanji" || lower == "sentence" || lower == "name" || lower == "word":
		tags.SearchType = lower
	case lower == "hidden":
		tags.Hidden = true
	case lower == "irregular-ichidan":
		tags.IrregularIchidan = true
	case strings.HasPrefix(lower, "jlpt") && isDigits(lower[4:]):
		if n, err := strconv.Atoi(lower[4:]); err == nil && n >= 1 && n <= 5 {
			tags.JLPT = n
		}
	case strings.HasPrefix(lower, "n") && isDigits(lower[1:]):
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 5 {
			tags.JLPT = n
		}
	case strings.HasPrefix(lower, "genki") && isDigits(lower[5:]):
		if n, err := strconv.Atoi(lower[5:]); err == nil && n >= 3 && n <= 23 {
			tags.GenkiLesson = n
		}
	default:
		if pos, ok := posSimpleTable[lower]; ok {
			tags.PartOfSpeech = append(tags.PartOfSpeech, pos)
			return
		}
		// No fixed vocabulary distinguishes a sentence-tag from a misc
		// tag at this layer (the resource store's sentence tag index is
		// free-form), so an unrecognized hashtag is accepted as both and
		// producers narrow further by exact string match.
		tags.Misc = append(tags.Misc, name)
		tags.SentenceTag = append(tags.SentenceTag, name)
	}
}

// posSimpleTable maps a lowercased hashtag to its canonical PosSimple
// name, the closed part-of-speech vocabulary real jotoba exposes as
// hashtags (noun, verb, adjective, ...).
var posSimpleTable = map[string]string{
	"noun":        "Noun",
	"verb":        "Verb",
	"adjective":   "Adjective",
	"adverb":      "Adverb",
	"particle":    "Particle",
	"conjunction": "Conjunction",
	"interjection": "Interjection",
	"prefix":      "Prefix",
	"suffix":      "Suffix",
	"pronoun":     "Pronoun",
	"numeral":     "Numeral",
	"auxverb":     "AuxVerb",
	"expression":  "Expression",
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// extractQuoted pulls every "..." substring out of text into
// must_contain, leaving the rest of the text intact minus the quotes.
func extractQuoted(text string) (string, []string) {
	var must []string
	out := quotedRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := quotedRe.FindStringSubmatch(m)[1]
		if inner != "" {
			must = append(must, inner)
		}
		return " "
	})
	return out, must
}

// detectLanguage classifies the query text by script.
func detectLanguage(text string) Language {
	if text == "" {
		return LangForeign
	}
	if jputil.AllJapanese(text) {
		return LangJapanese
	}
	if !jputil.ContainsJapanese(text) && containsKorean(text) {
		return LangKorean
	}
	if _, ok := jputil.CouldBeRomaji(text); ok {
		return LangJapanese
	}
	return LangForeign
}

func containsKorean(s string) bool {
	for _, r := range s {
		if jputil.IsKorean(r) {
			return true
		}
	}
	return false
}

// detectForm recognizes two structural shapes: KanjiReading
// ("<single-kanji><space><kana>") and regex form (normalizing fullwidth
// * + ? before testing).
func detectForm(text string) Form {
	runes := []rune(text)
	if len(runes) >= 3 {
		if jputil.IsKanji(runes[0]) && unicode.IsSpace(runes[1]) {
			rest := string(runes[2:])
			if rest != "" && jputil.AllJapanese(rest) && !containsKanji(rest) {
				return FormKanjiReading
			}
		}
	}
	normalized := jputil.FullwidthToHalfwidthKatakana(text)
	normalized = strings.NewReplacer("＊", "*", "＋", "+", "？", "?").Replace(normalized)
	if strings.ContainsAny(normalized, "*+?") {
		return FormRegex
	}
	return FormNormal
}

func containsKanji(s string) bool {
	for _, r := range s {
		if jputil.IsKanji(r) {
			return true
		}
	}
	return false
}
