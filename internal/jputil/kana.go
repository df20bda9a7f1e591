package jputil

import "strings"

// SplitKana yields kana syllables where a small kana glues to its
// preceding mora, e.g. "きょう" splits as ["きょ", "う"] rather than
// ["き", "ょ", "う"]. Non-kana runs pass through as single-rune items.
func SplitKana(s string) []string {
	runes := []rune(s)
	var out []string
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if i+1 < len(runes) && IsSmallKana(runes[i+1]) && IsKana(r) {
			out = append(out, string(runes[i:i+2]))
			i++
			continue
		}
		out = append(out, string(r))
	}
	return out
}

// romajiPunct is the fixed punctuation set stripped before romaji
// detection.
const romajiPunct = " .,!?'\"-_/\\()[]{}:;"

// CouldBeRomaji strips a fixed punctuation set, converts the remainder to
// hiragana via a naive romaji->kana table, and reports whether the result
// is fully Japanese. Used by the romaji producer to decide whether an
// ambiguous short ASCII query should be treated as romanized Japanese.
func CouldBeRomaji(s string) (kana string, ok bool) {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(romajiPunct, r) {
			return -1
		}
		return r
	}, s)
	if stripped == "" {
		return "", false
	}
	kana, convertedAll := RomajiToHiragana(strings.ToLower(stripped))
	if !convertedAll {
		return "", false
	}
	return kana, AllJapanese(kana)
}

// romajiTable maps romaji digraphs/monographs to their hiragana form,
// longest match first. This is a compact Hepburn-style table sufficient
// for the romaji producer's transliteration needs, not a full IME.
var romajiTable = buildRomajiTable()

func buildRomajiTable() map[string]string {
	m := map[string]string{
		"shi": "し", "chi": "ち", "tsu": "つ", "fu": "ふ",
		"sha": "しゃ", "shu": "しゅ", "sho": "しょ",
		"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ",
		"ja": "じゃ", "ju": "じゅ", "jo": "じょ",
		"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
		"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
		"sya": "しゃ", "syu": "しゅ", "syo": "しょ",
		"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
		"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
		"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
		"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",
		"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
		"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",
		"n":   "ん",
	}
	gojuuon := [][2]string{
		{"a", "あ"}, {"i", "い"}, {"u", "う"}, {"e", "え"}, {"o", "お"},
		{"ka", "か"}, {"ki", "き"}, {"ku", "く"}, {"ke", "け"}, {"ko", "こ"},
		{"ga", "が"}, {"gi", "ぎ"}, {"gu", "ぐ"}, {"ge", "げ"}, {"go", "ご"},
		{"sa", "さ"}, {"su", "す"}, {"se", "せ"}, {"so", "そ"},
		{"za", "ざ"}, {"ji", "じ"}, {"zu", "ず"}, {"ze", "ぜ"}, {"zo", "ぞ"},
		{"ta", "た"}, {"te", "て"}, {"to", "と"},
		{"da", "だ"}, {"di", "ぢ"}, {"du", "づ"}, {"de", "で"}, {"do", "ど"},
		{"na", "な"}, {"ni", "に"}, {"nu", "ぬ"}, {"ne", "ね"}, {"no", "の"},
		{"ha", "は"}, {"hi", "ひ"}, {"he", "へ"}, {"ho", "ほ"},
		{"ba", "ば"}, {"bi", "び"}, {"bu", "ぶ"}, {"be", "べ"}, {"bo", "ぼ"},
		{"pa", "ぱ"}, {"pi", "ぴ"}, {"pu", "ぷ"}, {"pe", "ぺ"}, {"po", "ぽ"},
		{"ma", "ま"}, {"mi", "み"}, {"mu", "む"}, {"me", "め"}, {"mo", "も"},
		{"ya", "や"}, {"yu", "ゆ"}, {"yo", "よ"},
		{"ra", "ら"}, {"ri", "り"}, {"ru", "る"}, {"re", "れ"}, {"ro", "ろ"},
		{"wa", "わ"}, {"wo", "を"},
	}
	for _, p := range gojuuon {
		m[p[0]] = p[1]
	}
	return m
}

// RomajiToHiragana transliterates ASCII romaji to hiragana using a greedy
// longest-match scan. ok is false if any unconsumed character could not be
// mapped (the scan fails closed rather than emitting partial garbage).
func RomajiToHiragana(s string) (kana string, ok bool) {
	var b strings.Builder
	i := 0
	n := len(s)
	for i < n {
		// doubled consonant -> small tsu, e.g. "kko" -> "っこ"
		if i+1 < n && s[i] == s[i+1] && s[i] != 'n' && isConsonant(s[i]) {
			b.WriteString("っ")
			i++
			continue
		}
		matched := false
		for l := 3; l >= 1; l-- {
			if i+l > n {
				continue
			}
			if kstr, found := romajiTable[s[i:i+l]]; found {
				b.WriteString(kstr)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			return "", false
		}
	}
	return b.String(), true
}

func isConsonant(b byte) bool {
	switch b {
	case 'a', 'i', 'u', 'e', 'o', 'n':
		return false
	}
	return b >= 'a' && b <= 'z'
}
