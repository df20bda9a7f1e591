package jputil

import "strings"

// hiraganaToKatakanaOffset is the fixed codepoint distance between a
// hiragana character and its katakana counterpart in the same row of the
// kana table.
const hiraganaToKatakanaOffset = 0x60

// ToKatakana converts every hiragana rune in s to its katakana counterpart,
// leaving everything else untouched.
func ToKatakana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if IsHiragana(r) && r != 0x3099 && r != 0x309A && r != 0x309B && r != 0x309C {
			runes[i] = r + hiraganaToKatakanaOffset
		}
	}
	return string(runes)
}

// ToHiragana converts every katakana rune in s to its hiragana counterpart,
// covering the full katakana block (0x30A1-0x30F6).
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - hiraganaToKatakanaOffset
		}
	}
	return string(runes)
}

// halfwidthKatakana maps a halfwidth katakana rune (and an optional
// following voicing mark) to its fullwidth equivalent.
var halfwidthKatakana = map[rune]string{
	0xFF66: "ヲ", 0xFF67: "ァ", 0xFF68: "ィ", 0xFF69: "ゥ", 0xFF6A: "ェ",
	0xFF6B: "ォ", 0xFF6C: "ャ", 0xFF6D: "ュ", 0xFF6E: "ョ", 0xFF6F: "ッ",
	0xFF71: "ア", 0xFF72: "イ", 0xFF73: "ウ", 0xFF74: "エ", 0xFF75: "オ",
	0xFF76: "カ", 0xFF77: "キ", 0xFF78: "ク", 0xFF79: "ケ", 0xFF7A: "コ",
	0xFF7B: "サ", 0xFF7C: "シ", 0xFF7D: "ス", 0xFF7E: "セ", 0xFF7F: "ソ",
	0xFF80: "タ", 0xFF81: "チ", 0xFF82: "ツ", 0xFF83: "テ", 0xFF84: "ト",
	0xFF85: "ナ", 0xFF86: "ニ", 0xFF87: "ヌ", 0xFF88: "ネ", 0xFF89: "ノ",
	0xFF8A: "ハ", 0xFF8B: "ヒ", 0xFF8C: "フ", 0xFF8D: "ヘ", 0xFF8E: "ホ",
	0xFF8F: "マ", 0xFF90: "ミ", 0xFF91: "ム", 0xFF92: "メ", 0xFF93: "モ",
	0xFF94: "ヤ", 0xFF95: "ユ", 0xFF96: "ヨ",
	0xFF97: "ラ", 0xFF98: "リ", 0xFF99: "ル", 0xFF9A: "レ", 0xFF9B: "ロ",
	0xFF9C: "ワ", 0xFF9D: "ン", 0xFF70: "ー",
}

var halfwidthVoiced = map[string]string{
	"カ" + "゙": "ガ", "キ" + "゙": "ギ", "ク" + "゙": "グ", "ケ" + "゙": "ゲ", "コ" + "゙": "ゴ",
	"サ" + "゙": "ザ", "シ" + "゙": "ジ", "ス" + "゙": "ズ", "セ" + "゙": "ゼ", "ソ" + "゙": "ゾ",
	"タ" + "゙": "ダ", "チ" + "゙": "ヂ", "ツ" + "゙": "ヅ", "テ" + "゙": "デ", "ト" + "゙": "ド",
	"ハ" + "゙": "バ", "ヒ" + "゙": "ビ", "フ" + "゙": "ブ", "ヘ" + "゙": "ベ", "ホ" + "゙": "ボ",
	"ハ" + "゚": "パ", "ヒ" + "゚": "ピ", "フ" + "゚": "プ", "ヘ" + "゚": "ペ", "ホ" + "゚": "ポ",
}

// ToHalfwidth converts fullwidth ASCII (FF01-FF5E) to ASCII and leaves
// Japanese-specific characters untouched; useful for romaji/punctuation
// that arrived fullwidth, e.g. from a phone keyboard.
func ToHalfwidth(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 0xFF01 && r <= 0xFF5E:
			b.WriteRune(r - 0xFEE0)
		case r == 0x3000:
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FullwidthToHalfwidthKatakana converts halfwidth katakana (as produced by
// some IMEs/legacy encodings) to fullwidth, combining a following
// combining voicing mark where applicable. Used by the query parser's
// regex-marker normalization for fullwidth `＊＋？`.
func FullwidthToHalfwidthKatakana(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		base, ok := halfwidthKatakana[runes[i]]
		if !ok {
			b.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && (runes[i+1] == 0x3099 || runes[i+1] == 0x309A) {
			if v, ok := halfwidthVoiced[base+string(runes[i+1])]; ok {
				b.WriteString(v)
				i++
				continue
			}
		}
		b.WriteString(base)
	}
	return b.String()
}
