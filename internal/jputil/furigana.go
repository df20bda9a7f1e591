package jputil

import "strings"

// FuriganaPart pairs one kanji (or literal kana/okurigana) run with the
// kana it reads as. Concatenating every Kana field reproduces the
// originally supplied reading exactly.
type FuriganaPart struct {
	Kanji string
	Kana  string
}

// KanjiReadings is the per-character reading lookup callback required by
// AssignFurigana: given a kanji rune it returns its kun and on readings
// (already in hiragana, okurigana dot/marker stripped by the caller).
type KanjiReadings func(r rune) (kun, on []string)

// AssignFurigana maps a kanji string plus its kana reading to a sequence
// of (kanji_run, kana_run) pairs such that concatenating every kana_run
// reproduces kana exactly. It never panics; an unresolvable alignment
// returns ok=false.
//
// Internally it aligns per individual kanji character (backtracking over
// each kanji's candidate readings) and then merges consecutive
// single-kanji assignments that originated from the same contiguous
// kanji run in the input, so multi-kanji compounds (e.g. 宇宙) come back
// as one (kanji_run, kana_run) pair while literal okurigana stays split
// out as its own pair.
func AssignFurigana(word, kana string, lookup KanjiReadings) (parts []FuriganaPart, ok bool) {
	runs := AllWordsWithCT(word)
	kanaRunes := []rune(kana)

	flat, rest, matched := assignRuns(runs, 0, kanaRunes, lookup)
	if !matched || rest != len(kanaRunes) {
		return nil, false
	}
	return mergeFuriganaRuns(flat), true
}

type ctRun = struct {
	Text string
	Type CharType
}

// assignRuns walks the script-classified runs of the word left to right,
// consuming kanaRunes[pos:] as it goes. Returns the flat per-kanji/per
// literal assignment, the final kana position consumed, and whether every
// run was resolved.
func assignRuns(runs []ctRun, runIdx int, kana []rune, lookup KanjiReadings) ([]FuriganaPart, int, bool) {
	return assignFrom(runs, runIdx, kana, 0, lookup)
}

func assignFrom(runs []ctRun, runIdx int, kana []rune, pos int, lookup KanjiReadings) ([]FuriganaPart, int, bool) {
	if runIdx == len(runs) {
		return nil, pos, true
	}
	run := runs[runIdx]

	if run.Type != CTKanji {
		lit := []rune(run.Text)
		if pos+len(lit) > len(kana) {
			return nil, pos, false
		}
		if string(kana[pos:pos+len(lit)]) != run.Text {
			return nil, pos, false
		}
		rest, newPos, ok := assignFrom(runs, runIdx+1, kana, pos+len(lit), lookup)
		if !ok {
			return nil, pos, false
		}
		return append([]FuriganaPart{{Kanji: run.Text, Kana: run.Text}}, rest...), newPos, true
	}

	return assignKanjiRun([]rune(run.Text), 0, runs, runIdx, kana, pos, lookup)
}

// assignKanjiRun backtracks over the individual kanji characters within
// one contiguous kanji run, trying each candidate reading (kun and on
// readings together, longest first, see rankedCandidates) as the next
// slice of kana.
func assignKanjiRun(kanjis []rune, ki int, runs []ctRun, runIdx int, kana []rune, pos int, lookup KanjiReadings) ([]FuriganaPart, int, bool) {
	if ki == len(kanjis) {
		return assignFrom(runs, runIdx+1, kana, pos, lookup)
	}

	kun, on := lookup(kanjis[ki])
	candidates := rankedCandidates(kun, on)

	isLastKanjiOverall := ki == len(kanjis)-1 && runIdx == len(runs)-1
	for _, cand := range candidates {
		cr := []rune(cand)
		if len(cr) == 0 || pos+len(cr) > len(kana) {
			continue
		}
		if !runeSliceEqualRendaku(kana[pos:pos+len(cr)], cr, ki == 0) {
			continue
		}
		rest, newPos, ok := assignKanjiRun(kanjis, ki+1, runs, runIdx, kana, pos+len(cr), lookup)
		if ok {
			return append([]FuriganaPart{{Kanji: string(kanjis[ki]), Kana: string(kana[pos : pos+len(cr)])}}, rest...), newPos, true
		}
	}
	_ = isLastKanjiOverall
	return nil, pos, false
}

// rankedCandidates orders reading candidates longest-first so greedy
// matching prefers the most specific reading (avoids e.g. matching just
// "だ" of "だいがく" when a longer kun reading would consume more).
func rankedCandidates(kun, on []string) []string {
	out := append([]string{}, kun...)
	out = append(out, on...)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if len([]rune(out[j])) > len([]rune(out[i])) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// runeSliceEqualRendaku compares a kana slice of the target reading
// against a candidate reading, allowing the rendaku (sequential voicing)
// transform on the candidate's first rune when it is not the first kanji
// of its kanji run (e.g. 人人 hitobito: 人=ひと then 人=びと, び being the
// rendaku form of ひ).
func runeSliceEqualRendaku(target, candidate []rune, isFirstKanji bool) bool {
	if len(target) != len(candidate) {
		return false
	}
	for i := range target {
		if target[i] == candidate[i] {
			continue
		}
		if i == 0 && !isFirstKanji && isRendakuPair(candidate[i], target[i]) {
			continue
		}
		return false
	}
	return true
}

var rendakuPairs = map[rune]rune{
	'か': 'が', 'き': 'ぎ', 'く': 'ぐ', 'け': 'げ', 'こ': 'ご',
	'さ': 'ざ', 'し': 'じ', 'す': 'ず', 'せ': 'ぜ', 'そ': 'ぞ',
	'た': 'だ', 'ち': 'ぢ', 'つ': 'づ', 'て': 'で', 'と': 'ど',
	'は': 'ば', 'ひ': 'び', 'ふ': 'ぶ', 'へ': 'べ', 'ほ': 'ぼ',
}

func isRendakuPair(plain, voiced rune) bool {
	return rendakuPairs[plain] == voiced
}

// mergeFuriganaRuns merges consecutive single-kanji assignments back into
// a (kanji_run, kana_run) shape: a run of kanji characters gets one
// combined pair, a literal kana/okurigana run stays separate.
func mergeFuriganaRuns(flat []FuriganaPart) []FuriganaPart {
	if len(flat) == 0 {
		return nil
	}
	var out []FuriganaPart
	var kanjiBuf, kanaBuf strings.Builder
	flushKanji := func() {
		if kanjiBuf.Len() > 0 {
			out = append(out, FuriganaPart{Kanji: kanjiBuf.String(), Kana: kanaBuf.String()})
			kanjiBuf.Reset()
			kanaBuf.Reset()
		}
	}
	for _, p := range flat {
		if IsKanjiRunText(p.Kanji) {
			kanjiBuf.WriteString(p.Kanji)
			kanaBuf.WriteString(p.Kana)
			continue
		}
		flushKanji()
		out = append(out, p)
	}
	flushKanji()
	return out
}

// IsKanjiRunText reports whether s is a single kanji rune (the unit used
// internally while backtracking over a kanji run).
func IsKanjiRunText(s string) bool {
	r := []rune(s)
	return len(r) == 1 && IsKanji(r[0])
}
