package jputil

import (
	"strings"
	"testing"
)

func TestCharPredicates(t *testing.T) {
	cases := []struct {
		r          rune
		kanji      bool
		hiragana   bool
		katakana   bool
		romanLetter bool
	}{
		{'音', true, false, false, false},
		{'あ', false, true, false, false},
		{'ア', false, false, true, false},
		{'a', false, false, false, true},
		{'ょ', false, true, false, false},
	}
	for _, c := range cases {
		if got := IsKanji(c.r); got != c.kanji {
			t.Errorf("IsKanji(%q) = %v, want %v", c.r, got, c.kanji)
		}
		if got := IsHiragana(c.r); got != c.hiragana {
			t.Errorf("IsHiragana(%q) = %v, want %v", c.r, got, c.hiragana)
		}
		if got := IsKatakana(c.r); got != c.katakana {
			t.Errorf("IsKatakana(%q) = %v, want %v", c.r, got, c.katakana)
		}
		if got := IsRomanLetter(c.r); got != c.romanLetter {
			t.Errorf("IsRomanLetter(%q) = %v, want %v", c.r, got, c.romanLetter)
		}
	}
}

func TestToHiraganaToKatakanaRoundtrip(t *testing.T) {
	kana := "おんがく"
	kata := ToKatakana(kana)
	if kata != "オンガク" {
		t.Fatalf("ToKatakana(%q) = %q", kana, kata)
	}
	if back := ToHiragana(kata); back != kana {
		t.Fatalf("ToHiragana(ToKatakana(%q)) = %q, want %q", kana, back, kana)
	}
}

func TestSplitKanaGluesSmallKana(t *testing.T) {
	got := SplitKana("きょう")
	want := []string{"きょ", "う"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("SplitKana = %v, want %v", got, want)
	}
}

func TestAllWordsWithCT(t *testing.T) {
	runs := AllWordsWithCT("食べる101abc")
	if len(runs) != 4 {
		t.Fatalf("expected 4 runs, got %d: %+v", len(runs), runs)
	}
	if runs[0].Text != "食" || runs[0].Type != CTKanji {
		t.Errorf("run[0] = %+v", runs[0])
	}
	if runs[1].Text != "べる" || runs[1].Type != CTHiragana {
		t.Errorf("run[1] = %+v", runs[1])
	}
}

func TestCalcPitchConcatenationInvariant(t *testing.T) {
	kana := "たべもの"
	for drop := 0; drop <= 6; drop++ {
		segs := CalcPitch(kana, drop)
		var b strings.Builder
		for _, s := range segs {
			b.WriteString(s.Text)
		}
		if b.String() != kana {
			t.Fatalf("drop=%d: concatenation = %q, want %q", drop, b.String(), kana)
		}
	}
}

func TestCalcPitchHeibanVsOdakaTrailingDiffers(t *testing.T) {
	kana := "はな"
	heiban := CalcPitch(kana, 0)
	odaka := CalcPitch(kana, len([]rune(kana)))
	lastHeiban := heiban[len(heiban)-1]
	lastOdaka := odaka[len(odaka)-1]
	if lastHeiban.High == lastOdaka.High {
		t.Fatalf("expected heiban/odaka trailing segment pitch to differ, got heiban=%v odaka=%v", lastHeiban.High, lastOdaka.High)
	}
}

func TestAssignFuriganaSimple(t *testing.T) {
	lookup := func(r rune) (kun, on []string) {
		switch r {
		case '食':
			return []string{"た"}, []string{"しょく"}
		case '飲':
			return []string{"の"}, []string{"いん"}
		}
		return nil, nil
	}
	parts, ok := AssignFurigana("食べる", "たべる", lookup)
	if !ok {
		t.Fatalf("AssignFurigana failed to resolve")
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Kana)
	}
	if b.String() != "たべる" {
		t.Fatalf("kana concatenation = %q, want たべる", b.String())
	}
	if parts[0].Kanji != "食" || parts[0].Kana != "た" {
		t.Fatalf("first part = %+v", parts[0])
	}
}

func TestAssignFuriganaMultiKanjiCompound(t *testing.T) {
	lookup := func(r rune) (kun, on []string) {
		switch r {
		case '宇':
			return nil, []string{"う"}
		case '宙':
			return nil, []string{"ちゅう"}
		}
		return nil, nil
	}
	parts, ok := AssignFurigana("宇宙", "うちゅう", lookup)
	if !ok {
		t.Fatalf("AssignFurigana failed to resolve 宇宙")
	}
	if len(parts) != 1 || parts[0].Kanji != "宇宙" || parts[0].Kana != "うちゅう" {
		t.Fatalf("unexpected merge result: %+v", parts)
	}
}

func TestAssignFuriganaUnresolvable(t *testing.T) {
	lookup := func(r rune) (kun, on []string) { return nil, nil }
	_, ok := AssignFurigana("謎", "なぞ", lookup)
	if ok {
		t.Fatalf("expected unresolvable furigana to fail gracefully")
	}
}

func TestCouldBeRomaji(t *testing.T) {
	kana, ok := CouldBeRomaji("kore")
	if !ok {
		t.Fatalf("expected %q to be valid romaji", "kore")
	}
	if kana != "これ" {
		t.Fatalf("CouldBeRomaji(kore) kana = %q, want これ", kana)
	}

	if _, ok := CouldBeRomaji("xyz123!!!"); ok {
		t.Fatalf("expected garbage input to not be romaji")
	}
}
