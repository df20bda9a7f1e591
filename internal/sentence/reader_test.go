package sentence

import "testing"

func TestClassifyTeIruMultiMorpheme(t *testing.T) {
	rs := DefaultRuleSet()
	aux := []Morpheme{{BaseForm: "て"}, {BaseForm: "いる"}}
	tags := rs.Classify(aux)
	if len(tags) != 1 || tags[0] != TeIru {
		t.Fatalf("Classify(て+いる) = %v, want [TeIru]", tags)
	}
}

func TestClassifyCausativeSaseru(t *testing.T) {
	rs := DefaultRuleSet()
	aux := []Morpheme{{BaseForm: "さ"}, {BaseForm: "せる"}}
	tags := rs.Classify(aux)
	if len(tags) != 1 || tags[0] != Causative {
		t.Fatalf("Classify(さ+せる) = %v, want [Causative]", tags)
	}
}

func TestClassifyNegativePastCombination(t *testing.T) {
	rs := DefaultRuleSet()
	aux := []Morpheme{{BaseForm: "ない"}, {BaseForm: "た"}}
	tags := rs.Classify(aux)
	if len(tags) != 2 || tags[0] != Negative || tags[1] != Past {
		t.Fatalf("Classify(ない+た) = %v, want [Negative Past]", tags)
	}
}

func TestPartGetInflectedConcatenatesSurface(t *testing.T) {
	p := Part{
		Content:   Morpheme{Surface: "食べ", BaseForm: "食べる"},
		Auxiliary: []Morpheme{{Surface: "ます"}, {Surface: "せん"}},
	}
	if got, want := p.GetInflected(), "食べますせん"; got != want {
		t.Fatalf("GetInflected() = %q, want %q", got, want)
	}
	if got, want := p.GetNormalized(), "食べる"; got != want {
		t.Fatalf("GetNormalized() = %q, want %q", got, want)
	}
}

func TestGroupSplitsOnContentWords(t *testing.T) {
	morphemes := []Morpheme{
		{Surface: "私", BaseForm: "私", POS: []string{"名詞"}},
		{Surface: "は", BaseForm: "は", POS: []string{"助詞"}},
		{Surface: "食べ", BaseForm: "食べる", POS: []string{"動詞"}},
		{Surface: "ます", BaseForm: "ます", POS: []string{"助動詞"}},
	}
	r := &Reader{rules: DefaultRuleSet()}
	parts := r.group(morphemes)
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d: %+v", len(parts), parts)
	}
	if parts[1].GetNormalized() != "食べる" {
		t.Fatalf("second part normalized = %q, want 食べる", parts[1].GetNormalized())
	}
	if len(parts[1].tags) != 1 || parts[1].tags[0] != Polite {
		t.Fatalf("second part tags = %v, want [Polite]", parts[1].tags)
	}
}
