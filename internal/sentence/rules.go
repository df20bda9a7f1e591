package sentence

// Inflection is one tag from the closed set of recognized grammar forms.
type Inflection int

const (
	Negative Inflection = iota
	Polite
	Present
	Past
	TeForm
	Potential
	Passive
	Causative
	CausativePassive
	PotentialOrPassive
	Imperative
	Tai
	TeIru
	TeAru
	TeMiru
	TeShimau
	Chau
	TeOku
	Toku
	Tara
	Tari
	Ba
)

func (i Inflection) String() string {
	switch i {
	case Negative:
		return "Negative"
	case Polite:
		return "Polite"
	case Present:
		return "Present"
	case Past:
		return "Past"
	case TeForm:
		return "TeForm"
	case Potential:
		return "Potential"
	case Passive:
		return "Passive"
	case Causative:
		return "Causative"
	case CausativePassive:
		return "CausativePassive"
	case PotentialOrPassive:
		return "PotentialOrPassive"
	case Imperative:
		return "Imperative"
	case Tai:
		return "Tai"
	case TeIru:
		return "TeIru"
	case TeAru:
		return "TeAru"
	case TeMiru:
		return "TeMiru"
	case TeShimau:
		return "TeShimau"
	case Chau:
		return "Chau"
	case TeOku:
		return "TeOku"
	case Toku:
		return "Toku"
	case Tara:
		return "Tara"
	case Tari:
		return "Tari"
	case Ba:
		return "Ba"
	default:
		return "Unknown"
	}
}

// Rule is one grammar rule: it matches a run of auxiliary lexemes named
// by Lexemes (in order; "*" matches any single auxiliary) and emits Tag.
// Multi-morpheme rules listed first so greedy matching prefers the
// longest pattern.
type Rule struct {
	Lexemes []string
	Tag     Inflection
}

// RuleSet is the grammar analyzer's rule table, expressed as an ordered
// slice so longest-match-first greediness is a simple linear scan.
type RuleSet struct {
	rules []Rule
}

// DefaultRuleSet returns the default RuleSet: the multi-morpheme patterns
// (て+いる, さ+せる, する+れる, ...) plus single-auxiliary rules. Present,
// Potential, Passive and Imperative have no rule, so Classify never emits
// them.
func DefaultRuleSet() RuleSet {
	return RuleSet{rules: []Rule{
		// multi-morpheme patterns, longest first
		{Lexemes: []string{"て", "いる"}, Tag: TeIru},
		{Lexemes: []string{"て", "ある"}, Tag: TeAru},
		{Lexemes: []string{"て", "みる"}, Tag: TeMiru},
		{Lexemes: []string{"て", "しまう"}, Tag: TeShimau},
		{Lexemes: []string{"て", "おく"}, Tag: TeOku},
		{Lexemes: []string{"さ", "せる"}, Tag: Causative},
		{Lexemes: []string{"する", "れる"}, Tag: CausativePassive},
		{Lexemes: []string{"せ", "られる"}, Tag: CausativePassive},

		// single-auxiliary patterns
		{Lexemes: []string{"ない"}, Tag: Negative},
		{Lexemes: []string{"ます"}, Tag: Polite},
		{Lexemes: []string{"た"}, Tag: Past},
		{Lexemes: []string{"だ"}, Tag: Past},
		{Lexemes: []string{"て"}, Tag: TeForm},
		{Lexemes: []string{"で"}, Tag: TeForm},
		{Lexemes: []string{"れる"}, Tag: PotentialOrPassive},
		{Lexemes: []string{"られる"}, Tag: PotentialOrPassive},
		{Lexemes: []string{"せる"}, Tag: Causative},
		{Lexemes: []string{"させる"}, Tag: Causative},
		{Lexemes: []string{"たい"}, Tag: Tai},
		{Lexemes: []string{"ちゃう"}, Tag: Chau},
		{Lexemes: []string{"じゃう"}, Tag: Chau},
		{Lexemes: []string{"とく"}, Tag: Toku},
		{Lexemes: []string{"たら"}, Tag: Tara},
		{Lexemes: []string{"だら"}, Tag: Tara},
		{Lexemes: []string{"たり"}, Tag: Tari},
		{Lexemes: []string{"だり"}, Tag: Tari},
		{Lexemes: []string{"ば"}, Tag: Ba},
	}}
}

// Classify walks aux bottom-up (in surface order) and returns every
// inflection tag the attached auxiliary chain matches, trying the
// longest Lexemes pattern first at each position.
func (rs RuleSet) Classify(aux []Morpheme) []Inflection {
	lexemes := make([]string, len(aux))
	for i, m := range aux {
		lexemes[i] = m.BaseForm
	}

	var tags []Inflection
	i := 0
	for i < len(lexemes) {
		matched := false
		for _, rule := range rs.rules {
			n := len(rule.Lexemes)
			if i+n > len(lexemes) {
				continue
			}
			if matchLexemes(lexemes[i:i+n], rule.Lexemes) {
				tags = append(tags, rule.Tag)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return tags
}

func matchLexemes(got, want []string) bool {
	for i, w := range want {
		if w == "*" {
			continue
		}
		if got[i] != w {
			return false
		}
	}
	return true
}
