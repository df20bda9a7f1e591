package resource

// Feature is one entry of the manifest stored alongside a resource blob,
// validated against RequiredFeatures by ResourceStorage.Check (Load itself
// does not validate).
type Feature string

const (
	FeatureWords     Feature = "words"
	FeatureKanji     Feature = "kanji"
	FeatureNames     Feature = "names"
	FeatureSentences Feature = "sentences"
	FeatureRadicals  Feature = "radicals"
	FeatureJLPT      Feature = "jlpt"
)

// RequiredFeatures is the closed list of features a ResourceStorage must
// report before Check() succeeds.
var RequiredFeatures = []Feature{
	FeatureWords,
	FeatureKanji,
	FeatureNames,
	FeatureSentences,
}

// FeatureSet is an unordered set of features reported by a loaded blob.
type FeatureSet map[Feature]bool

func NewFeatureSet(features ...Feature) FeatureSet {
	fs := make(FeatureSet, len(features))
	for _, f := range features {
		fs[f] = true
	}
	return fs
}

// Missing returns the subset of required not present in fs.
func (fs FeatureSet) Missing(required []Feature) []Feature {
	var missing []Feature
	for _, f := range required {
		if !fs[f] {
			missing = append(missing, f)
		}
	}
	return missing
}
