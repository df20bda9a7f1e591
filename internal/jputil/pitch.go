package jputil

import "strings"

// PitchSegment is one labeled run of a pitch-accent split, as produced by
// CalcPitch. The trailing zero-length segment's High flag distinguishes
// odaka (drop occurs on the particle following the word) from heiban (no
// drop at all, the particle stays high).
type PitchSegment struct {
	Text string
	High bool
}

// CalcPitch splits kana into pitch segments for the given drop index
// (0..6). drop==0 is heiban (flat: first mora low, rest
// high, particle stays high); drop==1 is atamadaka (first mora high, rest
// low); 1<drop<n is nakadaka (drop occurs mid-word); drop>=n is odaka (first
// mora low, rest high, the drop lands on the following particle).
//
// The concatenation of every segment's Text always equals kana, for every
// drop in 0..=6, regardless of how many morae kana actually has.
func CalcPitch(kana string, drop int) []PitchSegment {
	moras := SplitKana(kana)
	n := len(moras)
	if n == 0 {
		return []PitchSegment{{Text: "", High: false}}
	}

	join := func(ms []string) string { return strings.Join(ms, "") }

	switch {
	case drop == 0:
		segs := []PitchSegment{{Text: moras[0], High: false}}
		if n > 1 {
			segs = append(segs, PitchSegment{Text: join(moras[1:]), High: true})
		}
		return append(segs, PitchSegment{Text: "", High: true})
	case drop == 1:
		segs := []PitchSegment{{Text: moras[0], High: true}}
		if n > 1 {
			segs = append(segs, PitchSegment{Text: join(moras[1:]), High: false})
		}
		return append(segs, PitchSegment{Text: "", High: false})
	case drop >= n:
		segs := []PitchSegment{{Text: moras[0], High: false}}
		if n > 1 {
			segs = append(segs, PitchSegment{Text: join(moras[1:]), High: true})
		}
		return append(segs, PitchSegment{Text: "", High: false})
	default:
		return []PitchSegment{
			{Text: moras[0], High: false},
			{Text: join(moras[1:drop]), High: true},
			{Text: join(moras[drop:]), High: false},
			{Text: "", High: false},
		}
	}
}
