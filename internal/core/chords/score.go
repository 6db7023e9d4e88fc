package chords

import "github.com/kirillkom/fretboard-chords/internal/core/domain"

// extraNotePenalty is subtracted from the overlap percentage for every distinct
// input note beyond the size of the chord.
const extraNotePenalty = 15

// Score describes how well one set of input notes covers one chord.
type Score struct {
	MatchCount int
	Percentage int
	IsExact    bool
	ExtraCount int
}

// ScoreChord compares input notes with the reference notes of a chord. Both
// sides are normalized and deduplicated before comparison, so the result does
// not depend on input order or repeats.
func ScoreChord(input []string, chord []domain.PitchClass) Score {
	return scorePitches(NormalizeUnique(input), chord)
}

// scorePitches is ScoreChord for input that is already normalized and
// deduplicated.
func scorePitches(in []domain.PitchClass, chord []domain.PitchClass) Score {
	ref := uniquePitches(chord)

	refSet := make(map[domain.PitchClass]struct{}, len(ref))
	for _, pc := range ref {
		refSet[pc] = struct{}{}
	}
	matched := 0
	for _, pc := range in {
		if _, ok := refSet[pc]; ok {
			matched++
		}
	}

	score := Score{
		MatchCount: matched,
		ExtraCount: len(in) - matched,
	}
	if len(ref) == 0 {
		return score
	}

	// matched == len(ref) is the integer form of a 100% overlap.
	score.IsExact = len(in) == len(ref) && matched == len(ref)
	if score.IsExact {
		score.Percentage = 100
		return score
	}

	penalty := 0
	if extra := len(in) - len(ref); extra > 0 {
		penalty = extra * extraNotePenalty
	}
	// floor(matched/len(ref)*100 - penalty) in integer arithmetic.
	numerator := matched*100 - penalty*len(ref)
	if numerator > 0 {
		score.Percentage = numerator / len(ref)
	}
	return score
}
