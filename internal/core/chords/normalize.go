package chords

import "github.com/kirillkom/fretboard-chords/internal/core/domain"

var flatToSharp = map[string]domain.PitchClass{
	"Db": domain.PitchCs,
	"Eb": domain.PitchDs,
	"Gb": domain.PitchFs,
	"Ab": domain.PitchGs,
	"Bb": domain.PitchAs,
}

// NormalizePitch rewrites flat spellings to their sharp equivalent. Any other
// string, recognized or not, is returned unchanged.
func NormalizePitch(name string) domain.PitchClass {
	if sharp, ok := flatToSharp[name]; ok {
		return sharp
	}
	return domain.PitchClass(name)
}

// NormalizeUnique normalizes every name and drops repeats, keeping the first
// occurrence of each pitch class in input order.
func NormalizeUnique(names []string) []domain.PitchClass {
	out := make([]domain.PitchClass, 0, len(names))
	seen := make(map[domain.PitchClass]struct{}, len(names))
	for _, name := range names {
		pc := NormalizePitch(name)
		if _, ok := seen[pc]; ok {
			continue
		}
		seen[pc] = struct{}{}
		out = append(out, pc)
	}
	return out
}

func uniquePitches(pitches []domain.PitchClass) []domain.PitchClass {
	out := make([]domain.PitchClass, 0, len(pitches))
	seen := make(map[domain.PitchClass]struct{}, len(pitches))
	for _, p := range pitches {
		pc := NormalizePitch(string(p))
		if _, ok := seen[pc]; ok {
			continue
		}
		seen[pc] = struct{}{}
		out = append(out, pc)
	}
	return out
}

// UniqueStrings drops repeated strings while keeping first-occurrence order.
func UniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
