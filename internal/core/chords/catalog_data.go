package chords

import "github.com/kirillkom/fretboard-chords/internal/core/domain"

// builtinChords is the reference chord table. Order matters: ranking ties keep it.
var builtinChords = concat(
	family("Major", "Root + Major 3rd + Perfect 5th", domain.CategoryMajor,
		entry("C", "C", "E", "G"),
		entry("C#", "C#", "F", "G#"),
		entry("D", "D", "F#", "A"),
		entry("D#", "D#", "G", "A#"),
		entry("E", "E", "G#", "B"),
		entry("F", "F", "A", "C"),
		entry("F#", "F#", "A#", "C#"),
		entry("G", "G", "B", "D"),
		entry("G#", "G#", "C", "D#"),
		entry("A", "A", "C#", "E"),
		entry("A#", "A#", "D", "F"),
		entry("B", "B", "D#", "F#"),
	),
	family("Minor", "Root + Minor 3rd + Perfect 5th", domain.CategoryMinor,
		entry("Am", "A", "C", "E"),
		entry("A#m", "A#", "C#", "F"),
		entry("Bm", "B", "D", "F#"),
		entry("Cm", "C", "D#", "G"),
		entry("C#m", "C#", "E", "G#"),
		entry("Dm", "D", "F", "A"),
		entry("D#m", "D#", "F#", "A#"),
		entry("Em", "E", "G", "B"),
		entry("Fm", "F", "G#", "C"),
		entry("F#m", "F#", "A", "C#"),
		entry("Gm", "G", "A#", "D"),
		entry("G#m", "G#", "B", "D#"),
	),
	family("Dominant 7th", "Root + Major 3rd + Perfect 5th + Minor 7th", domain.CategorySeventh,
		entry("C7", "C", "E", "G", "A#"),
		entry("D7", "D", "F#", "A", "C"),
		entry("E7", "E", "G#", "B", "D"),
		entry("F7", "F", "A", "C", "D#"),
		entry("G7", "G", "B", "D", "F"),
		entry("A7", "A", "C#", "E", "G"),
		entry("B7", "B", "D#", "F#", "A"),
	),
	family("Major 7th", "Root + Major 3rd + Perfect 5th + Major 7th", domain.CategorySeventh,
		entry("Cmaj7", "C", "E", "G", "B"),
		entry("Dmaj7", "D", "F#", "A", "C#"),
		entry("Emaj7", "E", "G#", "B", "D#"),
		entry("Fmaj7", "F", "A", "C", "E"),
		entry("Gmaj7", "G", "B", "D", "F#"),
		entry("Amaj7", "A", "C#", "E", "G#"),
		entry("Bmaj7", "B", "D#", "F#", "A#"),
	),
	family("Minor 7th", "Root + Minor 3rd + Perfect 5th + Minor 7th", domain.CategorySeventh,
		entry("Am7", "A", "C", "E", "G"),
		entry("Bm7", "B", "D", "F#", "A"),
		entry("Cm7", "C", "D#", "G", "A#"),
		entry("Dm7", "D", "F", "A", "C"),
		entry("Em7", "E", "G", "B", "D"),
		entry("Fm7", "F", "G#", "C", "D#"),
		entry("Gm7", "G", "A#", "D", "F"),
	),
	// Sus2 and sus4 rows alternate per root. Ties keep catalog order, so
	// merging these blocks would change results.
	family("Suspended 2nd", "Root + 2nd + Perfect 5th", domain.CategorySuspended,
		entry("Csus2", "C", "D", "G"),
	),
	family("Suspended 4th", "Root + Perfect 4th + Perfect 5th", domain.CategorySuspended,
		entry("Csus4", "C", "F", "G"),
	),
	family("Suspended 2nd", "Root + 2nd + Perfect 5th", domain.CategorySuspended,
		entry("Dsus2", "D", "E", "A"),
	),
	family("Suspended 4th", "Root + Perfect 4th + Perfect 5th", domain.CategorySuspended,
		entry("Dsus4", "D", "G", "A"),
	),
	family("Suspended 2nd", "Root + 2nd + Perfect 5th", domain.CategorySuspended,
		entry("Esus2", "E", "F#", "B"),
	),
	family("Suspended 4th", "Root + Perfect 4th + Perfect 5th", domain.CategorySuspended,
		entry("Esus4", "E", "A", "B"),
	),
	family("Suspended 2nd", "Root + 2nd + Perfect 5th", domain.CategorySuspended,
		entry("Fsus2", "F", "G", "C"),
	),
	family("Suspended 4th", "Root + Perfect 4th + Perfect 5th", domain.CategorySuspended,
		entry("Fsus4", "F", "A#", "C"),
	),
	family("Suspended 2nd", "Root + 2nd + Perfect 5th", domain.CategorySuspended,
		entry("Gsus2", "G", "A", "D"),
	),
	family("Suspended 4th", "Root + Perfect 4th + Perfect 5th", domain.CategorySuspended,
		entry("Gsus4", "G", "C", "D"),
	),
	family("Suspended 2nd", "Root + 2nd + Perfect 5th", domain.CategorySuspended,
		entry("Asus2", "A", "B", "E"),
	),
	family("Suspended 4th", "Root + Perfect 4th + Perfect 5th", domain.CategorySuspended,
		entry("Asus4", "A", "D", "E"),
	),
	family("Add 9th", "Root + Major 3rd + Perfect 5th + 9th", domain.CategoryAdd,
		entry("Cadd9", "C", "D", "E", "G"),
		entry("Dadd9", "D", "E", "F#", "A"),
		entry("Gadd9", "G", "A", "B", "D"),
	),
	family("Diminished", "Root + Minor 3rd + Diminished 5th", domain.CategoryDiminished,
		entry("Cdim", "C", "D#", "F#"),
		entry("C#dim", "C#", "E", "G"),
		entry("Ddim", "D", "F", "G#"),
		entry("D#dim", "D#", "F#", "A"),
		entry("Edim", "E", "G", "A#"),
		entry("Fdim", "F", "G#", "B"),
		entry("F#dim", "F#", "A", "C"),
		entry("Gdim", "G", "A#", "C#"),
		entry("G#dim", "G#", "B", "D"),
		entry("Adim", "A", "C", "D#"),
		entry("A#dim", "A#", "C#", "E"),
		entry("Bdim", "B", "D", "F"),
	),
	family("Augmented", "Root + Major 3rd + Augmented 5th", domain.CategoryAugmented,
		entry("Caug", "C", "E", "G#"),
		entry("C#aug", "C#", "F", "A"),
		entry("Daug", "D", "F#", "A#"),
		entry("D#aug", "D#", "G", "B"),
		entry("Eaug", "E", "G#", "C"),
		entry("Faug", "F", "A", "C#"),
		entry("F#aug", "F#", "A#", "D"),
		entry("Gaug", "G", "B", "D#"),
		entry("G#aug", "G#", "C", "E"),
		entry("Aaug", "A", "C#", "F"),
		entry("A#aug", "A#", "D", "F#"),
		entry("Baug", "B", "D#", "G"),
	),
	family("Major 6th", "Root + Major 3rd + Perfect 5th + Major 6th", domain.CategorySixth,
		entry("C6", "C", "E", "G", "A"),
		entry("D6", "D", "F#", "A", "B"),
		entry("E6", "E", "G#", "B", "C#"),
		entry("F6", "F", "A", "C", "D"),
		entry("G6", "G", "B", "D", "E"),
		entry("A6", "A", "C#", "E", "F#"),
	),
	family("Minor 6th", "Root + Minor 3rd + Perfect 5th + Major 6th", domain.CategorySixth,
		entry("Am6", "A", "C", "E", "F#"),
		entry("Bm6", "B", "D", "F#", "G#"),
		entry("Cm6", "C", "D#", "G", "A"),
		entry("Dm6", "D", "F", "A", "B"),
		entry("Em6", "E", "G", "B", "C#"),
		entry("Fm6", "F", "G#", "C", "D"),
	),
	family("9th", "Root + Major 3rd + Perfect 5th + Minor 7th + 9th", domain.CategoryNinth,
		entry("C9", "C", "E", "G", "A#", "D"),
		entry("D9", "D", "F#", "A", "C", "E"),
		entry("E9", "E", "G#", "B", "D", "F#"),
		entry("F9", "F", "A", "C", "D#", "G"),
		entry("G9", "G", "B", "D", "F", "A"),
		entry("A9", "A", "C#", "E", "G", "B"),
		entry("B9", "B", "D#", "F#", "A", "C#"),
	),
	family("Minor 9th", "Root + Minor 3rd + Perfect 5th + Minor 7th + 9th", domain.CategoryNinth,
		entry("Am9", "A", "C", "E", "G", "B"),
		entry("Bm9", "B", "D", "F#", "A", "C#"),
		entry("Cm9", "C", "D#", "G", "A#", "D"),
		entry("Dm9", "D", "F", "A", "C", "E"),
		entry("Em9", "E", "G", "B", "D", "F#"),
		entry("Fm9", "F", "G#", "C", "D#", "G"),
		entry("Gm9", "G", "A#", "D", "F", "A"),
	),
	family("Major 9th", "Root + Major 3rd + Perfect 5th + Major 7th + 9th", domain.CategoryNinth,
		entry("Cmaj9", "C", "E", "G", "B", "D"),
		entry("Dmaj9", "D", "F#", "A", "C#", "E"),
		entry("Emaj9", "E", "G#", "B", "D#", "F#"),
		entry("Fmaj9", "F", "A", "C", "E", "G"),
		entry("Gmaj9", "G", "B", "D", "F#", "A"),
		entry("Amaj9", "A", "C#", "E", "G#", "B"),
		entry("Bmaj9", "B", "D#", "F#", "A#", "C#"),
	),
)

type chordEntry struct {
	id    string
	notes []domain.PitchClass
}

func entry(id string, notes ...string) chordEntry {
	pcs := make([]domain.PitchClass, len(notes))
	for i, n := range notes {
		pcs[i] = domain.PitchClass(n)
	}
	return chordEntry{id: id, notes: pcs}
}

// family expands entries sharing one chord quality into definitions.
func family(label, structure string, category domain.ChordCategory, entries ...chordEntry) []domain.ChordDefinition {
	out := make([]domain.ChordDefinition, len(entries))
	for i, e := range entries {
		out[i] = domain.ChordDefinition{
			ID:        e.id,
			Notes:     e.notes,
			Label:     label,
			Structure: structure,
			Category:  category,
		}
	}
	return out
}

func concat(families ...[]domain.ChordDefinition) []domain.ChordDefinition {
	var out []domain.ChordDefinition
	for _, f := range families {
		out = append(out, f...)
	}
	return out
}
