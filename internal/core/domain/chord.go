package domain

import "time"

// PitchClass is an octave-independent note name in sharp spelling.
type PitchClass string

const (
	PitchC  PitchClass = "C"
	PitchCs PitchClass = "C#"
	PitchD  PitchClass = "D"
	PitchDs PitchClass = "D#"
	PitchE  PitchClass = "E"
	PitchF  PitchClass = "F"
	PitchFs PitchClass = "F#"
	PitchG  PitchClass = "G"
	PitchGs PitchClass = "G#"
	PitchA  PitchClass = "A"
	PitchAs PitchClass = "A#"
	PitchB  PitchClass = "B"
)

// PitchClasses lists the twelve pitch classes in chromatic order starting at C.
var PitchClasses = [12]PitchClass{
	PitchC, PitchCs, PitchD, PitchDs, PitchE, PitchF,
	PitchFs, PitchG, PitchGs, PitchA, PitchAs, PitchB,
}

type ChordCategory string

const (
	CategoryMajor      ChordCategory = "major"
	CategoryMinor      ChordCategory = "minor"
	CategorySeventh    ChordCategory = "seventh"
	CategorySuspended  ChordCategory = "suspended"
	CategoryAdd        ChordCategory = "add"
	CategoryDiminished ChordCategory = "diminished"
	CategoryAugmented  ChordCategory = "augmented"
	CategorySixth      ChordCategory = "sixth"
	CategoryNinth      ChordCategory = "ninth"
)

var chordCategories = map[ChordCategory]struct{}{
	CategoryMajor:      {},
	CategoryMinor:      {},
	CategorySeventh:    {},
	CategorySuspended:  {},
	CategoryAdd:        {},
	CategoryDiminished: {},
	CategoryAugmented:  {},
	CategorySixth:      {},
	CategoryNinth:      {},
}

func (c ChordCategory) Valid() bool {
	_, ok := chordCategories[c]
	return ok
}

// ChordDefinition is one entry of the reference chord table.
type ChordDefinition struct {
	ID        string        `json:"name"`
	Notes     []PitchClass  `json:"notes"`
	Label     string        `json:"type"`
	Structure string        `json:"structure"`
	Category  ChordCategory `json:"category"`
}

// MatchResult is a catalog entry scored against one recognition query.
type MatchResult struct {
	ChordID      string        `json:"name"`
	Label        string        `json:"type"`
	Structure    string        `json:"structure"`
	Confidence   int           `json:"confidence"`
	Notes        []PitchClass  `json:"notes"`
	IsExactMatch bool          `json:"is_exact_match"`
	Category     ChordCategory `json:"category"`
}

type NotePosition struct {
	String int    `json:"string"`
	Fret   int    `json:"fret"`
	Note   string `json:"note"`
}

type RecognitionReport struct {
	RecognizedChords []MatchResult `json:"recognized_chords"`
	UniqueNotes      []string      `json:"unique_notes"`
	TotalNotes       int           `json:"total_notes"`
}

// ChordRecognizedEvent is broadcast after a successful recognition request.
type ChordRecognizedEvent struct {
	ID           string        `json:"id"`
	Notes        []string      `json:"notes"`
	UniqueNotes  []string      `json:"unique_notes"`
	TopChord     string        `json:"top_chord,omitempty"`
	TopCategory  ChordCategory `json:"top_category,omitempty"`
	Candidates   int           `json:"candidates"`
	Exact        bool          `json:"exact"`
	RecognizedAt time.Time     `json:"recognized_at"`
}
