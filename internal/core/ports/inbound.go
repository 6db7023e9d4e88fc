package ports

import (
	"context"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

// ChordRecognizer is the inbound contract for chord recognition requests.
type ChordRecognizer interface {
	Recognize(ctx context.Context, notes []string) (*domain.RecognitionReport, error)
	CatalogSize() int
}

// ChordBrowser exposes read access to the chord table.
type ChordBrowser interface {
	ListChords(ctx context.Context, category string) ([]domain.ChordDefinition, error)
	GetChord(ctx context.Context, id string) (*domain.ChordDefinition, error)
}

// NoteService answers note frequency lookups and simulated playback.
type NoteService interface {
	NoteInfo(ctx context.Context, note string, octave int) (*domain.NoteInfo, error)
	PlayNote(ctx context.Context, req domain.PlayNoteRequest) (*domain.PlayNoteResponse, error)
}
