package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kirillkom/fretboard-chords/internal/core/chords"
	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

type publisherFake struct {
	events []domain.ChordRecognizedEvent
	err    error
}

func (f *publisherFake) PublishChordRecognized(_ context.Context, event domain.ChordRecognizedEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func TestRecognizeRejectsFewerThanTwoNotes(t *testing.T) {
	uc := NewRecognizeChordsUseCase(chords.NewEngine(nil), nil)
	for _, notes := range [][]string{nil, {"C"}} {
		_, err := uc.Recognize(context.Background(), notes)
		if !domain.IsKind(err, domain.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %v, got %v", notes, err)
		}
	}
}

func TestRecognizeBuildsReport(t *testing.T) {
	uc := NewRecognizeChordsUseCase(chords.NewEngine(nil), nil)
	report, err := uc.Recognize(context.Background(), []string{"C", "E", "G", "C", "E"})
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if report.TotalNotes != 5 {
		t.Fatalf("expected total notes 5, got %d", report.TotalNotes)
	}
	if len(report.UniqueNotes) != 3 || report.UniqueNotes[0] != "C" || report.UniqueNotes[2] != "G" {
		t.Fatalf("unexpected unique notes: %v", report.UniqueNotes)
	}
	if len(report.RecognizedChords) == 0 || report.RecognizedChords[0].ChordID != "C" {
		t.Fatalf("expected C on top, got %v", report.RecognizedChords)
	}
}

func TestRecognizeKeepsRawSpellingInUniqueNotes(t *testing.T) {
	uc := NewRecognizeChordsUseCase(chords.NewEngine(nil), nil)
	report, err := uc.Recognize(context.Background(), []string{"Db", "C#", "F", "Ab"})
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if len(report.UniqueNotes) != 4 {
		t.Fatalf("expected raw spellings kept apart, got %v", report.UniqueNotes)
	}
	if report.RecognizedChords[0].ChordID != "C#" {
		t.Fatalf("expected C# on top, got %s", report.RecognizedChords[0].ChordID)
	}
}

func TestRecognizePublishesEvent(t *testing.T) {
	pub := &publisherFake{}
	uc := NewRecognizeChordsUseCase(chords.NewEngine(nil), pub)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	if _, err := uc.Recognize(context.Background(), []string{"A", "C", "E"}); err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(pub.events))
	}
	event := pub.events[0]
	if event.ID == "" {
		t.Fatalf("expected event id")
	}
	if event.TopChord != "Am" || event.TopCategory != domain.CategoryMinor || !event.Exact {
		t.Fatalf("unexpected event top chord: %+v", event)
	}
	if !event.RecognizedAt.Equal(fixed) {
		t.Fatalf("expected recognized_at %v, got %v", fixed, event.RecognizedAt)
	}
}

func TestRecognizeIgnoresPublishFailure(t *testing.T) {
	pub := &publisherFake{err: errors.New("nats down")}
	uc := NewRecognizeChordsUseCase(chords.NewEngine(nil), pub)

	report, err := uc.Recognize(context.Background(), []string{"G", "B", "D"})
	if err != nil {
		t.Fatalf("publish failure must not fail recognition: %v", err)
	}
	if len(report.RecognizedChords) == 0 {
		t.Fatalf("expected recognized chords")
	}
}

func TestRecognizeEventWithoutCandidates(t *testing.T) {
	pub := &publisherFake{}
	uc := NewRecognizeChordsUseCase(chords.NewEngine(nil), pub)

	report, err := uc.Recognize(context.Background(), []string{"X", "Y"})
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if len(report.RecognizedChords) != 0 {
		t.Fatalf("expected no chords for unknown notes, got %v", report.RecognizedChords)
	}
	if pub.events[0].TopChord != "" || pub.events[0].Candidates != 0 {
		t.Fatalf("unexpected event: %+v", pub.events[0])
	}
}
