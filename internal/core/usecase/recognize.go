package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/fretboard-chords/internal/core/chords"
	"github.com/kirillkom/fretboard-chords/internal/core/domain"
	"github.com/kirillkom/fretboard-chords/internal/core/ports"
)

const minRecognitionNotes = 2

var errTooFewNotes = errors.New("at least 2 notes are required for chord recognition")

type RecognizeChordsUseCase struct {
	engine    *chords.Engine
	publisher ports.EventPublisher
	now       func() time.Time
}

// NewRecognizeChordsUseCase builds the recognition flow. publisher may be nil,
// in which case no events are emitted.
func NewRecognizeChordsUseCase(engine *chords.Engine, publisher ports.EventPublisher) *RecognizeChordsUseCase {
	return &RecognizeChordsUseCase{
		engine:    engine,
		publisher: publisher,
		now:       time.Now,
	}
}

func (uc *RecognizeChordsUseCase) CatalogSize() int {
	return uc.engine.CatalogSize()
}

func (uc *RecognizeChordsUseCase) Recognize(ctx context.Context, notes []string) (*domain.RecognitionReport, error) {
	if len(notes) < minRecognitionNotes {
		return nil, domain.WrapError(domain.ErrInvalidInput, "recognize chords", errTooFewNotes)
	}

	report := &domain.RecognitionReport{
		RecognizedChords: uc.engine.Recognize(notes),
		UniqueNotes:      chords.UniqueStrings(notes),
		TotalNotes:       len(notes),
	}

	if uc.publisher != nil {
		event := uc.buildEvent(notes, report)
		if err := uc.publisher.PublishChordRecognized(ctx, event); err != nil {
			slog.Warn("publish_chord_recognized_failed",
				"event_id", event.ID,
				"error", err,
			)
		}
	}

	return report, nil
}

func (uc *RecognizeChordsUseCase) buildEvent(notes []string, report *domain.RecognitionReport) domain.ChordRecognizedEvent {
	event := domain.ChordRecognizedEvent{
		ID:           uuid.NewString(),
		Notes:        append([]string(nil), notes...),
		UniqueNotes:  report.UniqueNotes,
		Candidates:   len(report.RecognizedChords),
		RecognizedAt: uc.now().UTC(),
	}
	if len(report.RecognizedChords) > 0 {
		top := report.RecognizedChords[0]
		event.TopChord = top.ChordID
		event.TopCategory = top.Category
		event.Exact = top.IsExactMatch
	}
	return event
}
