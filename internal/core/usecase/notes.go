package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/kirillkom/fretboard-chords/internal/core/chords"
	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

const (
	minOctave = 0
	maxOctave = 7

	concertPitchHz   = 440.0
	concertPitchMIDI = 69 // A4
)

type NoteUseCase struct {
	frequencies map[string]float64
}

func NewNoteUseCase() *NoteUseCase {
	return &NoteUseCase{frequencies: buildFrequencyTable()}
}

// buildFrequencyTable maps "<pitch><octave>" to its equal-tempered frequency,
// rounded to two decimals, for octaves 0 through 7.
func buildFrequencyTable() map[string]float64 {
	table := make(map[string]float64, len(domain.PitchClasses)*(maxOctave-minOctave+1))
	for octave := minOctave; octave <= maxOctave; octave++ {
		for i, pc := range domain.PitchClasses {
			midi := (octave+1)*12 + i
			hz := concertPitchHz * math.Pow(2, float64(midi-concertPitchMIDI)/12)
			table[noteKey(pc, octave)] = math.Round(hz*100) / 100
		}
	}
	return table
}

func noteKey(pc domain.PitchClass, octave int) string {
	return fmt.Sprintf("%s%d", pc, octave)
}

func (uc *NoteUseCase) lookup(note string, octave int) (string, float64, bool) {
	key := noteKey(chords.NormalizePitch(strings.TrimSpace(note)), octave)
	hz, ok := uc.frequencies[key]
	return key, hz, ok
}

func (uc *NoteUseCase) NoteInfo(_ context.Context, note string, octave int) (*domain.NoteInfo, error) {
	key, hz, ok := uc.lookup(note, octave)
	if !ok {
		return nil, domain.WrapError(domain.ErrNoteNotFound, "note info", fmt.Errorf("note %s not found", key))
	}
	return &domain.NoteInfo{
		Note:      key,
		Frequency: &hz,
		Available: true,
	}, nil
}

// PlayNote simulates playback of a single note. Unknown notes are reported
// with an error status rather than a failure.
func (uc *NoteUseCase) PlayNote(_ context.Context, req domain.PlayNoteRequest) (*domain.PlayNoteResponse, error) {
	if strings.TrimSpace(req.Note) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "play note", errors.New("note is required"))
	}
	octave := domain.DefaultOctave
	if req.Octave != nil {
		octave = *req.Octave
	}
	duration := domain.DefaultNoteDurationMs
	if req.Duration != nil {
		duration = *req.Duration
	}
	if duration < 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "play note", fmt.Errorf("duration must be non-negative, got %d", duration))
	}

	key, hz, ok := uc.lookup(req.Note, octave)
	if !ok {
		slog.Warn("note_not_in_frequency_table", "note", key)
		return &domain.PlayNoteResponse{
			Status:   domain.PlayStatusError,
			Note:     key,
			Duration: duration,
		}, nil
	}

	slog.Info("play_note", "note", key, "frequency_hz", hz, "duration_ms", duration)
	return &domain.PlayNoteResponse{
		Status:   domain.PlayStatusPlaying,
		Note:     key,
		Duration: duration,
	}, nil
}
