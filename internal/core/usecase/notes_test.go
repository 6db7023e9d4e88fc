package usecase

import (
	"context"
	"testing"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

func TestNoteInfoConcertPitch(t *testing.T) {
	uc := NewNoteUseCase()
	info, err := uc.NoteInfo(context.Background(), "A", 4)
	if err != nil {
		t.Fatalf("NoteInfo() error = %v", err)
	}
	if info.Note != "A4" || !info.Available || info.Frequency == nil || *info.Frequency != 440 {
		t.Fatalf("unexpected A4 info: %+v", info)
	}
}

func TestNoteInfoRoundsAndNormalizes(t *testing.T) {
	uc := NewNoteUseCase()
	cases := map[string]struct {
		note   string
		octave int
		key    string
		hz     float64
	}{
		"middle c":   {"C", 4, "C4", 261.63},
		"flat":       {"Bb", 3, "A#3", 233.08},
		"lowest":     {"C", 0, "C0", 16.35},
		"highest b":  {"B", 7, "B7", 3951.07},
		"sharp name": {"F#", 2, "F#2", 92.5},
	}
	for name, tc := range cases {
		info, err := uc.NoteInfo(context.Background(), tc.note, tc.octave)
		if err != nil {
			t.Fatalf("%s: NoteInfo() error = %v", name, err)
		}
		if info.Note != tc.key || *info.Frequency != tc.hz {
			t.Fatalf("%s: expected %s=%.2f, got %s=%.2f", name, tc.key, tc.hz, info.Note, *info.Frequency)
		}
	}
}

func TestNoteInfoUnknownNote(t *testing.T) {
	uc := NewNoteUseCase()
	for _, tc := range []struct {
		note   string
		octave int
	}{{"H", 4}, {"C", 8}, {"C", -1}} {
		if _, err := uc.NoteInfo(context.Background(), tc.note, tc.octave); !domain.IsKind(err, domain.ErrNoteNotFound) {
			t.Fatalf("expected not found for %s%d, got %v", tc.note, tc.octave, err)
		}
	}
}

func TestPlayNoteDefaults(t *testing.T) {
	uc := NewNoteUseCase()
	res, err := uc.PlayNote(context.Background(), domain.PlayNoteRequest{Note: "E"})
	if err != nil {
		t.Fatalf("PlayNote() error = %v", err)
	}
	if res.Status != domain.PlayStatusPlaying || res.Note != "E4" || res.Duration != 500 {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestPlayNoteUnknownReportsErrorStatus(t *testing.T) {
	uc := NewNoteUseCase()
	octave := 9
	duration := 250
	res, err := uc.PlayNote(context.Background(), domain.PlayNoteRequest{Note: "G", Octave: &octave, Duration: &duration})
	if err != nil {
		t.Fatalf("PlayNote() error = %v", err)
	}
	if res.Status != domain.PlayStatusError || res.Note != "G9" || res.Duration != 250 {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestPlayNoteValidation(t *testing.T) {
	uc := NewNoteUseCase()
	if _, err := uc.PlayNote(context.Background(), domain.PlayNoteRequest{}); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty note, got %v", err)
	}
	negative := -1
	if _, err := uc.PlayNote(context.Background(), domain.PlayNoteRequest{Note: "C", Duration: &negative}); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for negative duration, got %v", err)
	}
}
