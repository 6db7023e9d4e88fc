package usecase

import (
	"context"
	"testing"

	"github.com/kirillkom/fretboard-chords/internal/core/chords"
	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

func TestListChordsAll(t *testing.T) {
	uc := NewCatalogUseCase(chords.DefaultCatalog())
	all, err := uc.ListChords(context.Background(), "")
	if err != nil {
		t.Fatalf("ListChords() error = %v", err)
	}
	if len(all) != chords.DefaultCatalog().Size() {
		t.Fatalf("expected full catalog, got %d", len(all))
	}
}

func TestListChordsByCategory(t *testing.T) {
	uc := NewCatalogUseCase(chords.DefaultCatalog())
	dims, err := uc.ListChords(context.Background(), " Diminished ")
	if err != nil {
		t.Fatalf("ListChords() error = %v", err)
	}
	if len(dims) != 12 {
		t.Fatalf("expected 12 diminished chords, got %d", len(dims))
	}
	for _, d := range dims {
		if d.Category != domain.CategoryDiminished {
			t.Fatalf("unexpected category in %+v", d)
		}
	}
}

func TestListChordsUnknownCategory(t *testing.T) {
	uc := NewCatalogUseCase(chords.DefaultCatalog())
	if _, err := uc.ListChords(context.Background(), "power"); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestGetChord(t *testing.T) {
	uc := NewCatalogUseCase(chords.DefaultCatalog())
	def, err := uc.GetChord(context.Background(), "Gsus4")
	if err != nil {
		t.Fatalf("GetChord() error = %v", err)
	}
	if def.Category != domain.CategorySuspended {
		t.Fatalf("unexpected chord: %+v", def)
	}
	if _, err := uc.GetChord(context.Background(), "Gsus9"); !domain.IsKind(err, domain.ErrChordNotFound) {
		t.Fatalf("expected chord not found, got %v", err)
	}
}
