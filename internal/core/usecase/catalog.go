package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kirillkom/fretboard-chords/internal/core/chords"
	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

type CatalogUseCase struct {
	catalog *chords.Catalog
}

func NewCatalogUseCase(catalog *chords.Catalog) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// ListChords returns the whole table, or one category of it when category is set.
func (uc *CatalogUseCase) ListChords(_ context.Context, category string) ([]domain.ChordDefinition, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return uc.catalog.All(), nil
	}
	cat := domain.ChordCategory(category)
	if !cat.Valid() {
		return nil, domain.WrapError(domain.ErrInvalidInput, "list chords", fmt.Errorf("unknown category %q", category))
	}
	return uc.catalog.ByCategory(cat), nil
}

func (uc *CatalogUseCase) GetChord(_ context.Context, id string) (*domain.ChordDefinition, error) {
	def, ok := uc.catalog.Lookup(strings.TrimSpace(id))
	if !ok {
		return nil, domain.WrapError(domain.ErrChordNotFound, "get chord", fmt.Errorf("id=%s", id))
	}
	return &def, nil
}
