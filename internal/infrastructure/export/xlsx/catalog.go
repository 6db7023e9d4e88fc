package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

const SheetName = "Chords"

var header = []any{"Name", "Type", "Structure", "Category", "Notes"}

// WriteCatalog renders chords as a single-sheet workbook, one row per chord.
func WriteCatalog(w io.Writer, chords []domain.ChordDefinition) error {
	f, err := buildWorkbook(chords)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func buildWorkbook(chords []domain.ChordDefinition) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, chord := range chords {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("cell name: %w", err)
		}
		row := []any{chord.ID, chord.Label, chord.Structure, string(chord.Category), joinNotes(chord.Notes)}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write chord %s: %w", chord.ID, err)
		}
	}
	return f, nil
}

func joinNotes(notes []domain.PitchClass) string {
	parts := make([]string, 0, len(notes))
	for _, note := range notes {
		parts = append(parts, string(note))
	}
	return strings.Join(parts, " ")
}
