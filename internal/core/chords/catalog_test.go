package chords

import (
	"testing"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

func TestDefaultCatalogContents(t *testing.T) {
	catalog := DefaultCatalog()
	if catalog.Size() != 117 {
		t.Fatalf("expected 117 chords, got %d", catalog.Size())
	}
	counts := map[domain.ChordCategory]int{}
	for _, def := range catalog.All() {
		counts[def.Category]++
		for _, n := range def.Notes {
			if NormalizePitch(string(n)) != n {
				t.Fatalf("chord %s stores non-canonical note %q", def.ID, n)
			}
		}
	}
	want := map[domain.ChordCategory]int{
		domain.CategoryMajor:      12,
		domain.CategoryMinor:      12,
		domain.CategorySeventh:    21,
		domain.CategorySuspended:  12,
		domain.CategoryAdd:        3,
		domain.CategoryDiminished: 12,
		domain.CategoryAugmented:  12,
		domain.CategorySixth:      12,
		domain.CategoryNinth:      21,
	}
	for cat, n := range want {
		if counts[cat] != n {
			t.Fatalf("category %s: expected %d chords, got %d", cat, n, counts[cat])
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	def, ok := DefaultCatalog().Lookup("Cm7")
	if !ok {
		t.Fatalf("expected Cm7")
	}
	if def.Label != "Minor 7th" || def.Structure != "Root + Minor 3rd + Perfect 5th + Minor 7th" {
		t.Fatalf("unexpected Cm7 definition: %+v", def)
	}
	if _, ok := DefaultCatalog().Lookup("Cmaj13"); ok {
		t.Fatalf("unexpected lookup hit")
	}
}

func TestCatalogByCategoryKeepsTableOrder(t *testing.T) {
	adds := DefaultCatalog().ByCategory(domain.CategoryAdd)
	if len(adds) != 3 || adds[0].ID != "Cadd9" || adds[1].ID != "Dadd9" || adds[2].ID != "Gadd9" {
		t.Fatalf("unexpected add chords: %+v", adds)
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	catalog := DefaultCatalog()
	all := catalog.All()
	all[0].Notes[0] = "X"
	all[0].ID = "changed"

	def, ok := catalog.Lookup("C")
	if !ok || def.Notes[0] != "C" {
		t.Fatalf("catalog mutated through All(): %+v", def)
	}
}

func TestNewCatalogRejectsInvalidDefinitions(t *testing.T) {
	cases := []struct {
		name string
		defs []domain.ChordDefinition
	}{
		{"empty id", []domain.ChordDefinition{{Notes: pcs("C", "E", "G"), Category: domain.CategoryMajor}}},
		{"too few notes", []domain.ChordDefinition{{ID: "X", Notes: pcs("C", "E"), Category: domain.CategoryMajor}}},
		{"too many notes", []domain.ChordDefinition{{ID: "X", Notes: pcs("C", "D", "E", "F", "G", "A"), Category: domain.CategoryMajor}}},
		{"unknown category", []domain.ChordDefinition{{ID: "X", Notes: pcs("C", "E", "G"), Category: "power"}}},
		{"duplicate id", []domain.ChordDefinition{
			{ID: "C", Notes: pcs("C", "E", "G"), Category: domain.CategoryMajor},
			{ID: "C", Notes: pcs("C", "E", "G#"), Category: domain.CategoryAugmented},
		}},
	}
	for _, tc := range cases {
		if _, err := NewCatalog(tc.defs); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	notes := pcs("C", "E", "G")
	catalog, err := NewCatalog([]domain.ChordDefinition{{ID: "C", Notes: notes, Category: domain.CategoryMajor}})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	notes[0] = "X"
	def, _ := catalog.Lookup("C")
	if def.Notes[0] != "C" {
		t.Fatalf("catalog aliases caller slice: %v", def.Notes)
	}
}

func TestSuspendedChordsAlternatePerRoot(t *testing.T) {
	want := []string{
		"Csus2", "Csus4", "Dsus2", "Dsus4", "Esus2", "Esus4",
		"Fsus2", "Fsus4", "Gsus2", "Gsus4", "Asus2", "Asus4",
	}
	got := DefaultCatalog().ByCategory(domain.CategorySuspended)
	if len(got) != len(want) {
		t.Fatalf("expected %d suspended chords, got %d", len(want), len(got))
	}
	for i, def := range got {
		if def.ID != want[i] {
			t.Fatalf("suspended chord %d = %s, want %s", i, def.ID, want[i])
		}
	}
}
