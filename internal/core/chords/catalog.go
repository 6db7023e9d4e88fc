package chords

import (
	"fmt"
	"sync"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

const (
	minChordNotes = 3
	maxChordNotes = 5
)

// Catalog is the read-only reference table of known chords. It is safe for
// concurrent use; no method mutates it after construction.
type Catalog struct {
	chords []domain.ChordDefinition
	byID   map[string]int
}

// NewCatalog validates defs and builds a catalog that owns a private copy of them.
func NewCatalog(defs []domain.ChordDefinition) (*Catalog, error) {
	c := &Catalog{
		chords: make([]domain.ChordDefinition, 0, len(defs)),
		byID:   make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("chord #%d: empty id", i)
		}
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf("chord %s: duplicate id", def.ID)
		}
		if n := len(def.Notes); n < minChordNotes || n > maxChordNotes {
			return nil, fmt.Errorf("chord %s: expected %d-%d notes, got %d", def.ID, minChordNotes, maxChordNotes, n)
		}
		if !def.Category.Valid() {
			return nil, fmt.Errorf("chord %s: unknown category %q", def.ID, def.Category)
		}
		c.byID[def.ID] = len(c.chords)
		c.chords = append(c.chords, cloneDefinition(def))
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(builtinChords)
	if err != nil {
		panic(fmt.Sprintf("builtin chord table: %v", err))
	}
	return c
})

// DefaultCatalog returns the built-in chord table, constructed on first use.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

func (c *Catalog) Size() int {
	return len(c.chords)
}

// All returns every chord in table order.
func (c *Catalog) All() []domain.ChordDefinition {
	out := make([]domain.ChordDefinition, len(c.chords))
	for i, def := range c.chords {
		out[i] = cloneDefinition(def)
	}
	return out
}

func (c *Catalog) Lookup(id string) (domain.ChordDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.ChordDefinition{}, false
	}
	return cloneDefinition(c.chords[i]), true
}

// ByCategory returns the chords of one category in table order.
func (c *Catalog) ByCategory(category domain.ChordCategory) []domain.ChordDefinition {
	out := make([]domain.ChordDefinition, 0)
	for _, def := range c.chords {
		if def.Category == category {
			out = append(out, cloneDefinition(def))
		}
	}
	return out
}

func cloneDefinition(def domain.ChordDefinition) domain.ChordDefinition {
	notes := make([]domain.PitchClass, len(def.Notes))
	copy(notes, def.Notes)
	def.Notes = notes
	return def
}
