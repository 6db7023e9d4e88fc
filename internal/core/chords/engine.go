package chords

import (
	"sort"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

const (
	minQueryNotes   = 2
	minMatchedNotes = 2
	minConfidence   = 60
	maxResults      = 6
)

// Engine ranks catalog chords against sets of played notes. It holds no
// mutable state, so one Engine serves any number of concurrent callers.
type Engine struct {
	catalog *Catalog
}

func NewEngine(catalog *Catalog) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Engine{catalog: catalog}
}

func (e *Engine) CatalogSize() int {
	return e.catalog.Size()
}

// Recognize returns up to six chords matching notes, exact matches first and
// then by descending confidence; equal candidates keep catalog order. Fewer
// than two input notes yield an empty result.
func (e *Engine) Recognize(notes []string) []domain.MatchResult {
	if len(notes) < minQueryNotes {
		return []domain.MatchResult{}
	}

	query := NormalizeUnique(notes)

	matches := make([]domain.MatchResult, 0, maxResults)
	for _, def := range e.catalog.chords {
		score := scorePitches(query, def.Notes)
		if score.MatchCount < minMatchedNotes || score.Percentage < minConfidence {
			continue
		}
		notesCopy := make([]domain.PitchClass, len(def.Notes))
		copy(notesCopy, def.Notes)
		matches = append(matches, domain.MatchResult{
			ChordID:      def.ID,
			Label:        def.Label,
			Structure:    def.Structure,
			Confidence:   score.Percentage,
			Notes:        notesCopy,
			IsExactMatch: score.IsExact,
			Category:     def.Category,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].IsExactMatch != matches[j].IsExactMatch {
			return matches[i].IsExactMatch
		}
		return matches[i].Confidence > matches[j].Confidence
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}
