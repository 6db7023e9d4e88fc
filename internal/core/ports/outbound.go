package ports

import (
	"context"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

// EventPublisher broadcasts recognition events to interested consumers.
type EventPublisher interface {
	PublishChordRecognized(ctx context.Context, event domain.ChordRecognizedEvent) error
}

// EventSubscriber consumes recognition events until ctx is done.
type EventSubscriber interface {
	SubscribeChordRecognized(ctx context.Context, handler func(context.Context, domain.ChordRecognizedEvent) error) error
}

// CatalogMirror keeps an external copy of the chord table for reporting tools.
type CatalogMirror interface {
	SyncCatalog(ctx context.Context, chords []domain.ChordDefinition) error
	CountChords(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}
