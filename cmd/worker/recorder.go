package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
	"github.com/kirillkom/fretboard-chords/internal/observability/metrics"
)

// eventRecorder turns recognition events into worker metrics.
type eventRecorder struct {
	service string
	metrics *metrics.WorkerMetrics
	now     func() time.Time
}

func newEventRecorder(service string, workerMetrics *metrics.WorkerMetrics) *eventRecorder {
	return &eventRecorder{
		service: service,
		metrics: workerMetrics,
		now:     time.Now,
	}
}

func (r *eventRecorder) Handle(_ context.Context, event domain.ChordRecognizedEvent) error {
	started := r.now()
	err := r.record(event)
	r.metrics.FinishEvent(r.service, r.now().Sub(started), err)
	if err != nil {
		slog.Warn("chord_event_rejected", "event_id", event.ID, "error", err)
		return err
	}

	slog.Debug("chord_event_recorded",
		"event_id", event.ID,
		"top_chord", event.TopChord,
		"exact", event.Exact,
		"candidates", event.Candidates,
	)
	return nil
}

func (r *eventRecorder) record(event domain.ChordRecognizedEvent) error {
	if event.ID == "" {
		return domain.WrapError(domain.ErrInvalidInput, "record chord event", errors.New("event id is empty"))
	}
	if !event.RecognizedAt.IsZero() {
		r.metrics.ObserveEventLag(r.service, r.now().Sub(event.RecognizedAt))
	}
	r.metrics.ObserveTopChord(r.service, string(event.TopCategory), event.Exact)
	return nil
}
