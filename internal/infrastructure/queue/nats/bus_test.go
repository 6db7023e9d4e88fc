package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/nats-io/nats.go"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

func TestClassifyNATSError(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		retry bool
		fail  bool
	}{
		{"canceled", context.Canceled, false, false},
		{"no servers", fmt.Errorf("nats publish: %w", nats.ErrNoServers), true, true},
		{"disconnected", nats.ErrDisconnected, true, true},
		{"payload", nats.ErrMaxPayload, false, true},
	}
	for _, tc := range cases {
		got := classifyNATSError(tc.err)
		if got.Retry != tc.retry || got.CountsAsFailure != tc.fail {
			t.Fatalf("%s: unexpected verdict %+v", tc.name, got)
		}
	}
}

func TestWrapTemporaryIfNeeded(t *testing.T) {
	if err := wrapTemporaryIfNeeded(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	err := wrapTemporaryIfNeeded(fmt.Errorf("nats publish: %w", nats.ErrConnectionClosed))
	if !domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("expected temporary kind, got %v", err)
	}
	permanent := errors.New("boom")
	if got := wrapTemporaryIfNeeded(permanent); got != permanent {
		t.Fatalf("expected permanent error unchanged, got %v", got)
	}
}

func TestConnectedFalseWithoutServer(t *testing.T) {
	bus := newWithConn(nil, "chords.recognized", nil)
	if bus.Connected() {
		t.Fatalf("expected bus without connection to report disconnected")
	}
	bus.Close()
}

func TestDispatchDecodesEvent(t *testing.T) {
	raw, _ := json.Marshal(domain.ChordRecognizedEvent{ID: "evt-1", TopChord: "Am", Exact: true})

	var got domain.ChordRecognizedEvent
	err := dispatch(context.Background(), raw, func(_ context.Context, event domain.ChordRecognizedEvent) error {
		got = event
		return nil
	})
	if err != nil {
		t.Fatalf("dispatch() error = %v", err)
	}
	if got.ID != "evt-1" || got.TopChord != "Am" || !got.Exact {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestDispatchRejectsMalformedPayload(t *testing.T) {
	called := false
	err := dispatch(context.Background(), []byte("{not json"), func(context.Context, domain.ChordRecognizedEvent) error {
		called = true
		return nil
	})
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run for malformed payloads")
	}
}
