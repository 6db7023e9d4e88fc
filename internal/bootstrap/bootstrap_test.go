package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/kirillkom/fretboard-chords/internal/config"
)

func TestNewCoreWiresUseCasesWithoutInfrastructure(t *testing.T) {
	app, err := NewCore(config.Config{ServiceName: "test"})
	if err != nil {
		t.Fatalf("NewCore() error = %v", err)
	}
	defer app.Close()

	if app.Mirror != nil || app.Events != nil {
		t.Fatalf("expected no infrastructure in core app")
	}
	if app.Catalog.Size() != 117 {
		t.Fatalf("expected full catalog, got %d", app.Catalog.Size())
	}

	report, err := app.RecognizeUC.Recognize(context.Background(), []string{"G", "B", "D", "F"})
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if report.RecognizedChords[0].ChordID != "G7" {
		t.Fatalf("expected G7 first, got %s", report.RecognizedChords[0].ChordID)
	}
}

func TestNewSkipsUnconfiguredInfrastructure(t *testing.T) {
	app, err := New(context.Background(), config.Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer app.Close()

	if app.Mirror != nil || app.Events != nil {
		t.Fatalf("expected optional dependencies to stay disabled")
	}
}

func TestPolicyFromConfig(t *testing.T) {
	policy := policyFromConfig(config.Config{
		ResilienceRetryMaxAttempts:    5,
		ResilienceRetryInitialBackoff: 250 * time.Millisecond,
		ResilienceBreakerEnabled:      false,
	})
	if policy.MaxAttempts != 5 || policy.InitialBackoff != 250*time.Millisecond || policy.BreakerEnabled {
		t.Fatalf("unexpected policy: %+v", policy)
	}

	policy = policyFromConfig(config.Config{ResilienceBreakerEnabled: true})
	if policy.MaxAttempts != 3 || !policy.BreakerEnabled {
		t.Fatalf("expected defaults, got %+v", policy)
	}
}
