package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirillkom/fretboard-chords/internal/config"
	"github.com/kirillkom/fretboard-chords/internal/core/chords"
	"github.com/kirillkom/fretboard-chords/internal/core/ports"
	"github.com/kirillkom/fretboard-chords/internal/core/usecase"
	"github.com/kirillkom/fretboard-chords/internal/infrastructure/queue/nats"
	"github.com/kirillkom/fretboard-chords/internal/infrastructure/repository/postgres"
	"github.com/kirillkom/fretboard-chords/internal/infrastructure/resilience"
)

type App struct {
	Config config.Config

	Catalog *chords.Catalog
	Engine  *chords.Engine

	RecognizeUC *usecase.RecognizeChordsUseCase
	CatalogUC   *usecase.CatalogUseCase
	NoteUC      *usecase.NoteUseCase

	// Mirror and Events are nil when POSTGRES_DSN / NATS_URL are unset.
	Mirror ports.CatalogMirror
	Events *nats.EventBus

	closeFn func()
}

// NewCore builds the in-process engine and use cases without touching any
// external system. The CLI and the MCP server run on it.
func NewCore(cfg config.Config) (*App, error) {
	return newApp(cfg, nil)
}

// New builds the full application: core plus the optional catalog mirror and
// event bus.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	executor := resilience.NewExecutor(policyFromConfig(cfg))

	var (
		mirror  *postgres.ChordRepository
		events  *nats.EventBus
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.PostgresDSN != "" {
		db, err := postgres.OpenDB(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		closers = append(closers, func() { _ = db.Close() })
		mirror = postgres.NewChordRepository(db)
		if err := mirror.EnsureSchema(ctx); err != nil {
			closeAll()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
	}

	if cfg.NATSURL != "" {
		bus, err := nats.New(cfg.NATSURL, cfg.NATSSubject, nats.Options{
			ClientName: cfg.ServiceName,
			Executor:   executor,
		})
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("init event bus: %w", err)
		}
		closers = append(closers, bus.Close)
		events = bus
	}

	var publisher ports.EventPublisher
	if events != nil {
		publisher = events
	}
	app, err := newApp(cfg, publisher)
	if err != nil {
		closeAll()
		return nil, err
	}
	app.Events = events
	app.closeFn = closeAll

	if mirror != nil {
		app.Mirror = mirror
		if err := syncCatalog(ctx, executor, mirror, app.Catalog); err != nil {
			closeAll()
			return nil, err
		}
	}
	return app, nil
}

func newApp(cfg config.Config, publisher ports.EventPublisher) (*App, error) {
	catalog := chords.DefaultCatalog()
	engine := chords.NewEngine(catalog)
	if engine.CatalogSize() == 0 {
		return nil, fmt.Errorf("chord catalog is empty")
	}

	return &App{
		Config:      cfg,
		Catalog:     catalog,
		Engine:      engine,
		RecognizeUC: usecase.NewRecognizeChordsUseCase(engine, publisher),
		CatalogUC:   usecase.NewCatalogUseCase(catalog),
		NoteUC:      usecase.NewNoteUseCase(),
	}, nil
}

func syncCatalog(ctx context.Context, executor *resilience.Executor, mirror ports.CatalogMirror, catalog *chords.Catalog) error {
	started := time.Now()
	err := executor.Execute(ctx, "postgres.sync_catalog", func(ctx context.Context) error {
		return mirror.SyncCatalog(ctx, catalog.All())
	}, postgres.ClassifyError)
	if err != nil {
		return fmt.Errorf("sync chord catalog: %w", err)
	}

	count, err := mirror.CountChords(ctx)
	if err != nil {
		return fmt.Errorf("count mirrored chords: %w", err)
	}
	slog.Info("chord_catalog_synced",
		"chords", catalog.Size(),
		"mirrored", count,
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return nil
}

func policyFromConfig(cfg config.Config) resilience.Policy {
	policy := resilience.DefaultPolicy()
	if cfg.ResilienceRetryMaxAttempts > 0 {
		policy.MaxAttempts = cfg.ResilienceRetryMaxAttempts
	}
	if cfg.ResilienceRetryInitialBackoff > 0 {
		policy.InitialBackoff = cfg.ResilienceRetryInitialBackoff
	}
	policy.BreakerEnabled = cfg.ResilienceBreakerEnabled
	return policy
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
