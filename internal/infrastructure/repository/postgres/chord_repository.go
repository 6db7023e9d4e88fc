package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/fretboard-chords/internal/core/domain"
)

// chordNamespace seeds deterministic row ids so every replica derives the same
// id for the same chord name.
var chordNamespace = uuid.MustParse("6f1c1d3e-9a0b-4c7e-8f55-2b9d0c4e7a11")

// ChordRepository mirrors the in-memory chord catalog into Postgres so that
// reporting tools can join against it.
type ChordRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewChordRepository(db *sql.DB) *ChordRepository {
	return &ChordRepository{db: db, now: time.Now}
}

func ChordRowID(name string) string {
	return uuid.NewSHA1(chordNamespace, []byte(name)).String()
}

func (r *ChordRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026101701)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS chords (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	label TEXT NOT NULL,
	structure TEXT NOT NULL,
	category TEXT NOT NULL,
	notes JSONB NOT NULL DEFAULT '[]'::jsonb,
	synced_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_chords_category ON chords(category);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *ChordRepository) SyncCatalog(ctx context.Context, chords []domain.ChordDefinition) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin sync tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	syncedAt := r.now().UTC()
	for _, chord := range chords {
		notesJSON, err := json.Marshal(chord.Notes)
		if err != nil {
			return fmt.Errorf("marshal notes for %s: %w", chord.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
INSERT INTO chords (id, name, label, structure, category, notes, synced_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (id) DO UPDATE SET
	label = EXCLUDED.label,
	structure = EXCLUDED.structure,
	category = EXCLUDED.category,
	notes = EXCLUDED.notes,
	synced_at = EXCLUDED.synced_at
`,
			ChordRowID(chord.ID), chord.ID, chord.Label, chord.Structure, string(chord.Category), notesJSON, syncedAt,
		)
		if err != nil {
			return fmt.Errorf("upsert chord %s: %w", chord.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sync tx: %w", err)
	}
	return nil
}

func (r *ChordRepository) CountChords(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chords`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count chords: %w", err)
	}
	return count, nil
}

func (r *ChordRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	return nil
}
