// Package sqlite keeps a ledger of finished runs in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/younwookim/polyhop/internal/infrastructure/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Run is one finished game
type Run struct {
	ID        int64
	Score     uint32
	Level     int
	Seed      int64
	Ticks     uint64
	SkinTone  string
	Outfit    string
	Hair      string
	SpriteHex string
	CreatedAt time.Time
}

// Store is the SQLite-backed run ledger
type Store struct {
	sqlDB *sql.DB
}

// Open opens or creates the ledger at path and applies migrations
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the connection
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordRun stores a finished run and returns its id
func (s *Store) RecordRun(ctx context.Context, run Run) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if run.Level < 1 {
		return 0, fmt.Errorf("level must be at least 1")
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	res, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO runs (
	score,
	level,
	seed,
	ticks,
	skin_tone,
	outfit,
	hair,
	sprite_hex,
	created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		int64(run.Score),
		run.Level,
		run.Seed,
		int64(run.Ticks),
		run.SkinTone,
		run.Outfit,
		run.Hair,
		run.SpriteHex,
		run.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record run id: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs, highest score first. Ties go to the earlier run.
func (s *Store) TopRuns(ctx context.Context, limit int) ([]Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT
	id,
	score,
	level,
	seed,
	ticks,
	skin_tone,
	outfit,
	hair,
	sprite_hex,
	created_at
FROM runs
ORDER BY score DESC, created_at ASC, id ASC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0, limit)
	for rows.Next() {
		var (
			run       Run
			score     int64
			ticks     int64
			createdAt int64
		)
		if err := rows.Scan(
			&run.ID,
			&score,
			&run.Level,
			&run.Seed,
			&ticks,
			&run.SkinTone,
			&run.Outfit,
			&run.Hair,
			&run.SpriteHex,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Score = uint32(score)
		run.Ticks = uint64(ticks)
		run.CreatedAt = time.UnixMilli(createdAt).UTC()
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// BestScore returns the highest recorded score, 0 for an empty ledger
func (s *Store) BestScore(ctx context.Context) (uint32, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var best int64
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COALESCE(MAX(score), 0) FROM runs").Scan(&best); err != nil {
		return 0, fmt.Errorf("best score: %w", err)
	}
	return uint32(best), nil
}
