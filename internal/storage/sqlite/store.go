// Package sqlite provides a SQLite-backed run history store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/rpgo/wealth-journey/internal/storage"
	"github.com/rpgo/wealth-journey/internal/storage/sqlite/migrations"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// MaxListLimit bounds ListRuns page size.
const MaxListLimit = 500

// Store persists simulation runs in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.RunStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite run store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	// modernc.org/sqlite applies _pragma entries on every new connection;
	// busy_timeout goes first so the remaining pragmas wait on a locked file.
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordRun inserts one run and returns its id.
func (s *Store) RecordRun(ctx context.Context, run storage.RunRecord) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if err := run.Parameters.Validate(); err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	createdAt := run.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	p := run.Parameters
	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO simulation_runs (
		   created_at,
		   asset_mix,
		   start_value,
		   annual_withdrawal,
		   min_years,
		   most_likely_years,
		   max_years,
		   trial_count,
		   seed,
		   bankruptcy_pct,
		   mean_outcome,
		   min_outcome,
		   max_outcome
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		toMillis(createdAt),
		string(p.AssetMix),
		p.StartValue,
		p.AnnualWithdrawal,
		p.MinYears,
		p.MostLikelyYears,
		p.MaxYears,
		p.TrialCount,
		run.Seed,
		run.BankruptcyProbabilityPercent.String(),
		run.MeanOutcome.String(),
		run.MinOutcome,
		run.MaxOutcome,
	)
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record run id: %w", err)
	}
	return id, nil
}

const selectRunColumns = `SELECT id, created_at, asset_mix, start_value, annual_withdrawal,
        min_years, most_likely_years, max_years, trial_count, seed,
        bankruptcy_pct, mean_outcome, min_outcome, max_outcome
   FROM simulation_runs`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (storage.RunRecord, error) {
	var (
		run       storage.RunRecord
		createdAt int64
		mix       string
		pct       string
		mean      string
	)
	err := row.Scan(
		&run.ID,
		&createdAt,
		&mix,
		&run.Parameters.StartValue,
		&run.Parameters.AnnualWithdrawal,
		&run.Parameters.MinYears,
		&run.Parameters.MostLikelyYears,
		&run.Parameters.MaxYears,
		&run.Parameters.TrialCount,
		&run.Seed,
		&pct,
		&mean,
		&run.MinOutcome,
		&run.MaxOutcome,
	)
	if err != nil {
		return storage.RunRecord{}, err
	}
	run.CreatedAt = fromMillis(createdAt)
	run.Parameters.AssetMix = domain.AssetMix(mix)
	if run.BankruptcyProbabilityPercent, err = decimal.NewFromString(pct); err != nil {
		return storage.RunRecord{}, fmt.Errorf("decode bankruptcy_pct: %w", err)
	}
	if run.MeanOutcome, err = decimal.NewFromString(mean); err != nil {
		return storage.RunRecord{}, fmt.Errorf("decode mean_outcome: %w", err)
	}
	return run, nil
}

// GetRun returns one run by id.
func (s *Store) GetRun(ctx context.Context, id int64) (storage.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.RunRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.RunRecord{}, fmt.Errorf("storage is not configured")
	}

	run, err := scanRun(s.sqlDB.QueryRowContext(ctx, selectRunColumns+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.RunRecord{}, storage.ErrNotFound
		}
		return storage.RunRecord{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]storage.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	limit = min(limit, MaxListLimit)

	rows, err := s.sqlDB.QueryContext(ctx, selectRunColumns+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]storage.RunRecord, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// CountRuns returns the total number of recorded runs.
func (s *Store) CountRuns(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var count int64
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM simulation_runs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return count, nil
}
