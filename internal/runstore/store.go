package runstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"reelscore/internal/config"
)

// ErrRunNotFound indicates the requested run does not exist.
var ErrRunNotFound = errors.New("run not found")

// Store manages run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the run database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(filepath.Join(cfg.Paths.LogDir, "runs.db"))
}

// OpenPath opens the run database at an explicit location.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// NewRun inserts a pending run for the given source CSV.
func (s *Store) NewRun(ctx context.Context, sourcePath string) (*Run, error) {
	now := time.Now().UTC()
	run := &Run{
		ID:         uuid.NewString(),
		SourcePath: sourcePath,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (id, source_path, status, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?)`,
		run.ID,
		run.SourcePath,
		run.Status,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// Update persists the mutable fields of a run.
func (s *Store) Update(ctx context.Context, run *Run) error {
	if run == nil {
		return errors.New("run is required")
	}
	if !ValidStatus(run.Status) {
		return fmt.Errorf("invalid run status %q", run.Status)
	}
	run.UpdatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE runs SET
            status = ?, rows_loaded = ?, rows_clean = ?, feature_count = ?,
            best_model = ?, best_test_r2 = ?, error_message = ?, updated_at = ?
         WHERE id = ?`,
		run.Status,
		run.RowsLoaded,
		run.RowsClean,
		run.FeatureCount,
		run.BestModel,
		run.BestTestR2,
		run.ErrorMessage,
		run.UpdatedAt.Format(time.RFC3339Nano),
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrRunNotFound
	}
	return nil
}

// GetByID returns a single run.
func (s *Store) GetByID(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, source_path, status, rows_loaded, rows_clean, feature_count,
                best_model, best_test_r2, error_message, created_at, updated_at
         FROM runs WHERE id = ?`,
		id,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	return run, err
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, source_path, status, rows_loaded, rows_clean, feature_count,
                best_model, best_test_r2, error_message, created_at, updated_at
         FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ReplaceResults swaps the model score rows for a run in one transaction.
func (s *Store) ReplaceResults(ctx context.Context, runID string, results []ModelResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin results tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM model_results WHERE run_id = ?", runID); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	for _, result := range results {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO model_results (
                run_id, rank, model, train_r2, test_r2,
                train_rmse, test_rmse, train_mae, test_mae, tuned
             ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID,
			result.Rank,
			result.Model,
			result.TrainR2,
			result.TestR2,
			result.TrainRMSE,
			result.TestRMSE,
			result.TrainMAE,
			result.TestMAE,
			boolToInt(result.Tuned),
		)
		if err != nil {
			return fmt.Errorf("insert result %s: %w", result.Model, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit results: %w", err)
	}
	return nil
}

// ResultsForRun returns the stored model scores for a run ordered by rank.
func (s *Store) ResultsForRun(ctx context.Context, runID string) ([]ModelResult, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT run_id, rank, model, train_r2, test_r2,
                train_rmse, test_rmse, train_mae, test_mae, tuned
         FROM model_results WHERE run_id = ? ORDER BY rank ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []ModelResult
	for rows.Next() {
		var result ModelResult
		var tuned int
		err := rows.Scan(
			&result.RunID,
			&result.Rank,
			&result.Model,
			&result.TrainR2,
			&result.TestR2,
			&result.TrainRMSE,
			&result.TestRMSE,
			&result.TrainMAE,
			&result.TestMAE,
			&tuned,
		)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		result.Tuned = tuned != 0
		results = append(results, result)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var createdAt, updatedAt string
	err := row.Scan(
		&run.ID,
		&run.SourcePath,
		&run.Status,
		&run.RowsLoaded,
		&run.RowsClean,
		&run.FeatureCount,
		&run.BestModel,
		&run.BestTestR2,
		&run.ErrorMessage,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if run.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &run, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
