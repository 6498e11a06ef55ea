package repository

import (
	"context"
	"errors"
	"fmt"

	"address-resolver/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS batch_runs (
		id UUID PRIMARY KEY,
		status VARCHAR(32) NOT NULL,
		total INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ
	);
	CREATE TABLE IF NOT EXISTS address_records (
		run_id UUID NOT NULL REFERENCES batch_runs (id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		original_address TEXT NOT NULL,
		lot_address TEXT NOT NULL,
		road_address TEXT NOT NULL,
		zipcode VARCHAR(16) NOT NULL,
		lon VARCHAR(32) NOT NULL,
		lat VARCHAR(32) NOT NULL,
		city VARCHAR(64) NOT NULL,
		district VARCHAR(64) NOT NULL,
		address_code VARCHAR(32) NOT NULL,
		match_confidence VARCHAR(8) NOT NULL,
		PRIMARY KEY (run_id, position)
	);
	CREATE INDEX IF NOT EXISTS address_records_confidence_idx ON address_records (run_id, match_confidence);
`

// Repository stores batch runs and their address records in PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the tables if they do not exist yet
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// SaveRun stores a finished run and all of its records in one transaction
func (r *Repository) SaveRun(ctx context.Context, run models.BatchRun) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO batch_runs (id, status, total, created_at, finished_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, finished_at = EXCLUDED.finished_at
	`, run.ID, string(run.Status), run.Progress.Total, run.CreatedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to insert run: %w", err)
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM address_records WHERE run_id = $1`, run.ID)
	for i, rec := range run.Records {
		batch.Queue(`
			INSERT INTO address_records (
				run_id, position, original_address, lot_address, road_address, zipcode,
				lon, lat, city, district, address_code, match_confidence
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, run.ID, i, rec.OriginalAddress, rec.LotAddress, rec.RoadAddress, rec.Zipcode,
			rec.Lon, rec.Lat, rec.City, rec.District, rec.AddressCode, string(rec.MatchConfidence))
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("repository: failed to insert records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit run: %w", err)
	}
	return nil
}

// GetRun loads a run with its records in input order. It returns nil when the run does not exist.
func (r *Repository) GetRun(ctx context.Context, id string) (*models.BatchRun, error) {
	var (
		run    models.BatchRun
		status string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id::text, status, total, created_at, finished_at
		FROM batch_runs
		WHERE id::text = $1
	`, id).Scan(&run.ID, &status, &run.Progress.Total, &run.CreatedAt, &run.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to load run: %w", err)
	}
	run.Status = models.RunStatus(status)

	rows, err := r.db.Query(ctx, `
		SELECT original_address, lot_address, road_address, zipcode, lon, lat,
			city, district, address_code, match_confidence
		FROM address_records
		WHERE run_id = $1
		ORDER BY position
	`, run.ID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute records query: %w", err)
	}
	defer rows.Close()

	run.Records = []models.AddressRecord{}
	for rows.Next() {
		var (
			rec        models.AddressRecord
			confidence string
		)
		err := rows.Scan(
			&rec.OriginalAddress,
			&rec.LotAddress,
			&rec.RoadAddress,
			&rec.Zipcode,
			&rec.Lon,
			&rec.Lat,
			&rec.City,
			&rec.District,
			&rec.AddressCode,
			&confidence,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan record: %w", err)
		}
		rec.MatchConfidence = models.Confidence(confidence)
		run.Records = append(run.Records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	run.Progress.Current = len(run.Records)
	run.Summary = models.Summarize(run.Records)
	return &run, nil
}
