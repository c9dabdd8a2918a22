package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rmachado/logkeep/internal/model"
)

type PostgresDiagRepository struct {
	db *sql.DB
}

func NewPostgresDiagRepository(connURL string, db *sql.DB) (*PostgresDiagRepository, error) {
	if db == nil {
		var err error
		db, err = sql.Open("postgres", connURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		err = db.Ping()
		if err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	}

	return &PostgresDiagRepository{db: db}, nil
}

func (r *PostgresDiagRepository) SaveRecord(ctx context.Context, record model.DiagRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO diag_records (id, level, message, timestamp, source)
		VALUES ($1, $2, $3, $4, $5)
	`, record.ID, record.Level, record.Message, record.Timestamp, record.Source)
	if err != nil {
		return fmt.Errorf("failed to save diagnostic record: %w", err)
	}
	return nil
}

func (r *PostgresDiagRepository) CreatePartition(ctx context.Context, month time.Time) error {
	partitionName := fmt.Sprintf("diag_records_y%04dm%02d", month.Year(), month.Month())
	startDate := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0)

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s PARTITION OF diag_records
		FOR VALUES FROM ('%s') TO ('%s')
	`, partitionName, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))

	_, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to create partition %s: %w", partitionName, err)
	}

	return nil
}

func (r *PostgresDiagRepository) Close() error {
	return r.db.Close()
}
