package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"voyage-fuel-service/internal/domain"
)

// SQLite-backed implementation of the ReferenceRepository port.
type SqliteReferenceRepository struct{ DB *sql.DB }

func NewSqliteReferenceRepository(db *sql.DB) *SqliteReferenceRepository {
	return &SqliteReferenceRepository{DB: db}
}

// Replace the named dataset with the given points.
func (s *SqliteReferenceRepository) ImportPoints(ctx context.Context, dataset string, points []domain.ReferencePoint) error {
	if s.DB == nil {
		return errors.New("sqlite reference repository: DB is nil")
	}

	dataset = strings.TrimSpace(dataset)
	if dataset == "" {
		return errors.New("import reference points: dataset must not be empty")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import reference points: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM reference_points WHERE dataset = ?;`, dataset,
	); err != nil {
		return fmt.Errorf("import reference points: clear dataset %q: %w", dataset, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO reference_points (dataset, rpm, consumption_rate)
	VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("import reference points: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range points {
		if _, err := stmt.ExecContext(ctx, dataset, p.RPM, p.ConsumptionRate); err != nil {
			return fmt.Errorf("import reference points: insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import reference points: commit tx: %w", err)
	}

	return nil
}

// Return the points of one dataset ordered by rpm.
func (s *SqliteReferenceRepository) ListPoints(ctx context.Context, dataset string) ([]domain.ReferencePoint, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite reference repository: DB is nil")
	}

	query := `
	SELECT
		rpm,
		consumption_rate
	FROM reference_points
	WHERE dataset = ?
	ORDER BY rpm;
	`
	rows, err := s.DB.QueryContext(ctx, query, strings.TrimSpace(dataset))
	if err != nil {
		return nil, fmt.Errorf("list reference points: query: %w", err)
	}
	defer rows.Close()

	points := make([]domain.ReferencePoint, 0, 64)
	for rows.Next() {
		var p domain.ReferencePoint
		if err := rows.Scan(&p.RPM, &p.ConsumptionRate); err != nil {
			return nil, fmt.Errorf("list reference points: scan row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reference points: row iteration: %w", err)
	}

	return points, nil
}

// Return the names of all stored datasets.
func (s *SqliteReferenceRepository) ListDatasets(ctx context.Context) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite reference repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT DISTINCT dataset FROM reference_points ORDER BY dataset;`,
	)
	if err != nil {
		return nil, fmt.Errorf("list reference datasets: query: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 8)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list reference datasets: scan row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reference datasets: row iteration: %w", err)
	}

	return names, nil
}
