package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"voyage-fuel-service/internal/domain"
	"voyage-fuel-service/internal/ports"
)

// SQLite-backed implementation of the VoyageRepository port.
type SqliteVoyageRepository struct{ DB *sql.DB }

func NewSqliteVoyageRepository(db *sql.DB) *SqliteVoyageRepository {
	return &SqliteVoyageRepository{DB: db}
}

// Return all voyages with their ordered segments.
func (s *SqliteVoyageRepository) ListVoyages(ctx context.Context) ([]*domain.Voyage, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite voyage repository: DB is nil")
	}

	query := `
	SELECT
		voyage_id,
		name,
		start_fuel_mt
	FROM voyages
	ORDER BY voyage_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list voyages: query voyages table: %w", err)
	}
	defer rows.Close()

	voyages := make([]*domain.Voyage, 0, 16)
	for rows.Next() {
		v := &domain.Voyage{}
		if err := rows.Scan(&v.VoyageID, &v.Name, &v.StartFuelMt); err != nil {
			return nil, fmt.Errorf("list voyages: scan row: %w", err)
		}
		voyages = append(voyages, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list voyages: row iteration: %w", err)
	}

	for _, v := range voyages {
		segs, err := s.loadSegments(ctx, v.VoyageID)
		if err != nil {
			return nil, fmt.Errorf("list voyages: %w", err)
		}
		v.Segments = segs
	}

	return voyages, nil
}

// Retrieve one voyage with its ordered segments.
func (s *SqliteVoyageRepository) GetVoyage(ctx context.Context, voyageID int) (*domain.Voyage, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite voyage repository: DB is nil")
	}

	query := `
	SELECT
		voyage_id,
		name,
		start_fuel_mt
	FROM voyages
	WHERE voyage_id = ?;
	`
	v := &domain.Voyage{}
	err := s.DB.QueryRowContext(ctx, query, voyageID).Scan(&v.VoyageID, &v.Name, &v.StartFuelMt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrVoyageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get voyage %d: %w", voyageID, err)
	}

	segs, err := s.loadSegments(ctx, voyageID)
	if err != nil {
		return nil, fmt.Errorf("get voyage %d: %w", voyageID, err)
	}
	v.Segments = segs

	return v, nil
}

// Create a voyage with no segments and return it with its assigned id.
func (s *SqliteVoyageRepository) CreateVoyage(ctx context.Context, name string, startFuelMt float64) (*domain.Voyage, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite voyage repository: DB is nil")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("create voyage: name must not be empty")
	}
	if startFuelMt < 0 {
		startFuelMt = 0
	}

	query := `
	INSERT INTO voyages (name, start_fuel_mt)
	VALUES (?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query, name, startFuelMt)
	if err != nil {
		return nil, fmt.Errorf("create voyage: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create voyage: last insert id: %w", err)
	}

	return domain.NewVoyage(int(id), name, startFuelMt), nil
}

// Replace the ordered segment list of an existing voyage.
func (s *SqliteVoyageRepository) ReplaceSegments(ctx context.Context, voyageID int, segments []domain.RouteSegment) error {
	if s.DB == nil {
		return errors.New("sqlite voyage repository: DB is nil")
	}

	var exists int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM voyages WHERE voyage_id = ?;`, voyageID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("replace segments: check voyage %d: %w", voyageID, err)
	}
	if exists == 0 {
		return ports.ErrVoyageNotFound
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace segments: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM segments WHERE voyage_id = ?;`, voyageID,
	); err != nil {
		return fmt.Errorf("replace segments: clear voyage %d: %w", voyageID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO segments (
		voyage_id,
		position,
		distance_nm,
		rpm,
		weather_factor,
		time_h,
		speed_kn,
		waypoints
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("replace segments: prepare insert: %w", err)
	}
	defer stmt.Close()

	for pos, seg := range segments {
		seg.Normalize()

		waypoints, err := encodeWaypoints(seg.Waypoints)
		if err != nil {
			return fmt.Errorf("replace segments: voyage %d pos %d: %w", voyageID, pos, err)
		}

		if _, err := stmt.ExecContext(ctx,
			voyageID, pos,
			seg.DistanceNm, seg.RPM, seg.WeatherFactor, seg.TimeH, seg.SpeedKn,
			waypoints,
		); err != nil {
			return fmt.Errorf("replace segments: insert voyage %d pos %d: %w", voyageID, pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace segments: commit tx: %w", err)
	}

	return nil
}

func (s *SqliteVoyageRepository) loadSegments(ctx context.Context, voyageID int) ([]domain.RouteSegment, error) {
	query := `
	SELECT
		distance_nm,
		rpm,
		weather_factor,
		time_h,
		speed_kn,
		waypoints
	FROM segments
	WHERE voyage_id = ?
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query, voyageID)
	if err != nil {
		return nil, fmt.Errorf("load segments: query segments table: %w", err)
	}
	defer rows.Close()

	segments := make([]domain.RouteSegment, 0, 16)
	for rows.Next() {
		var seg domain.RouteSegment
		var waypoints sql.NullString

		if err := rows.Scan(
			&seg.DistanceNm, &seg.RPM, &seg.WeatherFactor,
			&seg.TimeH, &seg.SpeedKn, &waypoints,
		); err != nil {
			return nil, fmt.Errorf("load segments: scan row: %w", err)
		}

		if waypoints.Valid && waypoints.String != "" {
			if err := json.Unmarshal([]byte(waypoints.String), &seg.Waypoints); err != nil {
				return nil, fmt.Errorf("load segments: decode waypoints: %w", err)
			}
		}

		// Stored rows may predate normalization rules; re-apply on load.
		seg.Normalize()
		segments = append(segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load segments: row iteration: %w", err)
	}

	return segments, nil
}

func encodeWaypoints(points []domain.Coordinates) (any, error) {
	if len(points) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(points)
	if err != nil {
		return nil, fmt.Errorf("encode waypoints: %w", err)
	}
	return string(b), nil
}
