package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"voyage-fuel-service/internal/domain"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVoyagesQuery := `
	CREATE TABLE IF NOT EXISTS voyages (
		voyage_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		start_fuel_mt REAL NOT NULL DEFAULT 0
	);
	`

	createSegmentsQuery := `
	CREATE TABLE IF NOT EXISTS segments (
		voyage_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		distance_nm REAL NOT NULL,
		rpm REAL NOT NULL,
		weather_factor REAL NOT NULL,
		time_h REAL NOT NULL,
		speed_kn REAL NOT NULL,
		waypoints TEXT,
		PRIMARY KEY (voyage_id, position)
	);
	`

	createReferenceQuery := `
	CREATE TABLE IF NOT EXISTS reference_points (
		dataset TEXT NOT NULL,
		rpm REAL NOT NULL,
		consumption_rate REAL NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_reference_points_dataset_rpm
	ON reference_points(dataset, rpm);
	`

	statements := []string{
		createVoyagesQuery,
		createSegmentsQuery,
		createReferenceQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type SegmentSeed struct {
	DistanceNm    float64             `json:"distance_nm"`
	RPM           float64             `json:"rpm"`
	WeatherFactor float64             `json:"weather_factor"`
	TimeH         float64             `json:"time_h"`
	SpeedKn       float64             `json:"speed_kn"`
	Waypoints     []domain.Coordinates `json:"waypoints,omitempty"`
}

type VoyageSeed struct {
	VoyageID    int           `json:"voyage_id"`
	Name        string        `json:"name"`
	StartFuelMt float64       `json:"start_fuel_mt"`
	Segments    []SegmentSeed `json:"segments"`
}

// Populate the database with voyage data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed voyages: read %q: %w", jsonPath, err)
	}

	var data []VoyageSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed voyages: parse json: %w", err)
	}

	for i, item := range data {
		if item.VoyageID <= 0 {
			return fmt.Errorf("seed voyages: invalid voyage_id at index %d: %d", i+1, item.VoyageID)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed voyages: item at index %d: name cannot be empty", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed voyages: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	voyageStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO voyages (
		voyage_id,
		name,
		start_fuel_mt
	)
	VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed voyages: prepare voyage insert: %w", err)
	}
	defer voyageStmt.Close()

	segmentStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO segments (
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
		return fmt.Errorf("seed voyages: prepare segment insert: %w", err)
	}
	defer segmentStmt.Close()

	for _, v := range data {
		if _, err := voyageStmt.Exec(v.VoyageID, strings.TrimSpace(v.Name), v.StartFuelMt); err != nil {
			return fmt.Errorf("seed voyages: insert voyage_id=%d: %w", v.VoyageID, err)
		}

		if _, err := tx.Exec(`DELETE FROM segments WHERE voyage_id = ?;`, v.VoyageID); err != nil {
			return fmt.Errorf("seed voyages: clear segments voyage_id=%d: %w", v.VoyageID, err)
		}

		for pos, s := range v.Segments {
			waypoints, err := encodeWaypoints(s.Waypoints)
			if err != nil {
				return fmt.Errorf("seed voyages: voyage_id=%d segment %d: %w", v.VoyageID, pos, err)
			}

			if _, err := segmentStmt.Exec(
				v.VoyageID, pos,
				s.DistanceNm, s.RPM, s.WeatherFactor, s.TimeH, s.SpeedKn,
				waypoints,
			); err != nil {
				return fmt.Errorf("seed voyages: insert segment voyage_id=%d pos=%d: %w", v.VoyageID, pos, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed voyages: commit tx: %w", err)
	}

	return nil
}
