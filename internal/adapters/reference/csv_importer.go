// Package reference imports historical rpm/consumption datasets from
// spreadsheet exports (CSV).
package reference

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"voyage-fuel-service/internal/domain"
)

// Column layout of a spreadsheet export. Data starts at the second row;
// the first row is assumed to be a header and is always skipped.
type ColumnSpec struct {
	RPMCol  int
	RateCol int
}

// Default layout: rpm in the first column, consumption rate in the second.
var DefaultColumns = ColumnSpec{RPMCol: 0, RateCol: 1}

// ParseCSV reads reference points from a CSV export.
//
// Rows with missing or non-numeric values in the designated columns are
// skipped silently, matching how hand-maintained noon-report sheets are
// consumed: blank lines, subtotals and stray notes are simply not data.
func ParseCSV(r io.Reader, cols ColumnSpec) ([]domain.ReferencePoint, error) {
	if cols.RPMCol < 0 || cols.RateCol < 0 {
		return nil, errors.New("parse reference csv: column indexes must be non-negative")
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	points := make([]domain.ReferencePoint, 0, 64)

	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse reference csv: row %d: %w", row+1, err)
		}

		// First row is the header.
		if row == 0 {
			continue
		}

		rpm, ok := parseCell(record, cols.RPMCol)
		if !ok {
			continue
		}
		rate, ok := parseCell(record, cols.RateCol)
		if !ok {
			continue
		}

		points = append(points, domain.ReferencePoint{
			RPM:             rpm,
			ConsumptionRate: rate,
		})
	}

	return points, nil
}

func parseCell(record []string, col int) (float64, bool) {
	if col >= len(record) {
		return 0, false
	}

	cell := strings.TrimSpace(record[col])
	if cell == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
