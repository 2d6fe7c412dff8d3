package services

import (
	"context"
	"fmt"

	"voyage-fuel-service/internal/domain"
	"voyage-fuel-service/internal/fuel"
	"voyage-fuel-service/internal/ports"
)

// Series consumed by the chart layer: the theoretical model curve, the
// voyage's weather-corrected working points, and an optional historical
// reference overlay.
type ChartSeries struct {
	ModelCurve    []domain.WorkingPoint
	WorkingPoints []domain.WorkingPoint
	Reference     []domain.ReferencePoint
}

// WorkingPoints derives one chart point per segment with a running
// engine: the segment's RPM against its weather-corrected consumption
// rate. Segments with rpm 0 carry no working point.
func WorkingPoints(segments []domain.RouteSegment) []domain.WorkingPoint {
	points := make([]domain.WorkingPoint, 0, len(segments))
	for _, seg := range segments {
		if seg.RPM <= 0 {
			continue
		}
		points = append(points, domain.WorkingPoint{
			RPM:  seg.RPM,
			Rate: fuel.ConsumptionRate(seg.RPM, seg.WeatherFactor),
		})
	}
	return points
}

// BuildChartSeries assembles the chart input for one voyage. The
// reference dataset name may be empty, in which case no overlay is
// loaded.
func BuildChartSeries(
	ctx context.Context,
	voyage *domain.Voyage,
	dataset string,
	refs ports.ReferenceRepository,
) (*ChartSeries, error) {
	series := &ChartSeries{
		ModelCurve:    fuel.ModelCurve(),
		WorkingPoints: WorkingPoints(voyage.Segments),
	}

	if dataset != "" {
		points, err := refs.ListPoints(ctx, dataset)
		if err != nil {
			return nil, fmt.Errorf("build chart series: list reference points %q: %w", dataset, err)
		}
		series.Reference = points
	}

	return series, nil
}
