package handlers

import (
	"voyage-fuel-service/internal/api/dto"
	"voyage-fuel-service/internal/domain"
)

func segmentsFromRequest(in []dto.SegmentRequest) []domain.RouteSegment {
	out := make([]domain.RouteSegment, 0, len(in))
	for _, s := range in {
		seg := domain.RouteSegment{
			DistanceNm:    float64(s.DistanceNm),
			RPM:           float64(s.RPM),
			WeatherFactor: float64(s.WeatherFactor),
			TimeH:         float64(s.TimeH),
			SpeedKn:       float64(s.SpeedKn),
		}
		for _, wp := range s.Waypoints {
			seg.Waypoints = append(seg.Waypoints, domain.Coordinates{Lat: wp.Lat, Lon: wp.Lon})
		}
		out = append(out, seg)
	}
	return out
}

func voyageToResponse(v *domain.Voyage, includeSegments bool) dto.VoyageResponse {
	res := dto.VoyageResponse{
		VoyageID:     v.VoyageID,
		Name:         v.Name,
		StartFuelMt:  v.StartFuelMt,
		SegmentCount: len(v.Segments),
	}

	if !includeSegments {
		return res
	}

	res.Segments = make([]dto.SegmentResponse, 0, len(v.Segments))
	for _, seg := range v.Segments {
		sr := dto.SegmentResponse{
			DistanceNm:    seg.DistanceNm,
			RPM:           seg.RPM,
			WeatherFactor: seg.WeatherFactor,
			TimeH:         seg.TimeH,
			SpeedKn:       seg.SpeedKn,
		}
		for _, wp := range seg.Waypoints {
			sr.Waypoints = append(sr.Waypoints, dto.Waypoint{Lat: wp.Lat, Lon: wp.Lon})
		}
		res.Segments = append(res.Segments, sr)
	}
	return res
}

func planToResponse(plan *domain.VoyagePlan) dto.PlanResponse {
	res := dto.PlanResponse{
		VoyageID:           plan.VoyageID,
		StartFuelMt:        plan.StartFuelMt,
		Warning:            plan.Warning,
		TotalConsumptionMt: dto.Round3(plan.TotalConsumptionMt),
		TotalDistanceNm:    dto.Round3(plan.TotalDistanceNm),
		TotalTimeH:         dto.Round3(plan.TotalTimeH),
		Results:            make([]dto.SegmentResultResponse, 0, len(plan.Results)),
	}

	for i, r := range plan.Results {
		res.Results = append(res.Results, dto.SegmentResultResponse{
			SegmentIndex:  i,
			ConsumptionMt: dto.Round3(r.ConsumptionMt),
			RobMt:         dto.Round3(r.RobMt),
		})
	}
	return res
}

func workingPointsToResponse(points []domain.WorkingPoint) []dto.ChartPoint {
	out := make([]dto.ChartPoint, 0, len(points))
	for _, p := range points {
		out = append(out, dto.ChartPoint{RPM: p.RPM, Rate: p.Rate})
	}
	return out
}
