// Package fuel implements the HFO consumption model: a fixed empirical
// quadratic fit of consumption rate (mt/h) against engine RPM, with a
// dimensionless weather-factor correction, plus the time/speed/distance
// derivations used by route computation.
package fuel

import "voyage-fuel-service/internal/domain"

// Quadratic fit coefficients from engine trial data. These are exact:
// historical comparisons depend on reproducing the same IEEE-754 double
// results, so they must not be rounded or refactored into a different
// evaluation order.
const (
	coefA = 0.000124176621498486
	coefB = -0.00391529744030522
	coefC = 0.104802913006673
)

// RPM range covered by the fitted curve, used for chart series.
const (
	CurveRPMMin = 45
	CurveRPMMax = 124
)

// ConsumptionRate returns the HFO consumption rate in mt/h at the given
// engine RPM, corrected by the weather factor. Non-positive RPM yields 0.
func ConsumptionRate(rpm, weatherFactor float64) float64 {
	if rpm <= 0 {
		return 0
	}
	y := coefA*rpm*rpm + coefB*rpm + coefC
	return y * weatherFactor
}

// Time returns voyage leg duration in hours, or 0 when speed is not
// positive.
func Time(distanceNm, speedKn float64) float64 {
	if speedKn > 0 {
		return distanceNm / speedKn
	}
	return 0
}

// Speed returns voyage leg speed in knots, or 0 when duration is not
// positive.
func Speed(distanceNm, timeH float64) float64 {
	if timeH > 0 {
		return distanceNm / timeH
	}
	return 0
}

// ModelCurve returns the theoretical consumption curve (weather factor
// 1.0) sampled at every integer RPM in [CurveRPMMin, CurveRPMMax].
func ModelCurve() []domain.WorkingPoint {
	points := make([]domain.WorkingPoint, 0, CurveRPMMax-CurveRPMMin+1)
	for rpm := CurveRPMMin; rpm <= CurveRPMMax; rpm++ {
		points = append(points, domain.WorkingPoint{
			RPM:  float64(rpm),
			Rate: ConsumptionRate(float64(rpm), 1.0),
		})
	}
	return points
}
