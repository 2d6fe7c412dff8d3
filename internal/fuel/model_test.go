package fuel

import (
	"math"
	"testing"
)

func TestConsumptionRateZeroRPM(t *testing.T) {
	for _, w := range []float64{0.5, 1.0, 1.5} {
		if got := ConsumptionRate(0, w); got != 0 {
			t.Errorf("ConsumptionRate(0, %v) = %v, want 0", w, got)
		}
		if got := ConsumptionRate(-10, w); got != 0 {
			t.Errorf("ConsumptionRate(-10, %v) = %v, want 0", w, got)
		}
	}
}

func TestConsumptionRateMatchesFit(t *testing.T) {
	// Direct evaluation of the published fit at rpm=80. rpm is a
	// variable so the expression goes through the same float64
	// operations as the model, not exact constant folding.
	rpm := 80.0
	want := 0.000124176621498486*rpm*rpm - 0.00391529744030522*rpm + 0.104802913006673

	got := ConsumptionRate(rpm, 1.0)
	if got != want {
		t.Fatalf("ConsumptionRate(80, 1.0) = %v, want %v", got, want)
	}
}

func TestConsumptionRateWeatherLinearity(t *testing.T) {
	base := ConsumptionRate(95, 1.0)

	for _, w := range []float64{0.5, 0.8, 1.0, 1.2, 1.5} {
		got := ConsumptionRate(95, w)
		want := base * w
		if math.Abs(got-want) > 1e-15 {
			t.Errorf("ConsumptionRate(95, %v) = %v, want %v", w, got, want)
		}
	}
}

func TestTimeSpeedInverses(t *testing.T) {
	d := 137.5
	s := 11.3

	timeH := Time(d, s)
	if timeH <= 0 {
		t.Fatalf("Time(%v, %v) = %v, want > 0", d, s, timeH)
	}

	back := Speed(d, timeH)
	if math.Abs(back-s) > 1e-12 {
		t.Errorf("Speed(%v, Time(%v, %v)) = %v, want %v", d, d, s, back, s)
	}
}

func TestTimeSpeedZeroInputs(t *testing.T) {
	if got := Time(100, 0); got != 0 {
		t.Errorf("Time(100, 0) = %v, want 0", got)
	}
	if got := Speed(100, 0); got != 0 {
		t.Errorf("Speed(100, 0) = %v, want 0", got)
	}
}

func TestModelCurveRange(t *testing.T) {
	curve := ModelCurve()

	if len(curve) != CurveRPMMax-CurveRPMMin+1 {
		t.Fatalf("curve has %d points, want %d", len(curve), CurveRPMMax-CurveRPMMin+1)
	}
	if curve[0].RPM != CurveRPMMin {
		t.Errorf("first point rpm = %v, want %v", curve[0].RPM, float64(CurveRPMMin))
	}
	if curve[len(curve)-1].RPM != CurveRPMMax {
		t.Errorf("last point rpm = %v, want %v", curve[len(curve)-1].RPM, float64(CurveRPMMax))
	}

	for _, p := range curve {
		if p.Rate != ConsumptionRate(p.RPM, 1.0) {
			t.Errorf("curve point rpm=%v rate=%v disagrees with model", p.RPM, p.Rate)
		}
	}
}
