package forecast

import "testing"

func TestZForConfidenceKnownLevels(t *testing.T) {
	cases := map[float64]float64{
		0.99: 2.576,
		0.95: 1.96,
		0.90: 1.645,
		0.80: 1.28,
	}
	for confidence, want := range cases {
		if got := zForConfidence(confidence); got != want {
			t.Errorf("zForConfidence(%v) = %v, want %v", confidence, got, want)
		}
	}
}

func TestZForConfidenceUnknownLevelFallsBackTo95(t *testing.T) {
	if got := zForConfidence(0.5); got != 1.96 {
		t.Errorf("zForConfidence(0.5) = %v, want fallback 1.96", got)
	}
}

func TestConfidenceIntervalsBracketPointForecast(t *testing.T) {
	point := []float64{100, 110, 120}
	residuals := []float64{1, -2, 1.5, -1, 2}
	seasonal := SeasonalFactors{1, 1, 1}

	lower, upper := confidenceIntervals(point, residuals, seasonal, 12, 0.95)

	for i := range point {
		if lower[i] > point[i] {
			t.Errorf("lower[%d] = %v > point[%d] = %v", i, lower[i], i, point[i])
		}
		if upper[i] < point[i] {
			t.Errorf("upper[%d] = %v < point[%d] = %v", i, upper[i], i, point[i])
		}
	}
}

func TestConfidenceIntervalsLowerNeverNegative(t *testing.T) {
	point := []float64{0.1, 0.2}
	residuals := []float64{50, -50, 40, -40}
	seasonal := SeasonalFactors{1, 1}

	lower, _ := confidenceIntervals(point, residuals, seasonal, 0, 0.95)
	for i, l := range lower {
		if l < 0 {
			t.Errorf("lower[%d] = %v, want >= 0", i, l)
		}
	}
}
