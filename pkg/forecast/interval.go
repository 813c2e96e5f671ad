package forecast

import "math"

// zForConfidence maps a requested confidence level to a z-score via a
// small lookup table, matching within 0.001 of the common levels and
// falling back to the 95% z-score otherwise. This is a heuristic choice,
// not an exact inverse-normal CDF, and is part of the observable contract.
func zForConfidence(confidence float64) float64 {
	switch {
	case math.Abs(confidence-0.99) < 0.001:
		return 2.576
	case math.Abs(confidence-0.95) < 0.001:
		return 1.96
	case math.Abs(confidence-0.90) < 0.001:
		return 1.645
	case math.Abs(confidence-0.80) < 0.001:
		return 1.28
	default:
		return 1.96
	}
}

// confidenceIntervals builds symmetric-by-construction lower/upper bands
// around pointForecast. The band at step i is z * se * sqrt(1 + 0.1*i) *
// seasonalFactors[(trainingLen+i) mod S] — heuristic, and deliberately
// widened in peak-seasonal months by the seasonal_scale term. Only the
// lower band (and the point forecast itself, upstream) is clamped at zero.
func confidenceIntervals(pointForecast []float64, residuals []float64, seasonal SeasonalFactors, trainingLen int, confidence float64) (lower, upper []float64) {
	se := residualRMS(residuals)
	z := zForConfidence(confidence)
	s := len(seasonal)

	lower = make([]float64, len(pointForecast))
	upper = make([]float64, len(pointForecast))

	for i, f := range pointForecast {
		horizonSE := se * math.Sqrt(1+0.1*float64(i))
		seasonalScale := seasonal[(trainingLen+i)%s]
		interval := z * horizonSE * seasonalScale

		l := f - interval
		if l < 0 {
			l = 0
		}
		lower[i] = l
		upper[i] = f + interval
	}

	return lower, upper
}
