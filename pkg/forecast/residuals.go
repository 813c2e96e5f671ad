package forecast

import "math"

// calculateResiduals computes one-step-ahead AR prediction residuals over
// a centered series. For index i the AR predictor only uses as many
// lagged terms as are actually available (j < i), so the first p
// residuals are computed against partial AR windows; this is intentional,
// matching the reference implementation rather than discarding the warm-up
// residuals.
func calculateResiduals(series, arCoeffs []float64) []float64 {
	p := len(arCoeffs)
	residuals := make([]float64, len(series))

	for i := range series {
		var predicted float64
		for j := 0; j < p && j < i; j++ {
			predicted += arCoeffs[j] * series[i-j-1]
		}
		residuals[i] = series[i] - predicted
	}

	return residuals
}

// estimateMACoefficients derives q MA coefficients from residual
// autocorrelation via a half-autocorrelation approximation: MA[k] =
// 0.5 * residualAutocorr[k+1]. Returns an empty slice when q == 0.
func estimateMACoefficients(residuals []float64, q int) []float64 {
	if q == 0 {
		return []float64{}
	}

	acf := autocorrelation(residuals, q+1)

	coeffs := make([]float64, q)
	for k := 0; k < q; k++ {
		coeffs[k] = 0.5 * acf[k+1]
	}
	return coeffs
}

// residualRMS computes the root-mean-square of residuals, used to scale
// confidence intervals. An empty residual slice yields 0.
func residualRMS(residuals []float64) float64 {
	if len(residuals) == 0 {
		return 0
	}
	var sumSq float64
	for _, r := range residuals {
		sumSq += r * r
	}
	return math.Sqrt(sumSq / float64(max(len(residuals), 1)))
}
