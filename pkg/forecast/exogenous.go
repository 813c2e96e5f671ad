package forecast

// regressOutExogenous removes a single binary regressor's effect from
// series by mean-difference regression: the coefficient is the difference
// between the mean of series where exog indicates 1 and the mean where it
// indicates 0. For sparse binary regressors (an Easter indicator fires at
// most once a year) this is more numerically stable than fitting the
// effect jointly with the ARIMA coefficients, and is the deliberate,
// documented estimator this pipeline uses.
//
// If either partition is empty the coefficient is 0 and series passes
// through unchanged.
func regressOutExogenous(series, exog []float64) (adjusted []float64, coeff float64) {
	adjusted = make([]float64, len(series))
	copy(adjusted, series)

	var sumOn, sumOff float64
	var nOn, nOff int
	for i, x := range exog {
		if i >= len(series) {
			break
		}
		if x > 0.5 {
			sumOn += series[i]
			nOn++
		} else {
			sumOff += series[i]
			nOff++
		}
	}

	if nOn == 0 || nOff == 0 {
		return adjusted, 0.0
	}

	coeff = sumOn/float64(nOn) - sumOff/float64(nOff)

	for i, x := range exog {
		if i >= len(adjusted) {
			break
		}
		if x > 0.5 {
			adjusted[i] -= coeff
		}
	}

	return adjusted, coeff
}
