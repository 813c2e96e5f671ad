package forecast

import "fmt"

// NewModel creates an unfit Model with the given configuration. Callers
// must call Fit before Forecast; Forecast on a zero-value or unfit Model
// panics the same way a nil-pointer dereference would, since unlike the
// teacher's multi-backend Model interface there is exactly one
// implementation here and no "not trained" sentinel state is needed —
// Fit is the only path that produces a usable *Model.
func NewModel(cfg Config) *Model {
	if cfg.S <= 0 {
		cfg.S = DefaultSeasonalPeriod
	}
	return &Model{cfg: cfg}
}

// Fit trains the model on series (length N) and, if exog is non-nil,
// regresses out its effect before seasonal/ARIMA estimation. Fit is a pure
// function of its inputs: no iteration, no convergence loop, no retries,
// and it may be called at most once per Model.
//
// Returns an error if series is too short for the configured (p, d, q, S).
func (m *Model) Fit(series []float64, exog []float64) error {
	if err := m.cfg.Validate(len(series)); err != nil {
		return err
	}

	m.series = make([]float64, len(series))
	copy(m.series, series)

	adjusted := series
	if exog != nil {
		adj, coeff := regressOutExogenous(series, exog)
		adjusted = adj
		m.exogCoeffs = []float64{coeff}
		m.exogTrain = make([]float64, len(exog))
		copy(m.exogTrain, exog)
	} else {
		m.exogCoeffs = []float64{}
	}

	m.seasonal = calculateSeasonalFactors(adjusted, m.cfg.S)
	deseasonalized := deseasonalize(adjusted, m.seasonal)
	differenced := difference(deseasonalized, m.cfg.D)

	m.intercept = mean(differenced)
	centered := make([]float64, len(differenced))
	for i, v := range differenced {
		centered[i] = v - m.intercept
	}
	m.differencedCentered = centered

	if m.cfg.P > 0 {
		acf := autocorrelation(centered, m.cfg.P)
		m.arCoeffs = solveYuleWalker(acf)
	} else {
		m.arCoeffs = []float64{}
	}

	m.residuals = calculateResiduals(centered, m.arCoeffs)

	if m.cfg.Q > 0 {
		m.maCoeffs = estimateMACoefficients(m.residuals, m.cfg.Q)
	} else {
		m.maCoeffs = []float64{}
	}

	return nil
}

// mean returns the arithmetic mean of series, or 0 for an empty series.
func mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// Forecast recursively extends the fitted model h steps ahead, optionally
// adding the exogenous effect for future indicator months in futureExog
// (which may be shorter than h; any remaining steps simply skip the
// exogenous addition), and builds confidence bands at the given
// confidence level (e.g. 0.95 for 95%).
//
// Forecast is read-only: it never mutates the Model and is safe to call
// any number of times, including concurrently.
func (m *Model) Forecast(h int, futureExog []float64, confidence float64) (Result, error) {
	if h < 0 {
		return Result{}, fmt.Errorf("forecast horizon must be non-negative")
	}

	forecastDiff := m.recurseDifferenced(h)

	deseasonalizedHistory := make([]float64, len(m.series))
	for i, v := range m.series {
		f := m.seasonal[i%m.cfg.S]
		if f > 0 {
			deseasonalizedHistory[i] = v / f
		} else {
			deseasonalizedHistory[i] = v
		}
	}

	forecastDeseas := undifference(forecastDiff, deseasonalizedHistory, m.cfg.D)

	startIdx := len(m.series) % m.cfg.S
	pointForecast := reseasonalize(forecastDeseas, m.seasonal, startIdx)

	if len(futureExog) > 0 && len(m.exogCoeffs) > 0 {
		coeff := m.exogCoeffs[0]
		for i := range pointForecast {
			if i >= len(futureExog) {
				break
			}
			pointForecast[i] += coeff * futureExog[i]
		}
	}

	for i, v := range pointForecast {
		v = clampFinite(v)
		if v < 0 {
			v = 0
		}
		pointForecast[i] = v
	}

	lower, upper := confidenceIntervals(pointForecast, m.residuals, m.seasonal, len(m.series), confidence)

	easterCoeff := 0.0
	if len(m.exogCoeffs) > 0 {
		easterCoeff = m.exogCoeffs[0]
	}

	return Result{
		Forecast:        pointForecast,
		Lower:           lower,
		Upper:           upper,
		SeasonalFactors: append([]float64{}, m.seasonal...),
		EasterCoeff:     easterCoeff,
		ARCoefficients:  append([]float64{}, m.arCoeffs...),
		MACoefficients:  append([]float64{}, m.maCoeffs...),
		Intercept:       m.intercept,
	}, nil
}

// recurseDifferenced extends the centered differenced series h steps
// using the fitted AR/MA coefficients, returning only the new tail. The
// intercept re-enters explicitly at every step (it was subtracted out
// during Fit to center the series for autocorrelation/Levinson-Durbin),
// and the AR term is applied to (extended value - intercept) rather than
// the raw extended value — this is the intended centering contract, not
// double-counting.
func (m *Model) recurseDifferenced(h int) []float64 {
	extended := make([]float64, len(m.differencedCentered), len(m.differencedCentered)+h)
	copy(extended, m.differencedCentered)

	extendedResiduals := make([]float64, len(m.residuals), len(m.residuals)+h)
	copy(extendedResiduals, m.residuals)

	for s := 0; s < h; s++ {
		prediction := m.intercept

		for i := 0; i < len(m.arCoeffs) && i < len(extended); i++ {
			prediction += m.arCoeffs[i] * (extended[len(extended)-1-i] - m.intercept)
		}

		for i := 0; i < len(m.maCoeffs); i++ {
			ridx := len(extendedResiduals) - 1 - i
			if ridx >= 0 && ridx < len(m.residuals) {
				prediction += m.maCoeffs[i] * extendedResiduals[ridx]
			}
		}

		extended = append(extended, prediction)
		extendedResiduals = append(extendedResiduals, 0.0)
	}

	return extended[len(m.differencedCentered):]
}
