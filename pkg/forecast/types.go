// Package forecast implements the ARIMA(p,d,q) forecasting pipeline with
// multiplicative seasonal adjustment and an optional single binary
// exogenous regressor.
//
// The pipeline is a straight computational line: exogenous pre-adjustment,
// seasonal factor estimation, differencing, Yule-Walker AR estimation via
// Levinson-Durbin, residual-driven MA approximation, h-step recursive
// forecasting, and heuristic confidence intervals. A Model is fit once from
// historical data and is safe for any number of subsequent read-only
// Forecast calls, including concurrently across independent Models.
package forecast

import (
	"fmt"
)

// DefaultSeasonalPeriod is the monthly seasonal period NewModel uses when
// Config.S is not positive. Any positive Config.S is used as given.
const DefaultSeasonalPeriod = 12

// SeasonalFactors holds exactly Period non-negative multiplicative factors,
// indexed 0..Period-1 by absolute series index modulo Period (not by
// calendar month).
type SeasonalFactors []float64

// Config carries the fixed orders for a Model: AR order p, differencing
// order d, MA order q, and the seasonal period S.
type Config struct {
	P int
	D int
	Q int
	S int
}

// Validate reports whether a series of length n (with or without an
// exogenous regressor) is long enough to fit under this Config.
func (c Config) Validate(n int) error {
	min := c.P + c.D + c.Q + c.S
	if n < min {
		return fmt.Errorf("series too short for specified ARIMA parameters")
	}
	return nil
}

// Model holds the fixed configuration and the fitted state of an
// ARIMA(p,d,q) model with period-S multiplicative seasonality and an
// optional single binary exogenous regressor. It is constructed, fit
// exactly once, and is read-only for any number of Forecast calls after
// that.
type Model struct {
	cfg Config

	// series is the original, untouched training series.
	series []float64

	// differencedCentered is the d-order differenced, mean-centered
	// series produced during Fit; it seeds the recursive forecast.
	differencedCentered []float64

	// residuals are the AR-fit residuals over differencedCentered.
	residuals []float64

	arCoeffs   []float64
	maCoeffs   []float64
	intercept  float64 // mean of the (pre-centering) differenced series
	seasonal   SeasonalFactors
	exogCoeffs []float64 // length 0 or 1
	exogTrain  []float64 // the regressor snapshot used to train, or nil
}

// Result is the fitted-model output returned alongside a forecast: point
// forecasts, symmetric-by-construction bands, and the estimated
// coefficients.
type Result struct {
	Forecast         []float64
	Lower            []float64
	Upper            []float64
	SeasonalFactors  []float64
	EasterCoeff      float64
	ARCoefficients   []float64
	MACoefficients   []float64
	Intercept        float64
}

// P, D, Q, S return the model's fixed configuration.
func (m *Model) P() int { return m.cfg.P }
func (m *Model) D() int { return m.cfg.D }
func (m *Model) Q() int { return m.cfg.Q }
func (m *Model) S() int { return m.cfg.S }

// TrainingLength returns the number of observations the model was fit on.
func (m *Model) TrainingLength() int { return len(m.series) }
