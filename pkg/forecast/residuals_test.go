package forecast

import "testing"

func TestCalculateResidualsWithNoARCoefficientsEqualsSeries(t *testing.T) {
	series := []float64{1, 2, 3, 4}
	residuals := calculateResiduals(series, nil)

	for i, v := range series {
		if residuals[i] != v {
			t.Errorf("residuals[%d] = %v, want %v (no AR terms to predict with)", i, residuals[i], v)
		}
	}
}

func TestCalculateResidualsUsesOnlyAvailableLags(t *testing.T) {
	series := []float64{10, 20, 30, 40}
	arCoeffs := []float64{0.5, 0.25}

	residuals := calculateResiduals(series, arCoeffs)

	// index 0: no lags available, predicted = 0.
	if got, want := residuals[0], series[0]; got != want {
		t.Errorf("residuals[0] = %v, want %v", got, want)
	}
	// index 1: only lag 1 available (j < i means j in {0}).
	wantR1 := series[1] - arCoeffs[0]*series[0]
	if residuals[1] != wantR1 {
		t.Errorf("residuals[1] = %v, want %v", residuals[1], wantR1)
	}
	// index 2: both lags available.
	wantR2 := series[2] - arCoeffs[0]*series[1] - arCoeffs[1]*series[0]
	if residuals[2] != wantR2 {
		t.Errorf("residuals[2] = %v, want %v", residuals[2], wantR2)
	}
}

func TestEstimateMACoefficientsZeroOrderReturnsEmpty(t *testing.T) {
	coeffs := estimateMACoefficients([]float64{1, 2, 3}, 0)
	if len(coeffs) != 0 {
		t.Errorf("len(coeffs) = %d, want 0", len(coeffs))
	}
}

func TestEstimateMACoefficientsIsHalfAutocorrelation(t *testing.T) {
	residuals := []float64{1, -1, 1, -1, 1, -1, 1, -1}
	q := 2

	coeffs := estimateMACoefficients(residuals, q)
	acf := autocorrelation(residuals, q+1)

	if len(coeffs) != q {
		t.Fatalf("len(coeffs) = %d, want %d", len(coeffs), q)
	}
	for k := 0; k < q; k++ {
		want := 0.5 * acf[k+1]
		if coeffs[k] != want {
			t.Errorf("coeffs[%d] = %v, want %v", k, coeffs[k], want)
		}
	}
}

func TestResidualRMSEmptyIsZero(t *testing.T) {
	if got := residualRMS(nil); got != 0 {
		t.Errorf("residualRMS(nil) = %v, want 0", got)
	}
}

func TestResidualRMSKnownValue(t *testing.T) {
	// RMS of [3, 4] is sqrt((9+16)/2) = sqrt(12.5).
	got := residualRMS([]float64{3, 4})
	want := 3.5355339059327378
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("residualRMS([3,4]) = %v, want %v", got, want)
	}
}
