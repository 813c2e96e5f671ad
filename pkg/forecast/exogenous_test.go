package forecast

import "testing"

func TestRegressOutExogenousComputesMeanDifference(t *testing.T) {
	series := []float64{10, 20, 10, 20, 10}
	exog := []float64{0, 1, 0, 1, 0}

	adjusted, coeff := regressOutExogenous(series, exog)

	if coeff != 10 {
		t.Errorf("coeff = %v, want 10", coeff)
	}
	want := []float64{10, 10, 10, 10, 10}
	if !floatsClose(adjusted, want, 1e-9) {
		t.Errorf("adjusted = %v, want %v", adjusted, want)
	}
}

func TestRegressOutExogenousEmptyPartitionIsNoop(t *testing.T) {
	series := []float64{5, 6, 7}
	exog := []float64{0, 0, 0}

	adjusted, coeff := regressOutExogenous(series, exog)

	if coeff != 0 {
		t.Errorf("coeff = %v, want 0", coeff)
	}
	if !floatsClose(adjusted, series, 1e-9) {
		t.Errorf("adjusted = %v, want unchanged %v", adjusted, series)
	}
}

func TestRegressOutExogenousShorterThanSeries(t *testing.T) {
	series := []float64{10, 20, 10}
	exog := []float64{0, 1}

	adjusted, coeff := regressOutExogenous(series, exog)

	if coeff != 10 {
		t.Errorf("coeff = %v, want 10", coeff)
	}
	want := []float64{10, 10, 10}
	if !floatsClose(adjusted, want, 1e-9) {
		t.Errorf("adjusted = %v, want %v", adjusted, want)
	}
}
