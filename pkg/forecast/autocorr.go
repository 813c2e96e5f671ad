package forecast

import "math"

// varianceFloor is the threshold below which a centered series is treated
// as having zero variance, short-circuiting autocorrelation and
// Levinson-Durbin to their degenerate (identity) answers.
const varianceFloor = 1e-10

// autocorrelation computes the sample autocorrelation of an already
// centered series at lags 0..maxLag. r[0] is 1 by construction. If the
// series variance is below varianceFloor, the degenerate answer
// [1, 0, 0, ...] is returned rather than dividing by (near) zero.
func autocorrelation(series []float64, maxLag int) []float64 {
	r := make([]float64, maxLag+1)

	n := len(series)
	if n == 0 {
		r[0] = 1.0
		return r
	}

	var sumSq float64
	for _, x := range series {
		sumSq += x * x
	}
	variance := sumSq / float64(n)

	if variance < varianceFloor {
		r[0] = 1.0
		return r
	}

	for lag := 0; lag <= maxLag; lag++ {
		var sum float64
		for i := lag; i < n; i++ {
			sum += series[i] * series[i-lag]
		}
		r[lag] = sum / (float64(n) * variance)
	}

	return r
}

// solveYuleWalker runs the Levinson-Durbin recursion over autocorr
// (length p+1) to produce p AR coefficients solving the Yule-Walker
// equations for a Toeplitz system. Returns an empty slice when p == 0.
//
// If the recursion's running prediction-error variance drops below
// varianceFloor partway through, the recursion stops early; coefficients
// computed so far are kept and any entries beyond the break remain at
// their last-written value (zero, for indices never reached).
func solveYuleWalker(autocorr []float64) []float64 {
	p := len(autocorr) - 1
	if p <= 0 {
		return []float64{}
	}

	phi := make([]float64, p)
	phi[0] = autocorr[1]
	v := 1 - phi[0]*phi[0]

	for i := 1; i < p; i++ {
		phiPrev := make([]float64, p)
		copy(phiPrev, phi)

		var sum float64
		for j := 0; j < i; j++ {
			sum += phiPrev[j] * autocorr[i-j]
		}
		k := (autocorr[i+1] - sum) / v
		phi[i] = k

		for j := 0; j < i; j++ {
			phi[j] = phiPrev[j] - phi[i]*phiPrev[i-1-j]
		}

		v = v * (1 - phi[i]*phi[i])

		if v < varianceFloor {
			// Entries for indices beyond i were never written and
			// remain zero, per the recursion's early-stop contract.
			break
		}
	}

	return phi
}

// clampFinite replaces NaN/Inf with 0, guarding against pathological
// inputs propagating through the pipeline as unrepresentable JSON numbers.
func clampFinite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
