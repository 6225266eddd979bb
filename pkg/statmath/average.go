package statmath

import "math"

// WeightedAverage computes the weighted mean of values. Weights align
// positionally with values and must match their length; callers holding a
// most-recent-first series must reverse the weight slice so the latest
// observation gets the largest weight. An empty series, a length mismatch
// or an all-zero weight slice returns 0. Nil weights fall back to
// ExpWeights(len(values), 1).
func WeightedAverage(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	if weights == nil {
		weights = ExpWeights(len(values), 1)
	}
	if len(weights) != len(values) {
		return 0
	}

	var weightedSum, weightSum float64
	for i, v := range values {
		weightedSum += v * weights[i]
		weightSum += weights[i]
	}

	if weightSum == 0 {
		return 0
	}

	return weightedSum / weightSum
}

// ExpWeights generates n exponentially increasing weights, exp of n points
// evenly spaced over [0, spread]. A larger spread biases harder toward the
// high end. n <= 0 returns an empty slice; n == 1 returns [1].
func ExpWeights(n int, spread float64) []float64 {
	if n <= 0 {
		return nil
	}

	weights := make([]float64, n)
	if n == 1 {
		weights[0] = 1
		return weights
	}

	step := spread / float64(n-1)
	for i := range weights {
		weights[i] = math.Exp(float64(i) * step)
	}

	return weights
}

// Reverse returns a reversed copy of the slice. Used to align an
// increasing weight sequence with a most-recent-first series.
func Reverse(values []float64) []float64 {
	reversed := make([]float64, len(values))
	for i, v := range values {
		reversed[len(values)-1-i] = v
	}
	return reversed
}

// Mean computes the plain arithmetic mean. Empty input returns 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
