package sweep

import (
	"math"
	"sort"
)

// Median returns the mathematical median of the samples; for an even count it
// is the mean of the two middle values.
func Median(samples []int) float64 {
	if len(samples) == 0 {
		return 0
	}

	sorted := make([]int, len(samples))
	copy(sorted, samples)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// StdErr returns the standard error of the mean: the sample standard
// deviation (n-1 denominator) divided by the square root of the sample count.
// The sample standard deviation is undefined for fewer than two samples, in
// which case 0 is returned.
func StdErr(samples []int) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}

	var mean float64
	for _, sample := range samples {
		mean += float64(sample)
	}
	mean /= float64(n)

	var squares float64
	for _, sample := range samples {
		diff := float64(sample) - mean
		squares += diff * diff
	}
	stdev := math.Sqrt(squares / float64(n-1))

	return stdev / math.Sqrt(float64(n))
}
