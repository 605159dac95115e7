package distance

import "math"

// BrayCurtis computes the Bray-Curtis dissimilarity.
// D(x, y) = sum(|x_i - y_i|) / sum(x_i + y_i)
// Two all-zero vectors are identical communities and yield 0.
func BrayCurtis(x, y []float64) float64 {
	var numerator, denominator float64
	for i := range x {
		numerator += math.Abs(x[i] - y[i])
		denominator += x[i] + y[i]
	}
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Canberra computes the Canberra distance.
// D(x, y) = sum(|x_i - y_i| / (|x_i| + |y_i|))
// Components where both values are zero contribute nothing.
func Canberra(x, y []float64) float64 {
	var sum float64
	for i := range x {
		num := math.Abs(x[i] - y[i])
		denom := math.Abs(x[i]) + math.Abs(y[i])
		if denom > 0 {
			sum += num / denom
		}
	}
	return sum
}
