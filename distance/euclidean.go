package distance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Euclidean computes the standard Euclidean (L2) distance.
// D(x, y) = sqrt(sum((x_i - y_i)^2))
func Euclidean(x, y []float64) float64 {
	return floats.Distance(x, y, 2)
}

// SquaredEuclidean computes the squared Euclidean distance.
// D(x, y) = sum((x_i - y_i)^2)
func SquaredEuclidean(x, y []float64) float64 {
	var sum float64
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	return sum
}

// Manhattan computes the Manhattan (L1/city block) distance.
// D(x, y) = sum(|x_i - y_i|)
func Manhattan(x, y []float64) float64 {
	return floats.Distance(x, y, 1)
}

// Chebyshev computes the Chebyshev (L-infinity) distance.
// D(x, y) = max(|x_i - y_i|)
func Chebyshev(x, y []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Distance(x, y, math.Inf(1))
}
