package distance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cosine computes the cosine distance.
// D(x, y) = 1 - (x . y) / (||x|| * ||y||)
// A zero vector has no direction: the distance is 0 against an identical
// vector and 1 otherwise.
func Cosine(x, y []float64) float64 {
	var dotProduct, normX, normY float64
	for i := range x {
		dotProduct += x[i] * y[i]
		normX += x[i] * x[i]
		normY += y[i] * y[i]
	}
	if normX == 0 || normY == 0 {
		return degenerate(x, y)
	}
	return 1.0 - clamp(dotProduct/(math.Sqrt(normX)*math.Sqrt(normY)))
}

// Correlation computes the correlation distance.
// D(x, y) = 1 - correlation(x, y)
// correlation = (x-mean(x)).(y-mean(y)) / (||x-mean(x)|| * ||y-mean(y)||)
func Correlation(x, y []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}

	meanX := floats.Sum(x) / n
	meanY := floats.Sum(y) / n

	var dotProduct, normX, normY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		dotProduct += dx * dy
		normX += dx * dx
		normY += dy * dy
	}

	if normX == 0 || normY == 0 {
		return degenerate(x, y)
	}
	return 1.0 - clamp(dotProduct/(math.Sqrt(normX)*math.Sqrt(normY)))
}

func degenerate(x, y []float64) float64 {
	if floats.Equal(x, y) {
		return 0
	}
	return 1
}

// clamp keeps a similarity inside [-1, 1] against rounding error.
func clamp(s float64) float64 {
	if s > 1.0 {
		return 1.0
	}
	if s < -1.0 {
		return -1.0
	}
	return s
}
