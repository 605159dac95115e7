package distance

// Hamming computes the proportion of disagreeing components.
// D(x, y) = (number of x_i != y_i) / n
func Hamming(x, y []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var count int
	for i := range x {
		if x[i] != y[i] {
			count++
		}
	}
	return float64(count) / float64(len(x))
}

// Jaccard computes the Jaccard distance over the components that are
// nonzero in at least one vector.
// D(x, y) = |{i : x_i != y_i, x_i or y_i nonzero}| / |{i : x_i or y_i nonzero}|
func Jaccard(x, y []float64) float64 {
	var unequal, nonzero int
	for i := range x {
		if x[i] == 0 && y[i] == 0 {
			continue
		}
		nonzero++
		if x[i] != y[i] {
			unequal++
		}
	}
	if nonzero == 0 {
		return 0
	}
	return float64(unequal) / float64(nonzero)
}
