// sim/metrics_utils.go
package sim

type IntOrFloat64 interface {
	int | int64 | float64
}

// Mean is a util function that calculates the mean of a data list.
func Mean[T IntOrFloat64](values []T) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += float64(v)
	}

	return sum / float64(len(values))
}

// Max returns the largest value in a data list, or the zero value for
// an empty list.
func Max[T IntOrFloat64](values []T) T {
	var max T
	for i, v := range values {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}
