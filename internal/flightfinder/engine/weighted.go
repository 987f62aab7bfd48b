package engine

// WeightedPick draws one item from a discrete distribution by walking the
// cumulative weights until they cover a single uniform draw. Item order
// matters for tie structure. If rounding leaves the draw uncovered, the
// first item is returned; an empty list yields the zero value.
func WeightedPick[T any](rnd Rand, items []T, weightOf func(T) float64) T {
	var zero T
	if len(items) == 0 {
		return zero
	}

	draw := rnd.Float64()
	cumulative := 0.0
	for _, item := range items {
		cumulative += weightOf(item)
		if draw <= cumulative {
			return item
		}
	}
	return items[0]
}
