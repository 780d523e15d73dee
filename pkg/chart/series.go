package chart

import "github.com/samber/lo"

// Max returns the largest value in the series, defaulting to 0 for an empty
// series so labels degrade to "0" instead of failing.
func Max(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	return lo.Max(series)
}

// Normalize converts a series into positioned points. Each fraction is
// value/max; when the maximum is not positive the fraction clamps to 0 so a
// degenerate series renders as zero-height bars rather than dividing by zero.
func Normalize(cfg Config, series []float64) []Point {
	max := Max(series)
	return lo.Map(series, func(value float64, index int) Point {
		fraction := 0.0
		if max > 0 {
			fraction = value / max
		}
		return Point{
			X:        float64(index) * cfg.BarSpacing,
			Fraction: fraction,
		}
	})
}
