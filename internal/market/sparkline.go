package market

import (
	"math"
	"math/rand"
)

// DefaultSparklinePoints is the series length for live assets.
const DefaultSparklinePoints = 24

// GenerateSparkline produces a cosmetic display series of the given
// length, trending in the direction of changePercent with noise and a
// sine wave scaled by its magnitude. Every point is non-negative and the
// length is always exactly points.
func GenerateSparkline(rng *rand.Rand, changePercent float64, points int) []float64 {
	if points <= 0 {
		points = DefaultSparklinePoints
	}

	volatility := math.Abs(changePercent) / 100
	out := make([]float64, points)
	for i := range out {
		progress := 0.0
		if points > 1 {
			progress = float64(i) / float64(points-1)
		}
		trend := progress * changePercent * 2
		noise := (rng.Float64()*2 - 1) * volatility * 15
		wave := math.Sin(float64(i)*0.5) * volatility * 10

		v := 100 + trend + noise + wave
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}
