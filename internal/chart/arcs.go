package chart

import "math"

// StartAngle is where the first slice begins: twelve o'clock
const StartAngle = -math.Pi / 2

// ArcsFromValues lays out one slice per value around (cx, cy), clockwise
// from twelve o'clock, each spanning its share of the full turn. Negative
// values count as zero.
func ArcsFromValues(values []float64, cx, cy, radius float64) []Arc {
	var sum float64
	for _, v := range values {
		if v > 0 {
			sum += v
		}
	}

	arcs := make([]Arc, 0, len(values))
	angle := StartAngle
	for _, v := range values {
		span := 0.0
		if v > 0 && sum > 0 {
			span = v / sum * 2 * math.Pi
		}
		arcs = append(arcs, Arc{
			X:           cx,
			Y:           cy,
			StartAngle:  angle,
			EndAngle:    angle + span,
			OuterRadius: radius,
		})
		angle += span
	}
	return arcs
}
