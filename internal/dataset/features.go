package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PolynomialFeatures expands x into [x, x², ..., x^degree].
func PolynomialFeatures(x float64, degree int) []float64 {
	out := make([]float64, 0, degree)
	for d := 1; d <= degree; d++ {
		out = append(out, math.Pow(x, float64(d)))
	}
	return out
}

// Polynomial maps single-feature points to polynomial features of the
// given degree. x is divided by scale first (scale 0 means 1), which keeps
// high powers in a usable range.
func Polynomial(points []DataPoint, degree int, scale float64) []DataPoint {
	if scale == 0 {
		scale = 1
	}
	out := make([]DataPoint, len(points))
	for i, p := range points {
		out[i] = p
		out[i].Features = PolynomialFeatures(p.Features[0]/scale, degree)
	}
	return out
}

// Split returns the first floor(len*fraction) points as the training set
// and the rest as the validation set. Both share the backing array.
func Split(points []DataPoint, fraction float64) (train, validation []DataPoint) {
	idx := int(math.Floor(float64(len(points)) * fraction))
	idx = max(0, min(idx, len(points)))
	return points[:idx], points[idx:]
}

// Normalize rescales values to [0, 1]. A zero range leaves the values
// shifted to 0.
func Normalize(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	lo, hi := floats.Min(values), floats.Max(values)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	out := make([]float64, len(values))
	copy(out, values)
	floats.AddConst(-lo, out)
	floats.Scale(1/span, out)
	return out
}
