package rough

import "math"

// Float is the coordinate type constraint. All geometry in this package
// is parameterized over it; float64 is the default used by the
// convenience constructors.
type Float interface {
	~float32 | ~float64
}

// Generic shims over math. Arithmetic stays in F; transcendental
// functions round-trip through float64.

func sqrt[F Float](x F) F { return F(math.Sqrt(float64(x))) }

func sin[F Float](x F) F { return F(math.Sin(float64(x))) }

func cos[F Float](x F) F { return F(math.Cos(float64(x))) }

func tan[F Float](x F) F { return F(math.Tan(float64(x))) }

func atan[F Float](x F) F { return F(math.Atan(float64(x))) }

func absf[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

func ceil[F Float](x F) F { return F(math.Ceil(float64(x))) }

func floor[F Float](x F) F { return F(math.Floor(float64(x))) }

func maxf[F Float](a, b F) F {
	if a > b {
		return a
	}
	return b
}

func minf[F Float](a, b F) F {
	if a < b {
		return a
	}
	return b
}

func pi[F Float]() F { return F(math.Pi) }
