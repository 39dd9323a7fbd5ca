package svgpath

import "math"

const tau = 2 * math.Pi

// unitVectorAngle returns the signed angle between two unit-length
// direction vectors.
func unitVectorAngle(ux, uy, vx, vy float64) float64 {
	sign := 1.0
	if ux*vy-uy*vx < 0 {
		sign = -1.0
	}
	dot := ux*vx + uy*vy
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	return sign * math.Acos(dot)
}

// getArcCenter solves the center parameterization of an endpoint
// parameterized elliptical arc, returning the center and the start and
// sweep angles.
func getArcCenter(x1, y1, x2, y2 float64, fa, fs bool, rx, ry, sinPhi, cosPhi float64) (cx, cy, theta1, deltaTheta float64) {
	x1p := cosPhi*(x1-x2)/2 + sinPhi*(y1-y2)/2
	y1p := -sinPhi*(x1-x2)/2 + cosPhi*(y1-y2)/2

	rxSq := rx * rx
	rySq := ry * ry
	x1pSq := x1p * x1p
	y1pSq := y1p * y1p

	radicant := rxSq*rySq - rxSq*y1pSq - rySq*x1pSq
	if radicant < 0 {
		radicant = 0
	}
	radicant /= rxSq*y1pSq + rySq*x1pSq
	factor := math.Sqrt(radicant)
	if fa == fs {
		factor = -factor
	}

	cxp := factor * rx / ry * y1p
	cyp := factor * -ry / rx * x1p

	cx = cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy = sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	v1x := (x1p - cxp) / rx
	v1y := (y1p - cyp) / ry
	v2x := (-x1p - cxp) / rx
	v2y := (-y1p - cyp) / ry

	theta1 = unitVectorAngle(1, 0, v1x, v1y)
	deltaTheta = unitVectorAngle(v1x, v1y, v2x, v2y)

	if !fs && deltaTheta > 0 {
		deltaTheta -= tau
	}
	if fs && deltaTheta < 0 {
		deltaTheta += tau
	}
	return cx, cy, theta1, deltaTheta
}

// approximateUnitArc returns the cubic control points for a unit-circle
// arc starting at theta1 and spanning deltaTheta, as eight floats
// starting with the on-curve start point.
func approximateUnitArc(theta1, deltaTheta float64) []float64 {
	alpha := 4.0 / 3.0 * math.Tan(deltaTheta/4)

	x1 := math.Cos(theta1)
	y1 := math.Sin(theta1)
	x2 := math.Cos(theta1 + deltaTheta)
	y2 := math.Sin(theta1 + deltaTheta)

	return []float64{
		x1, y1,
		x1 - y1*alpha, y1 + x1*alpha,
		x2 + y2*alpha, y2 - x2*alpha,
		x2, y2,
	}
}

// a2c approximates an elliptical arc by cubic curves. Each returned
// group holds eight floats: the start point followed by the two control
// points and the end point. Degenerate arcs return nil.
func a2c(x1, y1, x2, y2 float64, fa, fs bool, rx, ry, phi float64) [][]float64 {
	sinPhi := math.Sin(phi * tau / 360)
	cosPhi := math.Cos(phi * tau / 360)

	x1p := cosPhi*(x1-x2)/2 + sinPhi*(y1-y2)/2
	y1p := -sinPhi*(x1-x2)/2 + cosPhi*(y1-y2)/2

	if x1p == 0 && y1p == 0 {
		return nil
	}
	if rx == 0 || ry == 0 {
		return nil
	}

	rx = math.Abs(rx)
	ry = math.Abs(ry)

	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	cx, cy, theta1, deltaTheta := getArcCenter(x1, y1, x2, y2, fa, fs, rx, ry, sinPhi, cosPhi)

	segments := int(math.Max(math.Ceil(math.Abs(deltaTheta)/(tau/4)), 1))
	delta := deltaTheta / float64(segments)

	result := make([][]float64, 0, segments)
	for i := 0; i < segments; i++ {
		curve := approximateUnitArc(theta1+float64(i)*delta, delta)
		for j := 0; j < len(curve); j += 2 {
			x := curve[j] * rx
			y := curve[j+1] * ry
			xp := cosPhi*x - sinPhi*y
			yp := sinPhi*x + cosPhi*y
			curve[j] = xp + cx
			curve[j+1] = yp + cy
		}
		result = append(result, curve)
	}
	return result
}
