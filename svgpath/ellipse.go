package svgpath

import "math"

const epsilon = 1e-10

// Ellipse is an origin-centered ellipse with radii Rx, Ry and x-axis
// rotation Ax in degrees. It models the radii part of an arc segment so
// that affine maps can be applied to it exactly.
type Ellipse struct {
	Rx, Ry float64
	Ax     float64
}

// Transform maps the ellipse through the linear part [a b c d] of an
// affine matrix, recovering the radii and rotation of the image ellipse
// from the eigenvalues of m*mᵀ.
func (e *Ellipse) Transform(m [4]float64) *Ellipse {
	c := math.Cos(e.Ax * math.Pi / 180)
	s := math.Sin(e.Ax * math.Pi / 180)
	ma := [4]float64{
		e.Rx * (m[0]*c + m[2]*s),
		e.Rx * (m[1]*c + m[3]*s),
		e.Ry * (-m[0]*s + m[2]*c),
		e.Ry * (-m[1]*s + m[3]*c),
	}

	j := ma[0]*ma[0] + ma[2]*ma[2]
	k := ma[1]*ma[1] + ma[3]*ma[3]

	// discriminant of the characteristic polynomial of ma*maᵀ
	d := ((ma[0]-ma[3])*(ma[0]-ma[3]) + (ma[2]+ma[1])*(ma[2]+ma[1])) *
		((ma[0]+ma[3])*(ma[0]+ma[3]) + (ma[2]-ma[1])*(ma[2]-ma[1]))

	// mean eigenvalue
	jk := (j + k) / 2

	// the image is (almost) a circle
	if d < epsilon*jk {
		e.Rx = math.Sqrt(jk)
		e.Ry = math.Sqrt(jk)
		e.Ax = 0
		return e
	}

	l := ma[0]*ma[1] + ma[2]*ma[3]
	d = math.Sqrt(d)

	// the two eigenvalues of ma*maᵀ
	l1 := jk + d/2
	l2 := jk - d/2

	if math.Abs(l) < epsilon && math.Abs(l1-k) < epsilon {
		e.Ax = 90
	} else {
		var t float64
		if math.Abs(l) > math.Abs(l1-k) {
			t = (l1 - j) / l
		} else {
			t = l / (l1 - k)
		}
		e.Ax = math.Atan(t) * 180 / math.Pi
	}

	if e.Ax >= 0 {
		e.Rx = math.Sqrt(l1)
		e.Ry = math.Sqrt(l2)
	} else {
		e.Ax += 90
		e.Rx = math.Sqrt(l2)
		e.Ry = math.Sqrt(l1)
	}
	return e
}

// Degenerate reports whether the ellipse has collapsed to a segment.
func (e *Ellipse) Degenerate() bool {
	return e.Rx < epsilon*e.Ry || e.Ry < epsilon*e.Rx
}
