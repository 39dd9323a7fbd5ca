package rough

// Point represents a 2D point or vector.
type Point[F Float] struct {
	X, Y F
}

// Pt is a convenience function to create a Point.
func Pt[F Float](x, y F) Point[F] {
	return Point[F]{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point[F]) Add(q Point[F]) Point[F] {
	return Point[F]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point[F]) Sub(q Point[F]) Point[F] {
	return Point[F]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point[F]) Mul(s F) Point[F] {
	return Point[F]{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point[F]) Length() F {
	return sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point[F]) LengthSquared() F {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point[F]) Distance(q Point[F]) F {
	return p.Sub(q).Length()
}

// DistanceSquared returns the squared distance between two points.
func (p Point[F]) DistanceSquared(q Point[F]) F {
	return p.Sub(q).LengthSquared()
}

// Rotate returns the point rotated by angle radians around center.
func (p Point[F]) Rotate(center Point[F], angle F) Point[F] {
	c := cos(angle)
	s := sin(angle)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point[F]{
		X: center.X + dx*c - dy*s,
		Y: center.Y + dx*s + dy*c,
	}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point[F]) Lerp(q Point[F], t F) Point[F] {
	return Point[F]{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Line represents a line segment from P0 to P1.
type Line[F Float] struct {
	P0, P1 Point[F]
}

// Length returns the length of the segment.
func (l Line[F]) Length() F {
	return l.P0.Distance(l.P1)
}

// Rotate returns the segment with both endpoints rotated by angle
// radians around center.
func (l Line[F]) Rotate(center Point[F], angle F) Line[F] {
	return Line[F]{P0: l.P0.Rotate(center, angle), P1: l.P1.Rotate(center, angle)}
}

// rotatePoints rotates every point by angle degrees around center.
func rotatePoints[F Float](points []Point[F], center Point[F], degrees F) []Point[F] {
	if len(points) == 0 {
		return nil
	}
	angle := pi[F]() / 180 * degrees
	out := make([]Point[F], len(points))
	for i, p := range points {
		out[i] = p.Rotate(center, angle)
	}
	return out
}

// rotateLines rotates every segment by angle degrees around center.
func rotateLines[F Float](lines []Line[F], center Point[F], degrees F) []Line[F] {
	if len(lines) == 0 {
		return nil
	}
	angle := pi[F]() / 180 * degrees
	out := make([]Line[F], len(lines))
	for i, l := range lines {
		out[i] = l.Rotate(center, angle)
	}
	return out
}
