package rough

// Adaptive flattening and simplification of cubic bezier chains. A
// chain is 3n+1 points: start, then control-control-end triples.

// distanceToSegmentSquared computes the squared distance from p to the
// segment vw.
func distanceToSegmentSquared[F Float](p, v, w Point[F]) F {
	l2 := v.DistanceSquared(w)
	if l2 == 0 {
		return p.DistanceSquared(v)
	}
	t := ((p.X-v.X)*(w.X-v.X) + (p.Y-v.Y)*(w.Y-v.Y)) / l2
	t = maxf(F(0), minf(F(1), t))
	return p.DistanceSquared(v.Lerp(w, t))
}

// flatness estimates how far the cubic at offset deviates from its
// chord. Adapted from the offset-bezier flatness bound.
func flatness[F Float](points []Point[F], offset int) F {
	p1 := points[offset]
	p2 := points[offset+1]
	p3 := points[offset+2]
	p4 := points[offset+3]

	ux := 3*p2.X - 2*p1.X - p4.X
	ux *= ux
	uy := 3*p2.Y - 2*p1.Y - p4.Y
	uy *= uy
	vx := 3*p3.X - 2*p4.X - p1.X
	vx *= vx
	vy := 3*p3.Y - 2*p4.Y - p1.Y
	vy *= vy
	if ux < vx {
		ux = vx
	}
	if uy < vy {
		uy = vy
	}
	return ux + uy
}

// pointsOnCubicSplitting appends sampled points for the cubic at
// offset, subdividing at the midpoint until flat enough. Start points
// closer than one unit to the previously emitted point are dropped.
// The subdivision runs on an explicit stack: a tight tolerance on a
// long curve must not be able to exhaust the call stack.
func pointsOnCubicSplitting[F Float](points []Point[F], offset int, tolerance F, out *[]Point[F]) {
	stack := [][4]Point[F]{{
		points[offset], points[offset+1], points[offset+2], points[offset+3],
	}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if flatness(c[:], 0) < tolerance {
			p0 := c[0]
			if len(*out) > 0 {
				if (*out)[len(*out)-1].Distance(p0) > 1 {
					*out = append(*out, p0)
				}
			} else {
				*out = append(*out, p0)
			}
			*out = append(*out, c[3])
			continue
		}

		const t = 0.5
		q1 := c[0].Lerp(c[1], t)
		q2 := c[1].Lerp(c[2], t)
		q3 := c[2].Lerp(c[3], t)
		r1 := q1.Lerp(q2, t)
		r2 := q2.Lerp(q3, t)
		mid := r1.Lerp(r2, t)

		// second half below the first so the first pops next,
		// keeping emission in curve order
		stack = append(stack,
			[4]Point[F]{mid, r2, q3, c[3]},
			[4]Point[F]{c[0], q1, r1, mid})
	}
}

// pointsOnBezierCurves samples a cubic chain into a polyline within
// tolerance, then optionally simplifies it to the given distance.
func pointsOnBezierCurves[F Float](points []Point[F], tolerance, distance F) []Point[F] {
	var out []Point[F]
	numSegments := len(points) / 3
	for i := 0; i < numSegments; i++ {
		pointsOnCubicSplitting(points, i*3, tolerance, &out)
	}
	if distance > 0 {
		return simplify(out, distance)
	}
	return out
}

// simplify reduces a polyline with Ramer-Douglas-Peucker at the given
// distance threshold.
func simplify[F Float](points []Point[F], distance F) []Point[F] {
	if len(points) == 0 {
		return nil
	}
	var out []Point[F]
	simplifyPoints(points, 0, len(points), distance, &out)
	return out
}

// simplifyPoints keeps the farthest point of each span whose deviation
// from the chord exceeds epsilon, splitting the span there. Spans live
// on an explicit stack so pathological inputs stay bounded.
func simplifyPoints[F Float](points []Point[F], start, end int, epsilon F, out *[]Point[F]) {
	type span struct{ start, end int }
	stack := []span{{start, end}}
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s := points[sp.start]
		e := points[sp.end-1]
		maxDistSq := F(0)
		maxNdx := 0
		for i := sp.start + 1; i < sp.end-1; i++ {
			distSq := distanceToSegmentSquared(points[i], s, e)
			if distSq > maxDistSq {
				maxDistSq = distSq
				maxNdx = i
			}
		}
		if sqrt(maxDistSq) > epsilon {
			// right span below the left so the left pops next
			stack = append(stack,
				span{maxNdx, sp.end},
				span{sp.start, maxNdx + 1})
			continue
		}
		if len(*out) == 0 {
			*out = append(*out, s)
		}
		*out = append(*out, e)
	}
}

// curveToBezier converts a point sequence into the cubic chain of the
// Catmull-Rom-style curve through it. Returns nil for fewer than three
// points.
func curveToBezier[F Float](pointsIn []Point[F], curveTightness F) []Point[F] {
	if len(pointsIn) < 3 {
		return nil
	}
	var out []Point[F]
	if len(pointsIn) == 3 {
		out = append(out, pointsIn[0], pointsIn[1], pointsIn[2], pointsIn[2])
		return out
	}
	points := make([]Point[F], 0, len(pointsIn)+2)
	points = append(points, pointsIn[0], pointsIn[0])
	for i := 1; i < len(pointsIn); i++ {
		points = append(points, pointsIn[i])
		if i == len(pointsIn)-1 {
			points = append(points, pointsIn[i])
		}
	}
	s := 1 - curveTightness
	out = append(out, points[0])
	for i := 1; i+2 < len(points); i++ {
		p := points[i]
		b1 := Point[F]{
			X: p.X + (s*points[i+1].X-s*points[i-1].X)/6,
			Y: p.Y + (s*points[i+1].Y-s*points[i-1].Y)/6,
		}
		b2 := Point[F]{
			X: points[i+1].X + (s*p.X-s*points[i+2].X)/6,
			Y: points[i+1].Y + (s*p.Y-s*points[i+2].Y)/6,
		}
		out = append(out, b1, b2, points[i+1])
	}
	return out
}
