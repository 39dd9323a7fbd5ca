package rough

import (
	"math"
	"testing"
)

func TestDistanceToSegmentSquared(t *testing.T) {
	tests := []struct {
		name    string
		p, v, w Point[float64]
		want    float64
	}{
		{"on segment", Pt(5.0, 0.0), Pt(0.0, 0.0), Pt(10.0, 0.0), 0},
		{"above midpoint", Pt(5.0, 3.0), Pt(0.0, 0.0), Pt(10.0, 0.0), 9},
		{"beyond end", Pt(13.0, 4.0), Pt(0.0, 0.0), Pt(10.0, 0.0), 25},
		{"before start", Pt(-3.0, 4.0), Pt(0.0, 0.0), Pt(10.0, 0.0), 25},
		{"degenerate segment", Pt(3.0, 4.0), Pt(0.0, 0.0), Pt(0.0, 0.0), 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distanceToSegmentSquared(tt.p, tt.v, tt.w)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("distanceToSegmentSquared = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointsOnBezierCurvesStraightLine(t *testing.T) {
	// a degenerate cubic along a straight line flattens to very few
	// points
	curve := []Point[float64]{
		Pt(0.0, 0.0), Pt(10.0, 0.0), Pt(20.0, 0.0), Pt(30.0, 0.0),
	}
	points := pointsOnBezierCurves(curve, 0.15, 0)
	if len(points) < 2 {
		t.Fatalf("got %d points, want at least the endpoints", len(points))
	}
	first, last := points[0], points[len(points)-1]
	if first != Pt(0.0, 0.0) || last != Pt(30.0, 0.0) {
		t.Errorf("endpoints %v %v, want (0,0) (30,0)", first, last)
	}
	for _, p := range points {
		if p.Y != 0 {
			t.Errorf("point %v off the line", p)
		}
	}
}

func TestPointsOnBezierCurvesCurved(t *testing.T) {
	curve := []Point[float64]{
		Pt(0.0, 0.0), Pt(0.0, 50.0), Pt(100.0, 50.0), Pt(100.0, 0.0),
	}
	coarse := pointsOnBezierCurves(curve, 10, 0)
	fine := pointsOnBezierCurves(curve, 0.01, 0)
	if len(fine) <= len(coarse) {
		t.Errorf("tighter tolerance should add points: coarse %d fine %d", len(coarse), len(fine))
	}
}

func TestPointsOnBezierCurvesChained(t *testing.T) {
	// two chained cubics: 1 + 3*2 control points
	curve := []Point[float64]{
		Pt(0.0, 0.0), Pt(10.0, 20.0), Pt(20.0, 20.0), Pt(30.0, 0.0),
		Pt(40.0, -20.0), Pt(50.0, -20.0), Pt(60.0, 0.0),
	}
	points := pointsOnBezierCurves(curve, 0.15, 0)
	last := points[len(points)-1]
	if last != Pt(60.0, 0.0) {
		t.Errorf("last point %v, want (60,0)", last)
	}
}

func TestSimplifyCollinear(t *testing.T) {
	points := []Point[float64]{
		Pt(0.0, 0.0), Pt(1.0, 0.001), Pt(2.0, -0.001), Pt(3.0, 0.0),
		Pt(4.0, 0.002), Pt(5.0, 0.0),
	}
	simplified := simplify(points, 0.1)
	if len(simplified) != 2 {
		t.Fatalf("simplify kept %d points, want 2", len(simplified))
	}
	if simplified[0] != points[0] || simplified[1] != points[len(points)-1] {
		t.Errorf("simplify endpoints %v, want first and last input points", simplified)
	}
}

func TestSimplifyKeepsCorner(t *testing.T) {
	points := []Point[float64]{
		Pt(0.0, 0.0), Pt(5.0, 0.0), Pt(10.0, 0.0), Pt(10.0, 5.0), Pt(10.0, 10.0),
	}
	simplified := simplify(points, 0.5)
	found := false
	for _, p := range simplified {
		if p == Pt(10.0, 0.0) {
			found = true
		}
	}
	if !found {
		t.Errorf("corner dropped: %v", simplified)
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	points := []Point[float64]{
		Pt(0.0, 0.0), Pt(1.0, 3.0), Pt(2.0, -1.0), Pt(3.0, 4.0),
		Pt(4.0, 0.0), Pt(5.0, 2.0), Pt(6.0, 0.0),
	}
	once := simplify(points, 1.5)
	twice := simplify(once, 1.5)
	if len(once) != len(twice) {
		t.Fatalf("simplify not idempotent: %d then %d points", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("point %d changed on second pass: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestCurveToBezier(t *testing.T) {
	t.Run("three points", func(t *testing.T) {
		points := []Point[float64]{Pt(0.0, 0.0), Pt(5.0, 5.0), Pt(10.0, 0.0)}
		curve := curveToBezier(points, 0)
		want := []Point[float64]{Pt(0.0, 0.0), Pt(5.0, 5.0), Pt(10.0, 0.0), Pt(10.0, 0.0)}
		if len(curve) != len(want) {
			t.Fatalf("got %d control points, want %d", len(curve), len(want))
		}
		for i := range want {
			if curve[i] != want[i] {
				t.Errorf("control %d = %v, want %v", i, curve[i], want[i])
			}
		}
	})

	t.Run("interpolates input points", func(t *testing.T) {
		points := []Point[float64]{
			Pt(0.0, 0.0), Pt(10.0, 10.0), Pt(20.0, 0.0), Pt(30.0, 10.0),
		}
		curve := curveToBezier(points, 0)
		// on-curve points sit at every third control point
		if (len(curve)-1)%3 != 0 {
			t.Fatalf("control count %d is not 3n+1", len(curve))
		}
		for i, p := range points {
			got := curve[i*3]
			if got != p {
				t.Errorf("on-curve point %d = %v, want %v", i, got, p)
			}
		}
	})
}

func TestSimplifyMonotonic(t *testing.T) {
	var points []Point[float64]
	for i := 0; i <= 60; i++ {
		x := float64(i)
		points = append(points, Pt(x, 8*math.Sin(x/4)))
	}

	prev := len(points)
	for _, eps := range []float64{0.01, 0.05, 0.2, 0.5, 1, 2, 4, 8, 16} {
		n := len(simplify(points, eps))
		if n > prev {
			t.Errorf("eps %v keeps %d points, more than %d at a tighter eps", eps, n, prev)
		}
		prev = n
	}
	if prev != 2 {
		t.Errorf("largest eps keeps %d points, want the endpoints only", prev)
	}
}
