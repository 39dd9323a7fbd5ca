package rough

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3.0, 4.0)
	q := Pt(1.0, 2.0)

	if got := p.Add(q); got != Pt(4.0, 6.0) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := p.Sub(q); got != Pt(2.0, 2.0) {
		t.Errorf("Sub = %v, want (2, 2)", got)
	}
	if got := p.Mul(2); got != Pt(6.0, 8.0) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.DistanceSquared(q); got != 8 {
		t.Errorf("DistanceSquared = %v, want 8", got)
	}
}

func TestPointRotate(t *testing.T) {
	tests := []struct {
		name   string
		p      Point[float64]
		center Point[float64]
		angle  float64
		want   Point[float64]
	}{
		{"quarter turn about origin", Pt(1.0, 0.0), Pt(0.0, 0.0), math.Pi / 2, Pt(0.0, 1.0)},
		{"half turn about origin", Pt(1.0, 0.0), Pt(0.0, 0.0), math.Pi, Pt(-1.0, 0.0)},
		{"quarter turn about point", Pt(2.0, 1.0), Pt(1.0, 1.0), math.Pi / 2, Pt(1.0, 2.0)},
		{"zero angle", Pt(5.0, -3.0), Pt(2.0, 2.0), 0, Pt(5.0, -3.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Rotate(tt.center, tt.angle)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Rotate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointLerp(t *testing.T) {
	p := Pt(0.0, 0.0)
	q := Pt(10.0, 20.0)

	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
	if got := p.Lerp(q, 0.5); got != Pt(5.0, 10.0) {
		t.Errorf("Lerp(0.5) = %v, want (5, 10)", got)
	}
}

func TestLineRotate(t *testing.T) {
	l := Line[float64]{P0: Pt(0.0, 0.0), P1: Pt(4.0, 0.0)}
	if got := l.Length(); got != 4 {
		t.Errorf("Length = %v, want 4", got)
	}
	r := l.Rotate(Pt(0.0, 0.0), math.Pi/2)
	if math.Abs(r.P1.X) > 1e-12 || math.Abs(r.P1.Y-4) > 1e-12 {
		t.Errorf("rotated end = %v, want (0, 4)", r.P1)
	}
	if got := r.Length(); math.Abs(got-4) > 1e-12 {
		t.Errorf("rotation changed length: %v", got)
	}
}

func TestRotatePoints(t *testing.T) {
	pts := []Point[float64]{{1, 0}, {0, 1}}
	got := rotatePoints(pts, Pt(0.0, 0.0), 90)
	want := []Point[float64]{{0, 1}, {-1, 0}}
	for i := range got {
		if math.Abs(got[i].X-want[i].X) > 1e-12 || math.Abs(got[i].Y-want[i].Y) > 1e-12 {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
	if rotatePoints(nil, Pt(0.0, 0.0), 45) != nil {
		t.Error("rotating no points should return nil")
	}
}

func TestFloat32Instantiation(t *testing.T) {
	p := Pt[float32](3, 4)
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	g := NewGenerator[float32]()
	d := g.Line(0, 0, 10, 10)
	if len(d.Sets) != 1 {
		t.Fatalf("got %d sets", len(d.Sets))
	}
}
