package rough

import "testing"

func TestOpsToPath(t *testing.T) {
	set := OpSet[float64]{
		Type: OpSetPath,
		Ops: []Op[float64]{
			{Op: OpMove, Data: []float64{1, 2}},
			{Op: OpLineTo, Data: []float64{3, 4}},
			{Op: OpBCurveTo, Data: []float64{5, 6, 7, 8, 9, 10}},
		},
	}
	want := "M1 2 L3 4 C5 6, 7 8, 9 10"
	if got := OpsToPath(set, nil); got != want {
		t.Errorf("OpsToPath = %q, want %q", got, want)
	}
}

func TestOpsToPathShortestForm(t *testing.T) {
	set := OpSet[float64]{
		Ops: []Op[float64]{{Op: OpMove, Data: []float64{1.5, 0.25}}},
	}
	if got := OpsToPath(set, nil); got != "M1.5 0.25" {
		t.Errorf("OpsToPath = %q, want M1.5 0.25", got)
	}
}

func TestOpsToPathFixedDigits(t *testing.T) {
	set := OpSet[float64]{
		Ops: []Op[float64]{
			{Op: OpMove, Data: []float64{1.23456, 2.0}},
			{Op: OpLineTo, Data: []float64{0.005, 10}},
		},
	}
	digits := 2
	want := "M1.23 2.00 L0.01 10.00"
	if got := OpsToPath(set, &digits); got != want {
		t.Errorf("OpsToPath = %q, want %q", got, want)
	}
}

func TestOpsToPathEmpty(t *testing.T) {
	if got := OpsToPath(OpSet[float64]{}, nil); got != "" {
		t.Errorf("OpsToPath = %q, want empty", got)
	}
}

func TestToPathsRoles(t *testing.T) {
	o := NewOptions(
		WithStroke[float64]("#111111"),
		WithStrokeWidth[float64](2),
		WithFill[float64]("#222222"),
		WithFillWeight[float64](5),
	)
	move := []Op[float64]{{Op: OpMove, Data: []float64{0, 0}}}
	d := Drawable[float64]{
		Shape:   "rectangle",
		Options: o,
		Sets: []OpSet[float64]{
			{Type: OpSetFillPath, Ops: move},
			{Type: OpSetFillSketch, Ops: move},
			{Type: OpSetPath, Ops: move},
		},
	}
	paths := ToPaths(d)
	if len(paths) != 3 {
		t.Fatalf("got %d paths", len(paths))
	}

	fill := paths[0]
	if fill.Fill != "#222222" || fill.Stroke != "" || fill.StrokeWidth != 0 {
		t.Errorf("fill path = %+v", fill)
	}
	sketch := paths[1]
	if sketch.Stroke != "#222222" || sketch.StrokeWidth != 5 || sketch.Fill != "" {
		t.Errorf("fill sketch = %+v", sketch)
	}
	outline := paths[2]
	if outline.Stroke != "#111111" || outline.StrokeWidth != 2 || outline.Fill != "" {
		t.Errorf("outline = %+v", outline)
	}
}

func TestDrawableFillRule(t *testing.T) {
	tests := []struct {
		shape string
		want  FillRule
	}{
		{"rectangle", FillRuleNonZero},
		{"ellipse", FillRuleNonZero},
		{"circle", FillRuleNonZero},
		{"curve", FillRuleEvenOdd},
		{"bezierQuadratic", FillRuleEvenOdd},
		{"bezierCubic", FillRuleEvenOdd},
		{"polygon", FillRuleEvenOdd},
		{"path", FillRuleEvenOdd},
	}
	for _, tt := range tests {
		d := Drawable[float64]{Shape: tt.shape}
		if got := d.FillRule(); got != tt.want {
			t.Errorf("FillRule(%s) = %v, want %v", tt.shape, got, tt.want)
		}
	}
}

func TestToPathsDefaultFillWeight(t *testing.T) {
	o := NewOptions(
		WithFill[float64]("#333"),
		WithStrokeWidth[float64](6),
	)
	d := Drawable[float64]{
		Options: o,
		Sets: []OpSet[float64]{
			{Type: OpSetFillSketch, Ops: []Op[float64]{{Op: OpMove, Data: []float64{0, 0}}}},
		},
	}
	if got := ToPaths(d)[0].StrokeWidth; got != 3 {
		t.Errorf("sketch weight = %v, want strokeWidth/2", got)
	}
}
