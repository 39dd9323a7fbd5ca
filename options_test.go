package rough

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := NewOptions[float64]()

	if o.MaxRandomnessOffset != 2 {
		t.Errorf("MaxRandomnessOffset = %v, want 2", o.MaxRandomnessOffset)
	}
	if o.Roughness != 1 {
		t.Errorf("Roughness = %v, want 1", o.Roughness)
	}
	if o.Bowing != 2 {
		t.Errorf("Bowing = %v, want 2", o.Bowing)
	}
	if o.Stroke != "#000000" {
		t.Errorf("Stroke = %q, want #000000", o.Stroke)
	}
	if o.StrokeWidth != 1 {
		t.Errorf("StrokeWidth = %v, want 1", o.StrokeWidth)
	}
	if o.CurveFitting != 0.95 {
		t.Errorf("CurveFitting = %v, want 0.95", o.CurveFitting)
	}
	if o.CurveStepCount != 9 {
		t.Errorf("CurveStepCount = %v, want 9", o.CurveStepCount)
	}
	if o.FillStyle != FillHachure {
		t.Errorf("FillStyle = %v, want FillHachure", o.FillStyle)
	}
	if o.FillWeight != -1 || o.HachureGap != -1 {
		t.Errorf("FillWeight/HachureGap = %v/%v, want -1/-1", o.FillWeight, o.HachureGap)
	}
	if o.HachureAngle != -41 {
		t.Errorf("HachureAngle = %v, want -41", o.HachureAngle)
	}
	if o.Simplification != 1 {
		t.Errorf("Simplification = %v, want 1", o.Simplification)
	}
	if o.Seed != 345 {
		t.Errorf("Seed = %v, want 345", o.Seed)
	}
	if o.Fill != "" || o.DisableMultiStroke || o.PreserveVertices {
		t.Error("unexpected non-zero defaults")
	}
}

func TestOptionSetters(t *testing.T) {
	o := NewOptions(
		WithRoughness[float64](2.5),
		WithBowing[float64](0),
		WithStroke[float64]("#ff0000"),
		WithStrokeWidth[float64](3),
		WithFill[float64]("#00ff00"),
		WithFillStyle[float64](FillDots),
		WithHachureAngle[float64](30),
		WithHachureGap[float64](8),
		WithSeed[float64](7),
		WithDisableMultiStroke[float64](true),
		WithPreserveVertices[float64](true),
		WithStrokeLineDash[float64]([]float64{4, 2}, 1),
	)

	if o.Roughness != 2.5 || o.Bowing != 0 {
		t.Errorf("Roughness/Bowing = %v/%v", o.Roughness, o.Bowing)
	}
	if o.Stroke != "#ff0000" || o.Fill != "#00ff00" {
		t.Errorf("colors = %q/%q", o.Stroke, o.Fill)
	}
	if o.FillStyle != FillDots {
		t.Errorf("FillStyle = %v", o.FillStyle)
	}
	if o.HachureAngle != 30 || o.HachureGap != 8 {
		t.Errorf("hachure = %v/%v", o.HachureAngle, o.HachureGap)
	}
	if o.Seed != 7 || !o.DisableMultiStroke || !o.PreserveVertices {
		t.Error("seed or flags not applied")
	}
	if len(o.StrokeLineDash) != 2 || o.StrokeLineDashOffset != 1 {
		t.Errorf("dash = %v offset %v", o.StrokeLineDash, o.StrokeLineDashOffset)
	}
}

func TestWithFixedDecimalPlaceDigits(t *testing.T) {
	o := NewOptions(WithFixedDecimalPlaceDigits[float64](3))
	if o.FixedDecimalPlaceDigits == nil || *o.FixedDecimalPlaceDigits != 3 {
		t.Errorf("FixedDecimalPlaceDigits = %v", o.FixedDecimalPlaceDigits)
	}
}

func TestCloneAlterSeed(t *testing.T) {
	o := NewOptions(WithSeed[float64](100))
	_ = o.random() // materializes the randomizer

	c := o.cloneAlterSeed()
	if c.Seed != 101 {
		t.Errorf("cloned seed = %v, want 101", c.Seed)
	}
	if c.Randomizer != nil {
		t.Error("clone should not share the randomizer")
	}
	if o.Seed != 100 || o.Randomizer == nil {
		t.Error("original options mutated by clone")
	}
}

func TestRandomLazySeeding(t *testing.T) {
	a := NewOptions(WithSeed[float64](42))
	b := NewOptions(WithSeed[float64](42))
	for i := 0; i < 10; i++ {
		if av, bv := a.random(), b.random(); av != bv {
			t.Fatalf("draw %d: %v != %v", i, av, bv)
		}
	}
}
