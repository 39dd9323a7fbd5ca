package rough

// FillStyle selects the pattern used to fill closed shapes.
type FillStyle int

const (
	// FillHachure fills with parallel sketchy lines.
	FillHachure FillStyle = iota
	// FillSolid fills with a single sketchy polygon.
	FillSolid
	// FillZigZag fills with hachure lines joined into zig-zags.
	FillZigZag
	// FillCrossHatch fills with two hachure passes at right angles.
	FillCrossHatch
	// FillDots fills with randomly nudged dots along hachure lines.
	FillDots
	// FillDashed fills with dashes laid along hachure lines.
	FillDashed
	// FillZigZagLine fills with small chevrons along hachure lines.
	FillZigZagLine
)

// Options controls every aspect of sketch generation. Zero-value fields
// are not meaningful; build values with [NewOptions] and the With*
// options.
//
// Example:
//
//	o := rough.NewOptions(
//	    rough.WithRoughness[float64](2),
//	    rough.WithFill[float64]("#ff0000"),
//	    rough.WithFillStyle[float64](rough.FillCrossHatch),
//	)
type Options[F Float] struct {
	// MaxRandomnessOffset caps the absolute jitter applied to any
	// single coordinate.
	MaxRandomnessOffset F
	// Roughness scales all jitter. 0 draws exact geometry.
	Roughness F
	// Bowing scales the midpoint displacement of sketched lines.
	Bowing F
	// Stroke is the outline color; empty disables the outline.
	Stroke string
	// StrokeWidth is the outline width.
	StrokeWidth F
	// CurveFitting is the fraction of the ideal radius ellipses aim
	// for; the remainder becomes jitter headroom.
	CurveFitting F
	// CurveTightness adjusts the Catmull-Rom tension of sketched
	// curves. 0 is the classic curve; approaching 1 straightens it.
	CurveTightness F
	// CurveStepCount is the number of perimeter samples for a full
	// ellipse at reference size.
	CurveStepCount F
	// Fill is the fill color; empty disables filling.
	Fill string
	// FillStyle selects the fill pattern.
	FillStyle FillStyle
	// FillWeight is the width of fill strokes (and dot diameter for
	// FillDots). Negative means half the stroke width.
	FillWeight F
	// HachureAngle is the hachure direction in degrees.
	HachureAngle F
	// HachureGap is the distance between hachure lines. Negative
	// means four times the stroke width.
	HachureGap F
	// Simplification below 1 replaces sketched path rendering with a
	// flattened, simplified polyline; lower is coarser.
	Simplification F
	// DashOffset is the dash length for FillDashed. Negative falls
	// back to the hachure gap.
	DashOffset F
	// DashGap is the gap between dashes for FillDashed. Negative
	// falls back to the hachure gap.
	DashGap F
	// ZigzagOffset is the chevron size for FillZigZagLine. Negative
	// falls back to the hachure gap.
	ZigzagOffset F
	// Seed drives the deterministic random source. 0 seeds from
	// entropy.
	Seed uint64
	// StrokeLineDash, when set, is carried through to [PathInfo] for
	// consumers that dash outlines.
	StrokeLineDash []F
	// StrokeLineDashOffset accompanies StrokeLineDash.
	StrokeLineDashOffset F
	// FillLineDash and FillLineDashOffset mirror the stroke dash
	// settings for fill strokes.
	FillLineDash       []F
	FillLineDashOffset F
	// DisableMultiStroke draws outlines in a single pass.
	DisableMultiStroke bool
	// DisableMultiStrokeFill draws fill strokes in a single pass.
	DisableMultiStrokeFill bool
	// PreserveVertices pins shape vertices, jittering only the
	// in-between geometry.
	PreserveVertices bool
	// FixedDecimalPlaceDigits, when non-nil, rounds serialized path
	// coordinates to that many decimal places.
	FixedDecimalPlaceDigits *int
	// Randomizer is the random source. Left nil, it is created on
	// first use from Seed.
	Randomizer *Randomizer
}

// Option configures Options during creation.
type Option[F Float] func(*Options[F])

// NewOptions returns the default options with opts applied.
func NewOptions[F Float](opts ...Option[F]) Options[F] {
	o := defaultOptions[F]()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// defaultOptions returns the default sketch options.
func defaultOptions[F Float]() Options[F] {
	return Options[F]{
		MaxRandomnessOffset: 2,
		Roughness:           1,
		Bowing:              2,
		Stroke:              "#000000",
		StrokeWidth:         1,
		CurveFitting:        0.95,
		CurveTightness:      0,
		CurveStepCount:      9,
		FillStyle:           FillHachure,
		FillWeight:          -1,
		HachureAngle:        -41,
		HachureGap:          -1,
		Simplification:      1,
		DashOffset:          -1,
		DashGap:             -1,
		ZigzagOffset:        -1,
		Seed:                345,
	}
}

// WithMaxRandomnessOffset sets the jitter cap.
func WithMaxRandomnessOffset[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.MaxRandomnessOffset = v }
}

// WithRoughness sets the overall jitter scale.
func WithRoughness[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.Roughness = v }
}

// WithBowing sets the line bowing scale.
func WithBowing[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.Bowing = v }
}

// WithStroke sets the outline color. Empty disables the outline.
func WithStroke[F Float](color string) Option[F] {
	return func(o *Options[F]) { o.Stroke = color }
}

// WithStrokeWidth sets the outline width.
func WithStrokeWidth[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.StrokeWidth = v }
}

// WithCurveFitting sets the ellipse fitting fraction.
func WithCurveFitting[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.CurveFitting = v }
}

// WithCurveTightness sets the curve tension.
func WithCurveTightness[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.CurveTightness = v }
}

// WithCurveStepCount sets the ellipse sample count.
func WithCurveStepCount[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.CurveStepCount = v }
}

// WithFill sets the fill color. Empty disables filling.
func WithFill[F Float](color string) Option[F] {
	return func(o *Options[F]) { o.Fill = color }
}

// WithFillStyle sets the fill pattern.
func WithFillStyle[F Float](s FillStyle) Option[F] {
	return func(o *Options[F]) { o.FillStyle = s }
}

// WithFillWeight sets the fill stroke width.
func WithFillWeight[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.FillWeight = v }
}

// WithHachureAngle sets the hachure direction in degrees.
func WithHachureAngle[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.HachureAngle = v }
}

// WithHachureGap sets the hachure line spacing.
func WithHachureGap[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.HachureGap = v }
}

// WithSimplification sets the path simplification factor.
func WithSimplification[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.Simplification = v }
}

// WithDashOffset sets the fill dash length.
func WithDashOffset[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.DashOffset = v }
}

// WithDashGap sets the fill dash gap.
func WithDashGap[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.DashGap = v }
}

// WithZigzagOffset sets the chevron size for FillZigZagLine.
func WithZigzagOffset[F Float](v F) Option[F] {
	return func(o *Options[F]) { o.ZigzagOffset = v }
}

// WithSeed sets the random seed. 0 seeds from entropy.
func WithSeed[F Float](seed uint64) Option[F] {
	return func(o *Options[F]) { o.Seed = seed }
}

// WithStrokeLineDash sets the outline dash pattern.
func WithStrokeLineDash[F Float](dash []F, offset F) Option[F] {
	return func(o *Options[F]) {
		o.StrokeLineDash = dash
		o.StrokeLineDashOffset = offset
	}
}

// WithFillLineDash sets the fill stroke dash pattern.
func WithFillLineDash[F Float](dash []F, offset F) Option[F] {
	return func(o *Options[F]) {
		o.FillLineDash = dash
		o.FillLineDashOffset = offset
	}
}

// WithDisableMultiStroke draws outlines in a single pass.
func WithDisableMultiStroke[F Float](v bool) Option[F] {
	return func(o *Options[F]) { o.DisableMultiStroke = v }
}

// WithDisableMultiStrokeFill draws fill strokes in a single pass.
func WithDisableMultiStrokeFill[F Float](v bool) Option[F] {
	return func(o *Options[F]) { o.DisableMultiStrokeFill = v }
}

// WithPreserveVertices pins shape vertices.
func WithPreserveVertices[F Float](v bool) Option[F] {
	return func(o *Options[F]) { o.PreserveVertices = v }
}

// WithFixedDecimalPlaceDigits rounds serialized coordinates.
func WithFixedDecimalPlaceDigits[F Float](digits int) Option[F] {
	return func(o *Options[F]) { o.FixedDecimalPlaceDigits = &digits }
}

// WithRandomizer supplies an explicit random source, overriding Seed.
func WithRandomizer[F Float](r *Randomizer) Option[F] {
	return func(o *Options[F]) { o.Randomizer = r }
}

// random returns the next uniform value in [0, 1), creating the
// randomizer from Seed on first use.
func (o *Options[F]) random() F {
	if o.Randomizer == nil {
		if o.Seed == 0 {
			o.Randomizer = newEntropyRandomizer()
		} else {
			o.Randomizer = NewRandomizer(o.Seed)
		}
	}
	return F(o.Randomizer.Float64())
}

// cloneAlterSeed copies o with the seed advanced by one and a fresh
// randomizer, so overlay passes diverge from the base pass.
func (o Options[F]) cloneAlterSeed() Options[F] {
	c := o
	c.Seed = o.Seed + 1
	c.Randomizer = nil
	return c
}
