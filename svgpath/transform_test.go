package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrors(t *testing.T) {
	_, err := Parse("M10 10 X20 20")
	require.Error(t, err)

	_, err = Parse("M10")
	require.Error(t, err)

	p, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestParseImplicitRepetition(t *testing.T) {
	p, err := Parse("M0 0 L 10 10 20 10")
	require.NoError(t, err)
	assert.Equal(t, "M 0 0 L 10 10 L 20 10", p.String())

	p, err = Parse("m5 5 10 10")
	require.NoError(t, err)
	assert.Equal(t, "m 5 5 l 10 10", p.String())
}

func TestScale(t *testing.T) {
	assert.Equal(t, "M 0 0 L 20 20",
		NewTransformer("M0 0 L 10 10").Scale(2, 2).String())

	assert.Equal(t, "M 20 15 C 40 60 80 60 100 15",
		NewTransformer("M10 10 C 20 40 40 40 50 10").Scale(2, 1.5).String())

	assert.Equal(t, "M 20 15 c 20 45 60 45 80 0",
		NewTransformer("M10 10 c 10 30 30 30 40 0").Scale(2, 1.5).String())

	assert.Equal(t, "M 20 15 H 80 h 100",
		NewTransformer("M10 10H40h50").Scale(2, 1.5).String())

	assert.Equal(t, "M 20 15 V 60 v 75",
		NewTransformer("M10 10V40v50").Scale(2, 1.5).String())
}

func TestScaleArc(t *testing.T) {
	assert.Equal(t, "M 80 45 a 72 34 32.04 0 1 40 75",
		NewTransformer("M40 30a20 40 -45 0 1 20 50").Scale(2, 1.5).Round(0).String())

	assert.Equal(t, "M 80 45 A 72 34 32.04 0 1 40 75",
		NewTransformer("M40 30A20 40 -45 0 1 20 50").Scale(2, 1.5).Round(0).String())
}

func TestRotate(t *testing.T) {
	assert.Equal(t, "M 10 10 L 10 15",
		NewTransformer("M10 10L15 10").Rotate(90, 10, 10).Round(0).String())

	assert.Equal(t, "M 10 0 L 20 0",
		NewTransformer("M0 10L0 20").Rotate(-90, 0, 0).Round(0).String())
}

func TestSkew(t *testing.T) {
	// tan(75.96deg) is approximately 4
	assert.Equal(t, "M 25 5 L 95 20",
		NewTransformer("M5 5L15 20").SkewX(75.96).Round(0).String())

	assert.Equal(t, "M 5 25 L 15 80",
		NewTransformer("M5 5L15 20").SkewY(75.96).Round(0).String())
}

func TestMatrix(t *testing.T) {
	assert.Equal(t, "M 20 25 C 55 70 32.5 42.5 62.5 52.5",
		NewTransformer("M5 5 C20 30 10 15 30 15").
			Matrix([6]float64{1.5, 0.5, 0.5, 1.5, 10, 15}).String())

	assert.Equal(t, "M 20 25 c 21 23 22.5 27.5 45 55",
		NewTransformer("M5 5 c10 12 10 15 20 30").
			Matrix([6]float64{1.5, 0.5, 0.5, 1.5, 10, 15}).String())

	assert.Equal(t, "M 5 5 C 20 30 10 15 30 15",
		NewTransformer("M5 5 C20 30 10 15 30 15").
			Matrix([6]float64{1, 0, 0, 1, 0, 0}).String())
}

func TestCombinedTransforms(t *testing.T) {
	assert.Equal(t, "M 100 100 L 120 130 L 140 130",
		NewTransformer("M0 0 L 10 10 20 10").Scale(2, 3).Translate(100, 100).String())

	assert.Equal(t, "M 0 0 L -30 20 L -30 40",
		NewTransformer("M0 0 L 10 10 20 10").Scale(2, 3).Rotate(90, 0, 0).Round(0).String())

	assert.Equal(t, "M 0 0 L 10 10 L 20 10",
		NewTransformer("M0 0 L 10 10 20 10").
			Translate(0, 0).Scale(1, 1).Rotate(0, 10, 10).Round(0).String())
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "M 15 25 C 25 55 45 55 55 25",
		NewTransformer("M10 10 C 20 40 40 40 50 10").Translate(5, 15).String())

	assert.Equal(t, "M 15 25 c 10 30 30 30 40 0",
		NewTransformer("M10 10 c 10 30 30 30 40 0").Translate(5, 15).String())

	assert.Equal(t, "M 20 25 H 50 h 50",
		NewTransformer("M10 10H40h50").Translate(10, 15).String())

	assert.Equal(t, "M 20 25 V 55 v 50",
		NewTransformer("M10 10V40v50").Translate(10, 15).String())

	assert.Equal(t, "M 50 45 a 40 20 45 0 1 20 50",
		NewTransformer("M40 30a20 40 -45 0 1 20 50").Translate(10, 15).Round(0).String())

	assert.Equal(t, "M 50 45 A 40 20 45 0 1 30 65",
		NewTransformer("M40 30A20 40 -45 0 1 20 50").Translate(10, 15).Round(0).String())
}

func TestRound(t *testing.T) {
	assert.Equal(t, "M 10 10 A 13 18 45.5 0 0 16 20",
		NewTransformer("M10 10A12.5 17.5 45.5 0 0 15.5 19.5").Round(0).String())

	assert.Equal(t, "M 10 10 c 10 30 31 30 40 0",
		NewTransformer("M10 10 c 10.12 30.34 30.56 30 40.00 0.12").Round(0).String())

	assert.Equal(t, "M 10.12 10.46 L 20.44 30",
		NewTransformer("M10.123 10.456L20.4351 30.0000").Round(2).String())
}

func TestRoundCarriesErrors(t *testing.T) {
	assert.Equal(t, "M 1 1 l 1 2 l 2 1",
		NewTransformer("M1.2 1.4l1.2 1.4 l1.2 1.4").Round(0).String())

	assert.Equal(t, "M 1 1 H 2 h 2 v 3 h -3 V 2 v -1",
		NewTransformer("M1.2 1.4 H2.4 h1.2 v2.4 h-2.4 V2.4 v-1.2").Round(0).String())

	assert.Equal(t, "M 0 0 Z M 1 0 M 1 1 M 2 1 Z M 2 1",
		NewTransformer("m0.4 0.2zm0.4 0.2m0.4 0.2m0.4 0.2zm0.4 0.2").Round(0).Abs().String())

	assert.Equal(t, "M 0 0 L 0 0 Z M 0 0 L 1 1 Z M 0 0 Z",
		NewTransformer("m.1 .1l.3 .3zm.1 .1l.3 .3zm0 0z").Round(0).Abs().String())
}

func TestDegenerateArcs(t *testing.T) {
	assert.Equal(t, "M 80 60 l 40 100 Z M 80 60 L 40 100 Z",
		NewTransformer("M40 30a0 40 -45 0 1 20 50Z M40 30A20 0 -45 0 1 20 50Z").Scale(2, 2).String())

	assert.Equal(t, "M 80 60 l 0 0",
		NewTransformer("M40 30a20 40 -45 0 1 0 0").Scale(2, 2).String())

	assert.Equal(t, "M 80 60 L 80 60",
		NewTransformer("M40 30A20 40 -45 0 1 40 30").Scale(2, 2).String())

	assert.Equal(t, "M 0 30 l 0 50",
		NewTransformer("M40 30a20 40 -45 0 1 20 50").Scale(0, 1).String())

	assert.Equal(t, "M 40 0 L 20 0",
		NewTransformer("M40 30A20 40 -45 0 1 20 50").Scale(1, 0).String())
}

func TestArcTransforms(t *testing.T) {
	assert.Equal(t, "M -30 40 a 20 40 45 0 1 -50 20",
		NewTransformer("M40 30a20 40 -45 0 1 20 50").Rotate(90, 0, 0).Round(0).String())

	assert.Equal(t, "M -30 40 a 20 40 45 0 1 -50 20",
		NewTransformer("M40 30a20 40 -45 0 1 20 50").
			Matrix([6]float64{0, 1, -1, 0, 0, 0}).Round(0).String())

	assert.Equal(t, "M 30 -40 a 20 40 45 0 1 50 -20",
		NewTransformer("M40 30a20 40 -45 0 1 20 50").Rotate(-90, 0, 0).Round(0).String())

	assert.Equal(t, "M 25 25 A 15 15 0 0 1 50 50",
		NewTransformer("M50 50A30 30 -45 0 1 100 100").Scale(0.5, 0.5).Round(0).String())

	assert.Equal(t, "M 158.7 287.9 A 228.7 113.2 90 1 0 169.3 744.8",
		NewTransformer("M148.7 277.9A228.7 113.2 90 1 0 159.3 734.8").
			Translate(10, 10).Round(1).String())
}

func TestArcSweepFlip(t *testing.T) {
	assert.Equal(t, "M 10 30 A 20 15 90 0 0 30 30",
		NewTransformer("M10 10A20 15 90 0 1 30 10").Scale(1, -1).Translate(0, 40).String())

	assert.Equal(t, "M 30 30 A 20 15 90 0 1 10 30",
		NewTransformer("M10 10A20 15 90 0 1 30 10").Scale(-1, -1).Translate(40, 40).String())
}

func TestRel(t *testing.T) {
	assert.Equal(t, "M 10 10 l 20 20",
		NewTransformer("M10 10 L30 30").Rel().String())

	assert.Equal(t, "m 10 10 l 30 30",
		NewTransformer("m10 10 l30 30").Rel().String())

	assert.Equal(t, "M 10 10 c 10 30 30 30 40 0 c 10 -30 20 -30 40 0",
		NewTransformer("M10 10 C 20 40 40 40 50 10 60 -20 70 -20 90 10").Rel().String())

	assert.Equal(t, "M 10 10 h 30 h 50",
		NewTransformer("M10 10H40h50").Rel().String())

	assert.Equal(t, "M 10 10 v 30 v 50",
		NewTransformer("M10 10V40v50").Rel().String())

	assert.Equal(t, "M 40 30 a 20 40 -45 0 1 20 50",
		NewTransformer("M40 30A20 40 -45 0 1 60 80").Rel().String())

	assert.Equal(t, "M 10 10 l 10 0 l 0 10 z l 0 10 l 10 0 z l -1 -1",
		NewTransformer("M10 10 L20 10 L20 20 Z L10 20 L20 20 z L9 9").Rel().String())
}

func TestKeepsMultipleMoves(t *testing.T) {
	assert.Equal(t, "M 10 10 M 10 100 M 100 100 M 100 10 Z",
		NewTransformer("M 10 10 M 10 100 M 100 100 M 100 10 Z").String())
}

func TestTransformString(t *testing.T) {
	assert.Equal(t, "M 30 10 L 35 15",
		NewTransformer("M10 10 L15 15").Transform("translate(20)").String())

	assert.Equal(t, "M 30 20 L 35 25",
		NewTransformer("M10 10 L15 15").Transform("translate(20, 10)").String())

	assert.Equal(t, "M 30 20 c 15 15 20 10 15 15",
		NewTransformer("M10 10 c15 15, 20 10, 15 15").Transform("translate(20, 10)").String())

	assert.Equal(t, "M 30 20 C 35 25 40 20 35 25",
		NewTransformer("M10 10 C15 15, 20 10, 15 15").Transform("translate(20, 10)").String())

	assert.Equal(t, "M 170 170 l 20 20 l -20 0 l 0 -20",
		NewTransformer("m70 70 l20 20 l-20 0 l0 -20").Transform("translate(100, 100)").String())

	assert.Equal(t, "M 170 170 l 20 20 l -20 0 l 0 -20",
		NewTransformer("m70 70 l20 20 l-20 0 l0 -20").Transform("translate(100, 100)").Rel().String())

	assert.Equal(t, "M 10 10 L 10 15",
		NewTransformer("M10 10L15 10").Transform("rotate(90, 10, 10)").Round(0).String())

	assert.Equal(t, "M 10 0 L 20 0",
		NewTransformer("M0 10L0 20").Transform("rotate(-90)").Round(0).String())

	assert.Equal(t, "M 10 10 L 30 40",
		NewTransformer("M5 5L15 20").Transform("scale(2)").String())

	assert.Equal(t, "M 2.5 7.5 L 15 30",
		NewTransformer("M5 5L30 20").Transform("scale(0.5, 1.5)").String())

	assert.Equal(t, "M 2.5 7.5 c 7.5 22.5 10 15 7.5 22.5",
		NewTransformer("M5 5c15 15, 20 10, 15 15").Transform("scale(.5, 1.5)").String())

	assert.Equal(t, "M 25 5 L 95 20",
		NewTransformer("M5 5L15 20").Transform("skewX(75.96)").Round(0).String())

	assert.Equal(t, "M 5 25 L 15 80",
		NewTransformer("M5 5L15 20").Transform("skewY(75.96)").Round(0).String())
}
