package rough

import (
	"image/color"
	"testing"
)

func TestRasterizeOpSet(t *testing.T) {
	g := NewGenerator(WithFill[float64]("#000"), WithFillStyle[float64](FillSolid))
	d := g.Rectangle(10, 10, 80, 80)

	mask := RasterizeOpSet(d.Sets[0], 100, 100)
	if mask.Bounds().Dx() != 100 || mask.Bounds().Dy() != 100 {
		t.Fatalf("mask bounds = %v", mask.Bounds())
	}

	covered := 0
	for _, a := range mask.Pix {
		if a > 0 {
			covered++
		}
	}
	// a sketchy 80x80 square fill should cover a few thousand pixels
	if covered < 4000 {
		t.Errorf("only %d pixels covered", covered)
	}
}

func TestRasterize(t *testing.T) {
	g := NewGenerator(
		WithSeed[float64](11),
		WithStroke[float64]("#ff0000"),
		WithFill[float64]("#0000ff"),
		WithFillStyle[float64](FillSolid),
	)
	img := Rasterize(g.Rectangle(5, 5, 50, 50), 64, 64)

	var reds, blues int
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			r, _, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			if r > b {
				reds++
			} else if b > r {
				blues++
			}
		}
	}
	if reds == 0 {
		t.Error("no stroke pixels rendered")
	}
	if blues == 0 {
		t.Error("no fill pixels rendered")
	}
}

func TestRasterizeEmptyDrawable(t *testing.T) {
	img := Rasterize(Drawable[float64]{}, 16, 16)
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatal("empty drawable produced pixels")
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.NRGBA
	}{
		{"short hex", "#f00", color.NRGBA{R: 0xff, A: 0xff}},
		{"long hex", "#00ff00", color.NRGBA{G: 0xff, A: 0xff}},
		{"hex with alpha", "#0000ff80", color.NRGBA{B: 0xff, A: 0x80}},
		{"white", "#ffffff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseColor(tt.in)
			if got != tt.want {
				t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorFallback(t *testing.T) {
	if got := parseColor("tomato"); got != color.Black {
		t.Errorf("parseColor fallback = %v, want black", got)
	}
}
