package rough

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// rasterizeOps replays an op list into a rasterizer.
func rasterizeOps[F Float](r *vector.Rasterizer, ops []Op[F]) {
	var started bool
	for _, op := range ops {
		d := op.Data
		switch op.Op {
		case OpMove:
			r.MoveTo(float32(d[0]), float32(d[1]))
			started = true
		case OpLineTo:
			if !started {
				r.MoveTo(float32(d[0]), float32(d[1]))
				started = true
				continue
			}
			r.LineTo(float32(d[0]), float32(d[1]))
		case OpBCurveTo:
			if !started {
				r.MoveTo(float32(d[4]), float32(d[5]))
				started = true
				continue
			}
			r.CubeTo(
				float32(d[0]), float32(d[1]),
				float32(d[2]), float32(d[3]),
				float32(d[4]), float32(d[5]))
		}
	}
}

// RasterizeOpSet renders one op set into an alpha mask of the given
// size. Open op sets are rasterized with their implicit closing edge,
// so the mask is a coverage map rather than a stroked rendition.
func RasterizeOpSet[F Float](set OpSet[F], width, height int) *image.Alpha {
	r := vector.NewRasterizer(width, height)
	rasterizeOps(r, set.Ops)
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Rasterize composites all of a drawable's op sets into an RGBA image,
// fills first, using each set's color from the drawable options.
func Rasterize[F Float](d Drawable[F], width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, set := range d.Sets {
		c := d.Options.Stroke
		if set.Type != OpSetPath {
			c = d.Options.Fill
		}
		if c == "" {
			continue
		}
		mask := RasterizeOpSet(set, width, height)
		src := image.NewUniform(parseColor(c))
		draw.DrawMask(dst, dst.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
	}
	return dst
}

// parseColor parses #rgb, #rrggbb and #rrggbbaa hex colors. Anything
// else renders as opaque black.
func parseColor(s string) color.Color {
	if len(s) == 0 || s[0] != '#' {
		Logger().Debug("rough: unrecognized color, using black", "value", s)
		return color.Black
	}
	hex := s[1:]
	digit := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	pair := func(i int) (uint8, bool) {
		hi, ok1 := digit(hex[i])
		lo, ok2 := digit(hex[i+1])
		return hi<<4 | lo, ok1 && ok2
	}
	switch len(hex) {
	case 3:
		r, ok1 := digit(hex[0])
		g, ok2 := digit(hex[1])
		b, ok3 := digit(hex[2])
		if ok1 && ok2 && ok3 {
			return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}
		}
	case 6:
		r, ok1 := pair(0)
		g, ok2 := pair(2)
		b, ok3 := pair(4)
		if ok1 && ok2 && ok3 {
			return color.NRGBA{R: r, G: g, B: b, A: 0xff}
		}
	case 8:
		r, ok1 := pair(0)
		g, ok2 := pair(2)
		b, ok3 := pair(4)
		a, ok4 := pair(6)
		if ok1 && ok2 && ok3 && ok4 {
			return color.NRGBA{R: r, G: g, B: b, A: a}
		}
	}
	return color.Black
}
