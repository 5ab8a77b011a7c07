package imaging

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"
)

// ClampRadius limits a requested corner radius to what the image can
// geometrically carry: half the shorter side. A radius of 0 or below
// means no rounding.
func ClampRadius(radius, width, height int) int {
	if radius <= 0 {
		return 0
	}
	limit := width
	if height < width {
		limit = height
	}
	limit /= 2
	if radius > limit {
		return limit
	}
	return radius
}

// Round applies rounded corners to img by masking its alpha channel with
// an antialiased rounded rectangle. Existing transparency is preserved:
// the mask multiplies into the source alpha rather than replacing it.
// A clamped radius of 0 returns the input unchanged.
func Round(img *image.NRGBA, radius int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	r := ClampRadius(radius, w, h)
	if r == 0 {
		return img
	}

	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(r))
	dc.SetRGB(1, 1, 1)
	dc.Fill()
	mask := dc.AsMask()

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.DrawMask(out, out.Bounds(), img, b.Min, mask, image.Point{}, draw.Over)
	return out
}
