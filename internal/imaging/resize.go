package imaging

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Scale fits img into a size x size square, preserving aspect ratio and
// centering the result on a transparent background. Catmull-Rom
// interpolation keeps edges crisp at icon dimensions.
func Scale(img *image.NRGBA, size int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if w == 0 || h == 0 {
		return dst
	}

	scale := float64(size) / float64(w)
	if s := float64(size) / float64(h); s < scale {
		scale = s
	}
	tw := int(float64(w) * scale)
	th := int(float64(h) * scale)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	ox := (size - tw) / 2
	oy := (size - th) / 2

	xdraw.CatmullRom.Scale(dst, image.Rect(ox, oy, ox+tw, oy+th), img, b, xdraw.Over, nil)
	return dst
}

// FitPreview scales img down so that neither dimension exceeds max,
// preserving aspect ratio. Images already within the bound are returned
// unchanged; previews never upscale.
func FitPreview(img *image.NRGBA, max int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	scale := float64(max) / float64(w)
	if s := float64(max) / float64(h); s < scale {
		scale = s
	}
	tw := int(float64(w) * scale)
	th := int(float64(h) * scale)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
