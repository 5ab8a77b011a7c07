package ui

import (
	"image"

	"iconforge/internal/imaging"
)

// previewSize is the edge length of the preview area in the main window.
const previewSize = 256

// renderPreview loads an image and applies the current corner radius,
// scaled down to fit the preview area. The radius is interpreted
// against the source resolution so the preview matches the output.
func renderPreview(path string, radius int) (image.Image, error) {
	img, err := imaging.Decode(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	r := imaging.ClampRadius(radius, b.Dx(), b.Dy())
	return imaging.FitPreview(imaging.Round(img, r), previewSize), nil
}
