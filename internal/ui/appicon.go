package ui

import (
	"bytes"
	"image/color"
	"image/png"

	"fyne.io/fyne/v2"
	"github.com/fogleman/gg"
)

// appIcon renders the window icon at runtime: a blue gradient rounded
// square holding a simplified image symbol (mountain range and sun).
func appIcon() fyne.Resource {
	const size = 64
	dc := gg.NewContext(size, size)

	grad := gg.NewLinearGradient(0, 0, 0, size)
	grad.AddColorStop(0, color.RGBA{R: 0x4a, G: 0x90, B: 0xe2, A: 0xff})
	grad.AddColorStop(1, color.RGBA{R: 0x00, G: 0x7a, B: 0xcc, A: 0xff})
	dc.SetFillStyle(grad)
	dc.DrawRoundedRectangle(0, 0, size, size, 10)
	dc.Fill()

	// Mountain shape
	dc.MoveTo(15, 50)
	dc.LineTo(28, 35)
	dc.LineTo(38, 45)
	dc.LineTo(50, 25)
	dc.LineTo(50, 50)
	dc.ClosePath()
	dc.SetRGBA255(255, 255, 255, 70)
	dc.FillPreserve()
	dc.SetRGBA255(255, 255, 255, 200)
	dc.SetLineWidth(1)
	dc.Stroke()

	// Sun
	dc.SetHexColor("#ffeb3b")
	dc.DrawCircle(42, 22, 5)
	dc.Fill()

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil
	}
	return fyne.NewStaticResource("iconforge.png", buf.Bytes())
}
