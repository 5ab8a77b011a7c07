package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// TooltipButton is a button with a tooltip that shows on hover.
type TooltipButton struct {
	widget.Button
	tooltip string
	popup   *widget.PopUp
}

var _ desktop.Hoverable = (*TooltipButton)(nil)

// NewTooltipButton creates a new button with a tooltip.
func NewTooltipButton(label string, tooltip string, onTapped func()) *TooltipButton {
	b := &TooltipButton{tooltip: tooltip}
	b.Text = label
	b.OnTapped = onTapped
	b.ExtendBaseWidget(b)
	return b
}

// SetTooltip updates the tooltip text.
func (b *TooltipButton) SetTooltip(tooltip string) {
	b.tooltip = tooltip
}

// MouseIn is called when the mouse enters the button - shows tooltip.
func (b *TooltipButton) MouseIn(e *desktop.MouseEvent) {
	if b.tooltip == "" || b.Disabled() {
		return
	}
	c := fyne.CurrentApp().Driver().CanvasForObject(b)
	if c == nil {
		return
	}
	text := canvas.NewText(b.tooltip, theme.Color(theme.ColorNameForeground))
	text.TextSize = theme.CaptionTextSize()
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	content := container.NewStack(bg, container.NewPadded(text))
	b.popup = widget.NewPopUp(content, c)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(b)
	b.popup.ShowAtPosition(fyne.NewPos(pos.X, pos.Y+b.Size().Height+2))
}

// MouseMoved is called when the mouse moves within the button.
func (b *TooltipButton) MouseMoved(e *desktop.MouseEvent) {}

// MouseOut is called when the mouse leaves the button - hides tooltip.
func (b *TooltipButton) MouseOut() {
	if b.popup != nil {
		b.popup.Hide()
		b.popup = nil
	}
}

// TooltipCheckbox is a checkbox with a tooltip that shows on hover.
type TooltipCheckbox struct {
	widget.Check
	tooltip string
	popup   *widget.PopUp
}

var _ desktop.Hoverable = (*TooltipCheckbox)(nil)

// NewTooltipCheckbox creates a new checkbox with a tooltip.
func NewTooltipCheckbox(label string, tooltip string, changed func(bool)) *TooltipCheckbox {
	c := &TooltipCheckbox{tooltip: tooltip}
	c.Text = label
	c.OnChanged = changed
	c.ExtendBaseWidget(c)
	return c
}

// MouseIn is called when the mouse enters the checkbox - shows tooltip.
func (c *TooltipCheckbox) MouseIn(e *desktop.MouseEvent) {
	if c.tooltip == "" || c.Disabled() {
		return
	}
	cv := fyne.CurrentApp().Driver().CanvasForObject(c)
	if cv == nil {
		return
	}
	text := canvas.NewText(c.tooltip, theme.Color(theme.ColorNameForeground))
	text.TextSize = theme.CaptionTextSize()
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	content := container.NewStack(bg, container.NewPadded(text))
	c.popup = widget.NewPopUp(content, cv)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(c)
	c.popup.ShowAtPosition(fyne.NewPos(pos.X, pos.Y+c.Size().Height+2))
}

// MouseMoved is called when the mouse moves within the checkbox.
func (c *TooltipCheckbox) MouseMoved(e *desktop.MouseEvent) {}

// MouseOut is called when the mouse leaves the checkbox - hides tooltip.
func (c *TooltipCheckbox) MouseOut() {
	if c.popup != nil {
		c.popup.Hide()
		c.popup = nil
	}
}

// ColoredLabel is a label with custom text color, used for the main
// status line (white/green/yellow/red).
type ColoredLabel struct {
	widget.BaseWidget
	text  string
	color color.Color
}

// NewColoredLabel creates a new label with custom color.
func NewColoredLabel(text string, col color.Color) *ColoredLabel {
	l := &ColoredLabel{text: text, color: col}
	l.ExtendBaseWidget(l)
	return l
}

// SetText updates the label text.
func (l *ColoredLabel) SetText(text string) {
	l.text = text
	l.Refresh()
}

// SetColor updates the label color.
func (l *ColoredLabel) SetColor(col color.Color) {
	l.color = col
	l.Refresh()
}

// MinSize returns the minimum size needed to display the label.
func (l *ColoredLabel) MinSize() fyne.Size {
	return fyne.MeasureText(l.text, theme.TextSize(), fyne.TextStyle{})
}

// CreateRenderer creates the renderer for the colored label.
func (l *ColoredLabel) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(l.text, l.color)
	text.TextSize = theme.TextSize()
	return &coloredLabelRenderer{label: l, text: text}
}

type coloredLabelRenderer struct {
	label *ColoredLabel
	text  *canvas.Text
}

func (r *coloredLabelRenderer) Layout(size fyne.Size) {
	r.text.Move(fyne.NewPos(0, 0))
}

func (r *coloredLabelRenderer) MinSize() fyne.Size {
	return r.label.MinSize()
}

func (r *coloredLabelRenderer) Refresh() {
	r.text.Text = r.label.text
	r.text.Color = r.label.color
	canvas.Refresh(r.text)
}

func (r *coloredLabelRenderer) Destroy() {}

func (r *coloredLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.text}
}
