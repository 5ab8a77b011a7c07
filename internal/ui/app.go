// Package ui provides the IconForge graphical user interface using Fyne.
//
// The main window is a single-page layout:
//
//   - Drag-and-drop image/folder selection with a batch list
//   - Live preview of the selected image with corner rounding applied
//   - Corner radius slider (0-512)
//   - Resolution checkboxes (16 through 256)
//   - Bit depth selection (32-bit with transparency or 8-bit palettized)
//   - Separate/overwrite/recursive toggles and output folder selection
//
// The UI state is managed by internal/app.State, which centralizes all
// application state in a thread-safe manner. Conversions run in goroutines
// with progress reported via the ProgressReporter interface.
package ui

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"iconforge/internal/app"
	"iconforge/internal/ico"
	"iconforge/internal/util"
)

// Preference keys, persisted across sessions.
const (
	prefRadius   = "radius"
	prefDepth    = "depth"
	prefSeparate = "separate"
)

// App represents the main UI application.
type App struct {
	FyneApp fyne.App
	Window  fyne.Window
	Version string

	// Application state
	State *app.State

	// Fyne data bindings mirroring State
	bound *app.BoundState

	// Batch orchestration
	runner *app.Runner

	// Cancellation flag (atomic for thread safety across goroutines)
	cancelled atomic.Bool

	// Pending "Ready" status reset after a finished batch
	statusResetTimer *time.Timer

	// Widgets that need updating outside of bindings
	clearButton    *TooltipButton
	fileList       *widget.List
	removeButton   *TooltipButton
	preview        *canvas.Image
	previewLabel   *widget.Label
	radiusSlider   *widget.Slider
	sizeChecks     []*TooltipCheckbox
	depthRadio     *widget.RadioGroup
	separateCheck  *TooltipCheckbox
	overwriteCheck *TooltipCheckbox
	recursiveCheck *TooltipCheckbox
	outputButton   *widget.Button
	startButton    *widget.Button
	statusLabel    *ColoredLabel

	// Progress modal widgets
	progressModal  dialog.Dialog
	progressBar    *widget.ProgressBar
	progressStatus *widget.Label
	cancelButton   *widget.Button
	overwriteModal dialog.Dialog
}

// NewApp creates a new UI application.
func NewApp(version string) *App {
	a := &App{
		Version: version,
		State:   app.NewState(),
		bound:   app.NewBoundState(),
	}
	a.runner = app.NewRunner(a.State, a.onReporterUpdate)
	return a
}

// Run starts the UI application and blocks until the window is closed.
func (a *App) Run() {
	a.FyneApp = fyneapp.NewWithID("io.iconforge.app")
	a.FyneApp.Settings().SetTheme(NewCompactTheme())

	a.Window = a.FyneApp.NewWindow("IconForge " + a.Version[1:])
	if icon := appIcon(); icon != nil {
		a.Window.SetIcon(icon)
	}
	a.Window.Resize(fyne.NewSize(560, 640))
	a.Window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		names := make([]string, 0, len(uris))
		for _, u := range uris {
			names = append(names, u.Path())
		}
		a.onDrop(names)
	})
	a.Window.SetCloseIntercept(func() {
		if !a.State.Working && !a.State.Scanning {
			a.Window.Close()
		}
	})

	a.loadPreferences()
	a.bound.SyncFromState(a.State)
	a.Window.SetContent(a.buildUI())
	a.updateUIState()

	a.Window.ShowAndRun()
}

// loadPreferences restores persisted options into the state.
func (a *App) loadPreferences() {
	prefs := a.FyneApp.Preferences()
	a.State.Radius = int32(prefs.IntWithFallback(prefRadius, 0))
	if ico.BitDepth(prefs.IntWithFallback(prefDepth, int(ico.Depth32))) == ico.Depth8 {
		a.State.Depth = ico.Depth8
	}
	a.State.Separate = prefs.BoolWithFallback(prefSeparate, false)
}

// savePreferences persists the current options.
func (a *App) savePreferences() {
	prefs := a.FyneApp.Preferences()
	prefs.SetInt(prefRadius, int(a.State.Radius))
	prefs.SetInt(prefDepth, int(a.State.Depth))
	prefs.SetBool(prefSeparate, a.State.Separate)
}

// buildUI assembles the main window layout.
func (a *App) buildUI() fyne.CanvasObject {
	return container.NewBorder(
		a.buildInputSection(), // top
		a.buildActionSection(),
		nil, nil,
		container.NewBorder(
			nil, a.buildOptionsSection(),
			nil, nil,
			a.buildFilesSection(),
		),
	)
}

// buildInputSection builds the input label row with the Add and Clear buttons.
func (a *App) buildInputSection() fyne.CanvasObject {
	inputLabel := widget.NewLabelWithData(a.bound.Input.InputLabel)
	inputLabel.Truncation = fyne.TextTruncateEllipsis

	addButton := NewTooltipButton("Add", "Add images to the batch", func() {
		a.chooseInputFiles()
	})
	a.clearButton = NewTooltipButton("Clear", "Clear all input files and reset options", func() {
		a.resetUI()
	})

	return container.NewBorder(nil, nil, nil, container.NewHBox(addButton, a.clearButton), inputLabel)
}

// buildFilesSection builds the batch list and the preview pane.
func (a *App) buildFilesSection() fyne.CanvasObject {
	a.fileList = widget.NewList(
		func() int {
			return a.State.FileCount()
		},
		func() fyne.CanvasObject {
			l := widget.NewLabel("image")
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			files := a.batchSnapshot()
			if i >= 0 && int(i) < len(files) {
				o.(*widget.Label).SetText(filepath.Base(files[i]))
			}
		},
	)
	a.fileList.OnSelected = func(i widget.ListItemID) {
		a.State.Select(int(i))
		a.updatePreview()
		a.updateUIState()
	}

	a.removeButton = NewTooltipButton("Remove", "Remove the selected image from the batch", func() {
		a.onRemoveSelected()
	})

	a.preview = canvas.NewImageFromImage(nil)
	a.preview.FillMode = canvas.ImageFillContain
	a.preview.SetMinSize(fyne.NewSize(previewSize, previewSize))

	a.previewLabel = widget.NewLabel("")
	a.previewLabel.Alignment = fyne.TextAlignCenter

	previewPane := container.NewStack(a.preview, a.previewLabel)
	listPane := container.NewBorder(nil, a.removeButton, nil, nil, a.fileList)

	split := container.NewHSplit(listPane, previewPane)
	split.Offset = 0.45
	return split
}

// buildOptionsSection builds the radius slider, resolution checkboxes,
// depth selection, toggles and output folder row.
func (a *App) buildOptionsSection() fyne.CanvasObject {
	radiusValue := widget.NewLabel(fmt.Sprintf("%d px", a.State.Radius))
	a.radiusSlider = widget.NewSlider(0, float64(util.MaxRadius))
	a.radiusSlider.Step = 1
	a.radiusSlider.Value = float64(a.State.Radius)
	a.radiusSlider.OnChanged = func(value float64) {
		_ = a.bound.Options.Radius.Set(value)
		radiusValue.SetText(fmt.Sprintf("%d px", int(value)))
	}
	a.radiusSlider.OnChangeEnded = func(value float64) {
		a.bound.SyncToState(a.State)
		a.savePreferences()
		a.updatePreview()
	}
	radiusRow := container.NewBorder(nil, nil, widget.NewLabel("Corner radius:"), radiusValue, a.radiusSlider)

	sizeRow := make([]fyne.CanvasObject, 0, len(util.IconSizes))
	a.sizeChecks = make([]*TooltipCheckbox, len(util.IconSizes))
	for i, size := range util.IconSizes {
		i, size := i, size
		check := NewTooltipCheckbox(util.SizeLabel(size),
			fmt.Sprintf("Embed a %d x %d resolution in the output", size, size),
			func(checked bool) {
				_ = a.bound.Options.Sizes[i].Set(checked)
				a.bound.SyncToState(a.State)
				a.updateUIState()
			})
		check.SetChecked(a.State.SizeChecked[size])
		a.sizeChecks[i] = check
		sizeRow = append(sizeRow, check)
	}
	sizeGrid := container.NewGridWithColumns(3, sizeRow...)

	a.depthRadio = widget.NewRadioGroup([]string{ico.Depth32.String(), ico.Depth8.String()}, func(selected string) {
		_ = a.bound.Options.EightBit.Set(selected == ico.Depth8.String())
		a.bound.SyncToState(a.State)
		a.savePreferences()
	})
	a.depthRadio.Horizontal = true
	a.depthRadio.SetSelected(a.State.Depth.String())

	a.separateCheck = NewTooltipCheckbox("Separate files", "Save each resolution as its own name_SIZE.ico", func(checked bool) {
		_ = a.bound.Options.Separate.Set(checked)
		a.bound.SyncToState(a.State)
		a.savePreferences()
	})
	a.separateCheck.SetChecked(a.State.Separate)

	a.overwriteCheck = NewTooltipCheckbox("Overwrite", "Replace existing .ico files without asking", func(checked bool) {
		_ = a.bound.Options.Overwrite.Set(checked)
		a.bound.SyncToState(a.State)
	})

	a.recursiveCheck = NewTooltipCheckbox("Recursive", "Descend into subfolders of dropped folders", func(checked bool) {
		_ = a.bound.Options.Recursive.Set(checked)
		a.bound.SyncToState(a.State)
	})

	toggles := container.NewGridWithColumns(3, a.separateCheck, a.overwriteCheck, a.recursiveCheck)

	outputDisplay := widget.NewEntryWithData(a.bound.Input.OutputDir)
	outputDisplay.Disable()
	outputDisplay.SetPlaceHolder("Next to each source image")
	a.outputButton = widget.NewButton("Change", func() {
		a.chooseOutputDir()
	})
	resetOutput := widget.NewButton("Reset", func() {
		_ = a.bound.Input.OutputDir.Set("")
		a.bound.SyncToState(a.State)
	})
	outputRow := container.NewBorder(nil, nil,
		widget.NewLabel("Save to:"),
		container.NewHBox(a.outputButton, resetOutput),
		outputDisplay,
	)

	return container.NewVBox(
		widget.NewSeparator(),
		radiusRow,
		widget.NewLabel("Resolutions:"),
		sizeGrid,
		container.NewBorder(nil, nil, widget.NewLabel("Depth:"), nil, a.depthRadio),
		toggles,
		outputRow,
	)
}

// buildActionSection builds the Convert button and the status line.
func (a *App) buildActionSection() fyne.CanvasObject {
	a.startButton = widget.NewButton(a.State.StartLabel, func() {
		a.onClickStart()
	})
	a.startButton.Importance = widget.HighImportance

	a.statusLabel = NewColoredLabel(a.State.MainStatus, a.State.MainStatusColor)

	return container.NewVBox(
		widget.NewSeparator(),
		a.startButton,
		container.NewCenter(a.statusLabel),
	)
}

// batchSnapshot returns a copy of the current file batch.
func (a *App) batchSnapshot() []string {
	req := a.State.BuildRequest(nil)
	return req.InputFiles
}

// onRemoveSelected removes the list selection from the batch.
func (a *App) onRemoveSelected() {
	sel := a.selectedIndex()
	if sel < 0 {
		return
	}
	a.State.RemoveFile(sel)
	a.bound.SyncFromState(a.State)
	a.fileList.UnselectAll()
	a.fileList.Refresh()
	a.updatePreview()
	a.updateUIState()
}

func (a *App) selectedIndex() int {
	if a.State.SelectedFile() == "" {
		return -1
	}
	files := a.batchSnapshot()
	for i, f := range files {
		if f == a.State.SelectedFile() {
			return i
		}
	}
	return -1
}

// updatePreview re-renders the preview pane for the current selection.
// Decoding happens off the UI thread.
func (a *App) updatePreview() {
	path := a.State.SelectedFile()
	if path == "" {
		a.preview.Image = nil
		a.preview.Refresh()
		a.previewLabel.SetText("")
		return
	}
	radius := int(a.State.Radius)

	go func() {
		img, err := renderPreview(path, radius)
		fyne.Do(func() {
			if err != nil {
				a.preview.Image = nil
				a.preview.Refresh()
				a.previewLabel.SetText("Format error")
				return
			}
			a.previewLabel.SetText("")
			a.preview.Image = img
			a.preview.Refresh()
		})
	}()
}

// updateUIState refreshes enable/disable state and the status line.
func (a *App) updateUIState() {
	hasFiles := a.State.FileCount() > 0

	if hasFiles && !a.State.Scanning && !a.State.Working {
		a.clearButton.Enable()
	} else {
		a.clearButton.Disable()
	}

	if a.selectedIndex() >= 0 && !a.State.Working {
		a.removeButton.Enable()
	} else {
		a.removeButton.Disable()
	}

	if a.State.CanStart() && !a.State.Scanning {
		a.startButton.Enable()
	} else {
		a.startButton.Disable()
	}

	a.statusLabel.SetText(a.State.MainStatus)
	a.statusLabel.SetColor(a.State.MainStatusColor)
	a.fileList.Refresh()
}

// resetUI clears the batch and restores default options.
func (a *App) resetUI() {
	a.State.Reset()
	a.loadPreferences()
	a.bound.SyncFromState(a.State)

	a.fileList.UnselectAll()
	a.radiusSlider.SetValue(float64(a.State.Radius))
	for i, size := range util.IconSizes {
		a.sizeChecks[i].SetChecked(a.State.SizeChecked[size])
	}
	a.depthRadio.SetSelected(a.State.Depth.String())
	a.separateCheck.SetChecked(a.State.Separate)
	a.overwriteCheck.SetChecked(false)
	a.recursiveCheck.SetChecked(false)
	a.updatePreview()
	a.updateUIState()
}
