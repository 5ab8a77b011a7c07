package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"iconforge/internal/imaging"
)

// showProgressModal shows the progress dialog.
func (a *App) showProgressModal() {
	// Reset bindings for new operation
	_ = a.bound.Progress.Progress.Set(0)
	_ = a.bound.Progress.Status.Set("")

	// Create bound widgets - they auto-update when bindings change
	a.progressBar = widget.NewProgressBarWithData(a.bound.Progress.Progress)
	a.progressBar.Min = 0
	a.progressBar.Max = 1

	// Status shows the current file (e.g., "Converting logo.png...")
	a.progressStatus = widget.NewLabelWithData(a.bound.Progress.Status)

	a.cancelButton = widget.NewButton("Cancel", func() {
		a.cancelled.Store(true)
		a.runner.Cancel()
		a.State.SetCanCancel(false)
		if a.cancelButton != nil {
			a.cancelButton.Disable()
		}
	})

	progressContent := container.NewVBox(
		container.NewBorder(nil, nil, nil, a.cancelButton, a.progressBar),
		a.progressStatus,
	)

	a.progressModal = dialog.NewCustomWithoutButtons("Progress:", progressContent, a.Window)
	a.progressModal.Show()
}

// showOverwriteModal shows the overwrite confirmation dialog. conflicts
// lists the output paths that already exist.
func (a *App) showOverwriteModal(conflicts []string) {
	message := "Output already exists. Overwrite?"
	if len(conflicts) == 1 {
		message = fmt.Sprintf("%s already exists. Overwrite?", filepath.Base(conflicts[0]))
	} else if len(conflicts) > 1 {
		message = fmt.Sprintf("%d output files already exist. Overwrite?", len(conflicts))
	}

	a.overwriteModal = dialog.NewConfirm("Warning:", message, func(overwrite bool) {
		a.State.ShowOverwrite = false
		if overwrite {
			a.startWork(true)
		}
	}, a.Window)
	a.State.ShowOverwrite = true
	a.overwriteModal.Show()
}

// chooseInputFiles opens a file picker filtered to the supported image
// formats and feeds the selection through the same path as a drop.
func (a *App) chooseInputFiles() {
	openDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		a.onDrop([]string{path})
	}, a.Window)
	openDialog.SetFilter(storage.NewExtensionFileFilter(imaging.Extensions))
	openDialog.Resize(fyne.NewSize(600, 450))
	openDialog.Show()
}

// chooseOutputDir opens a folder picker for the output directory.
func (a *App) chooseOutputDir() {
	folderDialog := dialog.NewFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil || list == nil {
			return
		}
		_ = a.bound.Input.OutputDir.Set(list.Path())
		a.bound.SyncToState(a.State)
	}, a.Window)

	// Start where the first input lives
	if file := a.State.SelectedFile(); file != "" {
		uri := storage.NewFileURI(filepath.Dir(file))
		if listable, err := storage.ListerForURI(uri); err == nil {
			folderDialog.SetLocation(listable)
		}
	}

	folderDialog.Resize(fyne.NewSize(600, 450))
	folderDialog.Show()
}

// showRejections reports skipped files after a drop scan.
func (a *App) showRejections(rejections []string) {
	if len(rejections) == 0 {
		return
	}
	items := make([]fyne.CanvasObject, 0, len(rejections))
	for _, r := range rejections {
		l := widget.NewLabel(r)
		l.Truncation = fyne.TextTruncateEllipsis
		items = append(items, l)
	}
	content := container.NewVScroll(container.NewVBox(items...))
	content.SetMinSize(fyne.NewSize(440, 160))
	d := dialog.NewCustom("Skipped files:", "OK", content, a.Window)
	d.Show()
}
