package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"

	"iconforge/internal/scan"
	"iconforge/internal/util"
)

// onDrop handles files and folders dropped onto the window. Folder
// expansion runs in a goroutine so large trees do not block the UI.
func (a *App) onDrop(names []string) {
	if len(names) == 0 || a.State.Working || a.State.Scanning {
		return
	}

	a.State.Scanning = true
	a.updateUIState()

	existing := a.batchSnapshot()
	recurse := a.State.Recursive

	go func() {
		accepted, rejections, err := scan.Scan(names, scan.Options{
			Existing: existing,
			Recurse:  recurse,
			Status: func(status string) {
				_ = a.bound.Input.InputLabel.Set(status)
			},
		})

		a.State.Scanning = false
		if err != nil {
			a.State.SetStatus("Failed to scan dropped items", util.RED)
			a.bound.SyncFromState(a.State)
			fyne.Do(func() {
				a.updateUIState()
			})
			return
		}

		a.State.AddFiles(accepted)
		a.bound.SyncFromState(a.State)

		fyne.Do(func() {
			a.fileList.Refresh()
			a.updatePreview()
			a.updateUIState()
			if len(rejections) > 0 {
				lines := make([]string, 0, len(rejections))
				for _, r := range rejections {
					lines = append(lines, fmt.Sprintf("%s: %v", filepath.Base(r.Path), r.Reason))
				}
				a.showRejections(lines)
			}
		})
	}()
}
