package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"

	"iconforge/internal/convert"
	"iconforge/internal/util"
)

// onClickStart handles the Convert button click.
func (a *App) onClickStart() {
	if !a.State.CanStart() {
		return
	}
	a.bound.SyncToState(a.State)

	// Check for existing outputs unless overwrite is already allowed
	if !a.State.Overwrite {
		var conflicts []string
		for _, out := range convert.OutputPaths(a.State.BuildRequest(nil)) {
			if _, err := os.Stat(out); err == nil {
				conflicts = append(conflicts, out)
			}
		}
		if len(conflicts) > 0 {
			a.showOverwriteModal(conflicts)
			return
		}
	}

	a.startWork(false)
}

// startWork begins the conversion batch. force overrides the overwrite
// check for outputs the user just confirmed.
func (a *App) startWork(force bool) {
	a.State.ShowProgress = true
	a.State.SetCanCancel(true)
	a.cancelled.Store(false)
	if force {
		a.State.Overwrite = true
	}

	a.showProgressModal()

	go func() {
		res, _ := a.runner.Convert(context.Background())

		a.State.ResetAfterOperation()
		// Restore Overwrite to the checkbox value after a forced run
		a.bound.SyncToState(a.State)

		fyne.Do(func() {
			if a.progressModal != nil {
				a.progressModal.Hide()
			}
			a.updateUIState()
			if res != nil {
				a.reportBatchDetails(res)
			}
			a.scheduleStatusReset()
		})
	}()
}

// reportBatchDetails surfaces warnings and per-file failures after a batch.
func (a *App) reportBatchDetails(res *convert.Result) {
	var lines []string
	lines = append(lines, res.Warnings...)
	for _, f := range res.Failures {
		lines = append(lines, fmt.Sprintf("%s: %v", filepath.Base(f.Path), f.Err))
	}
	a.showRejections(lines)
}

// scheduleStatusReset restores the Ready status a few seconds after a
// batch finishes, unless another one started in the meantime.
func (a *App) scheduleStatusReset() {
	if a.statusResetTimer != nil {
		a.statusResetTimer.Stop()
	}
	a.statusResetTimer = time.AfterFunc(4*time.Second, func() {
		if a.runner.IsWorking() {
			return
		}
		a.State.SetStatus("Ready", util.WHITE)
		fyne.Do(func() {
			a.updateUIState()
		})
	})
}

// onReporterUpdate pushes reporter values into the data bindings. It is
// called from the worker goroutine; bindings are thread-safe, widget
// enable state goes through fyne.Do.
func (a *App) onReporterUpdate() {
	rep := a.runner.GetReporter()

	fraction, info := rep.GetProgress()
	_ = a.bound.Progress.Progress.Set(float64(fraction))
	_ = a.bound.Progress.ProgressInfo.Set(info)
	_ = a.bound.Progress.Status.Set(rep.GetStatus())

	can := rep.GetCanCancel()
	fyne.Do(func() {
		if a.cancelButton == nil {
			return
		}
		if can && !a.cancelled.Load() {
			a.cancelButton.Enable()
		} else {
			a.cancelButton.Disable()
		}
	})
}
