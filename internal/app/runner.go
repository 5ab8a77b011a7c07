package app

import (
	"context"
	"fmt"
	"sync"

	"iconforge/internal/convert"
	"iconforge/internal/errors"
	"iconforge/internal/util"
)

// Reporter implements convert.ProgressReporter for UI integration.
// Unlike UIReporter it stores the reported values itself so widgets can
// poll them, which fits Fyne's binding refresh model.
type Reporter struct {
	mu           sync.RWMutex
	status       string
	progress     float32
	progressInfo string
	canCancel    bool
	cancelled    bool
	updateFn     func() // Called to trigger UI refresh
}

// NewReporter creates a new progress reporter.
func NewReporter(updateFn func()) *Reporter {
	return &Reporter{
		status:   "Ready",
		updateFn: updateFn,
	}
}

// SetStatus implements convert.ProgressReporter.
func (r *Reporter) SetStatus(text string) {
	r.mu.Lock()
	r.status = text
	r.mu.Unlock()
	if r.updateFn != nil {
		r.updateFn()
	}
}

// SetProgress implements convert.ProgressReporter.
func (r *Reporter) SetProgress(fraction float32, info string) {
	r.mu.Lock()
	r.progress = fraction
	r.progressInfo = info
	r.mu.Unlock()
	if r.updateFn != nil {
		r.updateFn()
	}
}

// SetCanCancel implements convert.ProgressReporter.
func (r *Reporter) SetCanCancel(can bool) {
	r.mu.Lock()
	r.canCancel = can
	r.mu.Unlock()
	if r.updateFn != nil {
		r.updateFn()
	}
}

// Update implements convert.ProgressReporter.
func (r *Reporter) Update() {
	if r.updateFn != nil {
		r.updateFn()
	}
}

// IsCancelled implements convert.ProgressReporter.
func (r *Reporter) IsCancelled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cancelled
}

// Cancel marks the operation as cancelled.
func (r *Reporter) Cancel() {
	r.mu.Lock()
	r.cancelled = true
	r.mu.Unlock()
}

// GetStatus returns the current status.
func (r *Reporter) GetStatus() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// GetProgress returns the current progress.
func (r *Reporter) GetProgress() (float32, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.progress, r.progressInfo
}

// GetCanCancel returns whether cancel is allowed.
func (r *Reporter) GetCanCancel() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.canCancel
}

// Reset resets the reporter state.
func (r *Reporter) Reset() {
	r.mu.Lock()
	r.status = "Ready"
	r.progress = 0
	r.progressInfo = ""
	r.canCancel = false
	r.cancelled = false
	r.mu.Unlock()
}

// Runner orchestrates conversion batches for the GUI.
type Runner struct {
	state    *State
	reporter *Reporter
	mu       sync.RWMutex
}

// NewRunner creates a new operation runner.
func NewRunner(state *State, updateFn func()) *Runner {
	return &Runner{
		state:    state,
		reporter: NewReporter(updateFn),
	}
}

// GetReporter returns the progress reporter.
func (r *Runner) GetReporter() *Reporter {
	return r.reporter
}

// Convert runs the batch built from the current state and updates the
// main status line with the outcome. The returned result carries the
// per-file details for the UI; the error is non-nil for cancellation or
// a request that never started.
func (r *Runner) Convert(ctx context.Context) (*convert.Result, error) {
	r.mu.Lock()
	r.state.Working = true
	r.reporter.Reset()
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.state.Working = false
		r.mu.Unlock()
	}()

	req := r.state.BuildRequest(r.reporter)
	res, err := convert.Batch(ctx, req)
	if err != nil {
		if errors.IsCancelled(err) {
			r.state.SetStatus("Operation cancelled", util.WHITE)
		} else {
			r.state.SetStatus(err.Error(), util.RED)
		}
		return res, err
	}

	switch {
	case res.Failed == 0:
		r.state.SetStatus(fmt.Sprintf("Converted %d image(s)", res.Converted), util.GREEN)
	case res.Converted == 0:
		r.state.SetStatus(fmt.Sprintf("All %d conversion(s) failed", res.Failed), util.RED)
	default:
		r.state.SetStatus(
			fmt.Sprintf("Converted %d image(s), %d failed", res.Converted, res.Failed), util.YELLOW)
	}
	return res, nil
}

// Cancel attempts to cancel the current operation.
func (r *Runner) Cancel() {
	r.reporter.Cancel()
}

// IsWorking returns true if an operation is in progress.
func (r *Runner) IsWorking() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Working
}
