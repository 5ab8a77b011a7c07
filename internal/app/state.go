// Package app provides centralized application state and operation orchestration.
//
// This package serves two main purposes:
//
//  1. State Management (state.go):
//     The State struct centralizes all UI state variables: the file batch,
//     conversion options, progress tracking, and status display. All state
//     access is thread-safe via sync.RWMutex.
//
//  2. Progress Reporting (reporter.go, runner.go):
//     The reporters implement convert.ProgressReporter to bridge between the
//     conversion pipeline and the UI. They translate operation status updates
//     into UI state changes and trigger redraws.
//
// This separation keeps the pipeline in internal/convert UI-agnostic while
// still providing rich progress feedback.
package app

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sync"

	"iconforge/internal/convert"
	"iconforge/internal/ico"
	"iconforge/internal/util"
)

// Version is the application version string.
const Version = "v1.2.0"

// State holds the application state that persists across operations.
type State struct {
	mu sync.RWMutex

	// Operation flags
	Working  bool // Conversion in progress
	Scanning bool // Scanning dropped folders

	// Modal state
	ShowOverwrite bool
	ShowProgress  bool

	// Input batch
	Files      []string // accepted input images, in add order
	Selected   int      // index into Files shown in the preview, -1 if none
	InputLabel string

	// Output
	OutputDir string // empty means next to each source

	// Conversion options
	Radius      int32        // corner radius slider value
	SizeChecked map[int]bool // resolution -> selected, keyed by util.IconSizes
	Depth       ico.BitDepth
	Separate    bool // one single-size .ico per resolution
	Overwrite   bool
	Recursive   bool // descend into dropped folders

	// Status
	StartLabel      string
	MainStatus      string
	MainStatusColor color.RGBA
	PopupStatus     string

	// Progress
	Progress     float32
	ProgressInfo string
	CanCancel    bool
}

// NewState creates a new application state with default values: all
// resolutions selected, 32-bit depth, no rounding.
func NewState() *State {
	s := &State{
		Selected:        -1,
		InputLabel:      "Drop images or folders into this window",
		StartLabel:      "Convert",
		MainStatus:      "Ready",
		MainStatusColor: util.WHITE,
		Depth:           ico.Depth32,
		SizeChecked:     make(map[int]bool, len(util.IconSizes)),
	}
	for _, size := range util.IconSizes {
		s.SizeChecked[size] = true
	}
	return s
}

// Reset clears the state to initial values (full reset for Clear button).
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Working = false
	s.Scanning = false
	s.ShowOverwrite = false
	s.ShowProgress = false
	s.CanCancel = false

	s.Files = nil
	s.Selected = -1
	s.InputLabel = "Drop images or folders into this window"
	s.OutputDir = ""

	s.Radius = 0
	for _, size := range util.IconSizes {
		s.SizeChecked[size] = true
	}
	s.Depth = ico.Depth32
	s.Separate = false
	s.Overwrite = false
	s.Recursive = false

	s.StartLabel = "Convert"
	s.MainStatus = "Ready"
	s.MainStatusColor = util.WHITE
	s.PopupStatus = ""
	s.Progress = 0
	s.ProgressInfo = ""
}

// ResetAfterOperation resets transient state after a batch finishes.
func (s *State) ResetAfterOperation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Working = false
	s.ShowProgress = false
	s.CanCancel = false
	s.Progress = 0
	s.ProgressInfo = ""
}

// AddFiles appends accepted paths to the batch and updates the input
// label. The first added file becomes the preview selection.
func (s *State) AddFiles(paths []string) {
	if len(paths) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Files = append(s.Files, paths...)
	if s.Selected < 0 {
		s.Selected = 0
	}
	s.updateInputLabelLocked()
}

// RemoveFile drops the file at index i from the batch.
func (s *State) RemoveFile(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.Files) {
		return
	}
	s.Files = append(s.Files[:i], s.Files[i+1:]...)
	switch {
	case len(s.Files) == 0:
		s.Selected = -1
	case s.Selected >= len(s.Files):
		s.Selected = len(s.Files) - 1
	}
	s.updateInputLabelLocked()
}

func (s *State) updateInputLabelLocked() {
	switch len(s.Files) {
	case 0:
		s.InputLabel = "Drop images or folders into this window"
	case 1:
		s.InputLabel = filepath.Base(s.Files[0])
	default:
		s.InputLabel = fmt.Sprintf("%d images selected", len(s.Files))
	}
}

// Select sets the preview selection.
func (s *State) Select(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= -1 && i < len(s.Files) {
		s.Selected = i
	}
}

// SelectedFile returns the path shown in the preview, or "" if none.
func (s *State) SelectedFile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Selected < 0 || s.Selected >= len(s.Files) {
		return ""
	}
	return s.Files[s.Selected]
}

// FileCount returns the number of files in the batch.
func (s *State) FileCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Files)
}

// ToggleSize flips the selection of one resolution.
func (s *State) ToggleSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SizeChecked[size] = !s.SizeChecked[size]
}

// SelectedSizes returns the checked resolutions, smallest first.
func (s *State) SelectedSizes() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sizes []int
	for _, size := range util.IconSizes {
		if s.SizeChecked[size] {
			sizes = append(sizes, size)
		}
	}
	return sizes
}

// CanStart returns true if a conversion can be started: at least one
// input file and at least one resolution selected.
func (s *State) CanStart() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.Files) == 0 || s.Working {
		return false
	}
	for _, size := range util.IconSizes {
		if s.SizeChecked[size] {
			return true
		}
	}
	return false
}

// SetStatus updates the main status display.
func (s *State) SetStatus(text string, c color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MainStatus = text
	s.MainStatusColor = c
}

// SetPopupStatus updates the popup status display.
func (s *State) SetPopupStatus(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PopupStatus = text
}

// SetProgress updates the progress display.
func (s *State) SetProgress(fraction float32, info string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Progress = fraction
	s.ProgressInfo = info
}

// SetCanCancel updates whether cancel is allowed.
func (s *State) SetCanCancel(can bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CanCancel = can
}

// BuildRequest snapshots the current options into a conversion request.
func (s *State) BuildRequest(reporter convert.ProgressReporter) *convert.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sizes []int
	for _, size := range util.IconSizes {
		if s.SizeChecked[size] {
			sizes = append(sizes, size)
		}
	}
	files := make([]string, len(s.Files))
	copy(files, s.Files)

	return &convert.Request{
		InputFiles: files,
		OutputDir:  s.OutputDir,
		Radius:     int(s.Radius),
		Sizes:      sizes,
		Depth:      s.Depth,
		Separate:   s.Separate,
		Overwrite:  s.Overwrite,
		Reporter:   reporter,
	}
}
