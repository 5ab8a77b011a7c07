// Package app provides application state management with optional Fyne data binding support.
package app

import (
	"fyne.io/fyne/v2/data/binding"

	"iconforge/internal/ico"
	"iconforge/internal/util"
)

// BoundProgress provides Fyne data bindings for progress-related UI elements.
// This enables automatic UI updates without manual widget.SetText() calls.
type BoundProgress struct {
	// Progress bar value (0.0 to 1.0)
	Progress binding.Float

	// Progress info text (e.g., "logo.png 48 px")
	ProgressInfo binding.String

	// Status text (e.g., "Converting logo.png...")
	Status binding.String

	// Main status text with color
	MainStatus binding.String

	// Can cancel flag
	CanCancel binding.Bool
}

// NewBoundProgress creates a new BoundProgress with default values.
func NewBoundProgress() *BoundProgress {
	return &BoundProgress{
		Progress:     binding.NewFloat(),
		ProgressInfo: binding.NewString(),
		Status:       binding.NewString(),
		MainStatus:   binding.NewString(),
		CanCancel:    binding.NewBool(),
	}
}

// SetProgress updates the progress binding.
func (b *BoundProgress) SetProgress(fraction float64) {
	_ = b.Progress.Set(fraction)
}

// SetProgressInfo updates the progress info binding.
func (b *BoundProgress) SetProgressInfo(info string) {
	_ = b.ProgressInfo.Set(info)
}

// SetStatus updates the status binding.
func (b *BoundProgress) SetStatus(text string) {
	_ = b.Status.Set(text)
}

// SetMainStatus updates the main status binding.
func (b *BoundProgress) SetMainStatus(text string) {
	_ = b.MainStatus.Set(text)
}

// SetCanCancel updates the can cancel binding.
func (b *BoundProgress) SetCanCancel(can bool) {
	_ = b.CanCancel.Set(can)
}

// Reset resets all bindings to default values.
func (b *BoundProgress) Reset() {
	_ = b.Progress.Set(0)
	_ = b.ProgressInfo.Set("")
	_ = b.Status.Set("Ready")
	_ = b.MainStatus.Set("Ready")
	_ = b.CanCancel.Set(false)
}

// BoundInput provides Fyne data bindings for input-related UI elements.
type BoundInput struct {
	// Input label text
	InputLabel binding.String

	// Output directory display
	OutputDir binding.String
}

// NewBoundInput creates a new BoundInput with default values.
func NewBoundInput() *BoundInput {
	b := &BoundInput{
		InputLabel: binding.NewString(),
		OutputDir:  binding.NewString(),
	}
	_ = b.InputLabel.Set("Drop images or folders into this window")
	return b
}

// BoundOptions provides Fyne data bindings for the conversion options.
type BoundOptions struct {
	Radius    binding.Float
	EightBit  binding.Bool // false means 32-bit
	Separate  binding.Bool
	Overwrite binding.Bool
	Recursive binding.Bool

	// One checkbox binding per entry of util.IconSizes, same order.
	Sizes []binding.Bool
}

// NewBoundOptions creates a new BoundOptions with default values: all
// resolutions checked, 32-bit depth.
func NewBoundOptions() *BoundOptions {
	b := &BoundOptions{
		Radius:    binding.NewFloat(),
		EightBit:  binding.NewBool(),
		Separate:  binding.NewBool(),
		Overwrite: binding.NewBool(),
		Recursive: binding.NewBool(),
	}
	for range util.IconSizes {
		sb := binding.NewBool()
		_ = sb.Set(true)
		b.Sizes = append(b.Sizes, sb)
	}
	return b
}

// BoundState provides all Fyne data bindings for the application.
type BoundState struct {
	Progress *BoundProgress
	Input    *BoundInput
	Options  *BoundOptions
}

// NewBoundState creates a new BoundState with all bindings initialized.
func NewBoundState() *BoundState {
	return &BoundState{
		Progress: NewBoundProgress(),
		Input:    NewBoundInput(),
		Options:  NewBoundOptions(),
	}
}

// SyncFromState copies values from the State to the bindings.
// Call this after modifying State to update bound widgets.
func (b *BoundState) SyncFromState(s *State) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_ = b.Progress.Progress.Set(float64(s.Progress))
	_ = b.Progress.ProgressInfo.Set(s.ProgressInfo)
	_ = b.Progress.Status.Set(s.PopupStatus)
	_ = b.Progress.MainStatus.Set(s.MainStatus)
	_ = b.Progress.CanCancel.Set(s.CanCancel)

	_ = b.Input.InputLabel.Set(s.InputLabel)
	_ = b.Input.OutputDir.Set(s.OutputDir)

	_ = b.Options.Radius.Set(float64(s.Radius))
	_ = b.Options.EightBit.Set(s.Depth == ico.Depth8)
	_ = b.Options.Separate.Set(s.Separate)
	_ = b.Options.Overwrite.Set(s.Overwrite)
	_ = b.Options.Recursive.Set(s.Recursive)
	for i, size := range util.IconSizes {
		_ = b.Options.Sizes[i].Set(s.SizeChecked[size])
	}
}

// SyncToState copies values from the bindings to the State.
// Call this before starting a batch to capture user input.
func (b *BoundState) SyncToState(s *State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	radius, _ := b.Options.Radius.Get()
	s.Radius = int32(radius)

	eightBit, _ := b.Options.EightBit.Get()
	if eightBit {
		s.Depth = ico.Depth8
	} else {
		s.Depth = ico.Depth32
	}

	s.Separate, _ = b.Options.Separate.Get()
	s.Overwrite, _ = b.Options.Overwrite.Get()
	s.Recursive, _ = b.Options.Recursive.Get()
	for i, size := range util.IconSizes {
		s.SizeChecked[size], _ = b.Options.Sizes[i].Get()
	}

	s.OutputDir, _ = b.Input.OutputDir.Get()
}
