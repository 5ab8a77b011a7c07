// Package convert provides the high-level icon conversion pipeline.
//
// The package orchestrates the complete conversion workflow for each input:
//  1. Decode: read and normalize the source image
//  2. Round: mask corners with the requested radius
//  3. Scale: produce one square image per selected resolution
//  4. Encode: assemble the .ico container(s) at the selected bit depth
//
// Batch runs the pipeline over every input file, reporting progress and
// continuing past per-file failures so one broken image does not abort
// the rest of the batch.
package convert

import (
	"context"
	"image"

	"iconforge/internal/ico"
)

// ProgressReporter provides callbacks for UI updates during long-running operations.
// Implementations must be thread-safe as methods may be called from goroutines.
type ProgressReporter interface {
	SetStatus(text string)                     // Update status message (e.g., "Converting photo.png...")
	SetProgress(fraction float32, info string) // Update progress bar (0.0-1.0) and info text
	SetCanCancel(can bool)                     // Enable/disable cancel button
	Update()                                   // Trigger UI refresh
	IsCancelled() bool                         // Check if user requested cancellation
}

// Request contains all parameters needed to convert images into .ico files.
type Request struct {
	// Input files - every path must be a readable image in a supported format
	InputFiles []string

	// OutputDir receives the generated .ico files. Empty means each output
	// is written next to its source image.
	OutputDir string

	// Conversion options
	Radius   int          // corner radius in pixels, 0 disables rounding
	Sizes    []int        // resolutions to embed, each from util.IconSizes
	Depth    ico.BitDepth // 32-bit PNG entries or 8-bit palettized BMP entries
	Separate bool         // write one single-size .ico per resolution instead of one multi-size file
	Overwrite bool        // replace existing output files instead of failing

	// Progress reporting
	Reporter ProgressReporter // UI callback interface (can be nil for headless operation)
}

// Failure records one input file that could not be converted.
type Failure struct {
	Path string
	Err  error
}

// Result summarizes a batch run.
type Result struct {
	Converted int      // input files fully converted
	Failed    int      // input files that errored
	Outputs   []string // paths of all .ico files written
	Failures  []Failure
	Warnings  []string // non-fatal adjustments, e.g. a dropped resolution
}

// operation carries mutable state through one batch run.
type operation struct {
	ctx      context.Context
	reporter ProgressReporter
	total    int64 // total pipeline steps across the batch
	done     int64
}

// step advances the progress bar by one unit of work.
func (op *operation) step(info string) {
	op.done++
	if op.reporter != nil {
		op.reporter.SetProgress(float32(op.done)/float32(op.total), info)
		op.reporter.Update()
	}
}

func (op *operation) setStatus(status string) {
	if op.reporter != nil {
		op.reporter.SetStatus(status)
		op.reporter.Update()
	}
}

// cancelled checks both the context and the reporter's cancel flag.
func (op *operation) cancelled() bool {
	if op.ctx != nil && op.ctx.Err() != nil {
		return true
	}
	if op.reporter != nil {
		return op.reporter.IsCancelled()
	}
	return false
}

// scaled is one resolution of a processed source image.
type scaled struct {
	size int
	img  *image.NRGBA
}
