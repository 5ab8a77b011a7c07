// Package util provides common utilities and constants for IconForge.
//
// This package contains:
//   - Size constants (KiB, MiB) for byte calculations
//   - Color constants for UI status messages
//   - Progress/speed/time formatting functions (Statify, Timeify, Sizeify)
//   - The canonical icon resolution list and input size cap
//
// All utilities are stateless and thread-safe.
package util

import "image/color"

// Size constants for byte calculations
const (
	KiB = 1 << 10 // 1024
	MiB = 1 << 20 // 1,048,576
	GiB = 1 << 30 // 1,073,741,824
	TiB = 1 << 40 // 1,099,511,627,776
)

// MaxInputSize is the largest input image file accepted for conversion.
// Larger files are skipped when added to the batch.
const MaxInputSize = 4 * MiB

// IconSizes lists the icon resolutions that can be embedded in a .ico file,
// smallest first.
var IconSizes = []int{16, 32, 48, 64, 128, 256}

// MaxRadius is the upper bound of the corner radius slider. Radii beyond
// half the image dimension are clamped during masking.
const MaxRadius = 512

// Color constants for UI status messages
var (
	WHITE       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	RED         = color.RGBA{0xff, 0x00, 0x00, 0xff}
	GREEN       = color.RGBA{0x00, 0xff, 0x00, 0xff}
	YELLOW      = color.RGBA{0xcc, 0x70, 0x00, 0xff} // Dark amber for better readability
	TRANSPARENT = color.RGBA{0x00, 0x00, 0x00, 0x00}
)
