// IconForge v1.2.0
//
// IconForge converts raster images into Windows .ico files:
//   - PNG, JPG, BMP, GIF, TGA and WebP input
//   - Optional rounded corners (0-512 px radius)
//   - Multiple embedded resolutions (16 through 256)
//   - 32-bit (full transparency) or 8-bit (256-color) output
//   - Batch conversion of whole folders
//
// Build modes:
//   - Default build: GUI + CLI (requires graphics libraries)
//   - CLI-only build: go build -tags cli (no graphics dependencies)

package main

// version is the application version displayed in the window title.
// Format: "vMAJOR.MINOR.PATCH" (e.g., "v1.2.0")
const version = "v1.2.0"

func main() {
	run()
}
