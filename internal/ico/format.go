// Package ico reads and writes Windows .ico icon files.
// This is format-critical code - changes here directly affect whether
// Windows Explorer and other consumers accept the generated icons.
package ico

// ICO container constants
const (
	FileHeaderSize = 6  // ICONDIR: reserved(2) + type(2) + count(2)
	DirEntrySize   = 16 // ICONDIRENTRY
	TypeIcon       = 1  // image type for .ico (cursors use 2)
	MaxEntryPixels = 256
)

// BMP sub-format constants for non-PNG entries
const (
	bmpInfoHeaderSize = 40 // BITMAPINFOHEADER
	bmpPaletteColors  = 256
	bmpPaletteSize    = bmpPaletteColors * 4 // BGRA quads
)

// BitDepth selects how entries are stored inside the container.
type BitDepth int

const (
	// Depth32 stores entries as embedded PNG, preserving full 8-bit
	// alpha. Required for 256-pixel entries.
	Depth32 BitDepth = 32
	// Depth8 stores entries as palettized BMP with a 256-color palette
	// and a 1-bit transparency mask, for legacy consumers.
	Depth8 BitDepth = 8
)

// Valid reports whether d is a supported bit depth.
func (d BitDepth) Valid() bool {
	return d == Depth32 || d == Depth8
}

func (d BitDepth) String() string {
	switch d {
	case Depth32:
		return "32-bit"
	case Depth8:
		return "8-bit"
	default:
		return "unknown"
	}
}

// Entry describes one directory entry of an icon file.
type Entry struct {
	Width    int    // pixel width, 1-256
	Height   int    // pixel height, 1-256
	BitCount int    // bits per pixel as declared in the directory
	Size     uint32 // stored image data size in bytes
	Offset   uint32 // image data offset from the start of the file
	PNG      bool   // true if the entry is an embedded PNG
}

// sizeByte encodes a pixel dimension for an ICONDIRENTRY, where the
// byte value 0 means 256.
func sizeByte(n int) byte {
	if n >= MaxEntryPixels {
		return 0
	}
	return byte(n)
}

// entryPixels decodes an ICONDIRENTRY dimension byte.
func entryPixels(b byte) int {
	if b == 0 {
		return MaxEntryPixels
	}
	return int(b)
}

// bmpRowSize returns the padded byte length of one row at the given
// bits per pixel. BMP rows are aligned to 4-byte boundaries.
func bmpRowSize(bitsPerPixel, width int) int {
	return ((bitsPerPixel*width + 31) / 32) * 4
}
