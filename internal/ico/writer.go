package ico

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/png"
	"io"

	"iconforge/internal/errors"
)

// Writer assembles a multi-resolution icon file. Images are added
// smallest first or in any order; the directory is written in the
// order they were added.
type Writer struct {
	w      io.Writer
	depth  BitDepth
	images []*image.NRGBA
}

// NewWriter creates an icon writer for the given output stream. All
// entries share the same bit depth.
func NewWriter(w io.Writer, depth BitDepth) *Writer {
	return &Writer{w: w, depth: depth}
}

// Add queues a pre-scaled image as one entry of the icon. The image must
// be square and no larger than 256 pixels; 256-pixel entries additionally
// require 32-bit depth because the directory cannot describe a larger
// palettized bitmap.
func (w *Writer) Add(img *image.NRGBA) error {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return fmt.Errorf("entry %dx%d: %w", b.Dx(), b.Dy(), errors.ErrInvalidSize)
	}
	if b.Dx() > MaxEntryPixels {
		return fmt.Errorf("entry %dx%d: %w", b.Dx(), b.Dy(), errors.ErrImageTooBig)
	}
	if b.Dx() == MaxEntryPixels && w.depth == Depth8 {
		return fmt.Errorf("256-pixel entry requires 32-bit depth: %w", errors.ErrInvalidDepth)
	}
	w.images = append(w.images, img)
	return nil
}

// Flush writes the complete icon file: ICONDIR, the ICONDIRENTRY array,
// then all image data blocks.
//
// File layout:
//   - ICONDIR:       6 bytes (reserved=0, type=1, count)
//   - ICONDIRENTRY:  16 bytes per entry (dimensions, colors, bpp, size, offset)
//   - image data:    PNG streams (32-bit) or headerless BMPs (8-bit)
//
// The 8-bit BMP block is a BITMAPINFOHEADER with doubled height, a
// 256-color BGRA palette, bottom-up 8-bit index rows, then a bottom-up
// 1-bit AND mask, all rows padded to 4 bytes.
func (w *Writer) Flush() error {
	if len(w.images) == 0 {
		return errors.ErrNoIconImages
	}
	if !w.depth.Valid() {
		return errors.ErrInvalidDepth
	}

	blocks := make([][]byte, len(w.images))
	for i, img := range w.images {
		var (
			data []byte
			err  error
		)
		if w.depth == Depth32 {
			data, err = encodePNG(img)
		} else {
			data, err = encodeBMP8(img)
		}
		if err != nil {
			return fmt.Errorf("encode entry %d: %w", i, err)
		}
		blocks[i] = data
	}

	if err := binary.Write(w.w, binary.LittleEndian, struct {
		Reserved uint16
		Type     uint16
		Count    uint16
	}{0, TypeIcon, uint16(len(w.images))}); err != nil {
		return fmt.Errorf("write icon directory: %w", err)
	}

	offset := uint32(FileHeaderSize + DirEntrySize*len(w.images))
	for i, img := range w.images {
		side := img.Bounds().Dx()
		entry := struct {
			Width      byte
			Height     byte
			ColorCount byte
			Reserved   byte
			Planes     uint16
			BitCount   uint16
			BytesInRes uint32
			Offset     uint32
		}{
			Width:      sizeByte(side),
			Height:     sizeByte(side),
			ColorCount: 0, // 0 means 256+ colors for both depths
			Planes:     1,
			BitCount:   uint16(w.depth),
			BytesInRes: uint32(len(blocks[i])),
			Offset:     offset,
		}
		if err := binary.Write(w.w, binary.LittleEndian, entry); err != nil {
			return fmt.Errorf("write directory entry %d: %w", i, err)
		}
		offset += uint32(len(blocks[i]))
	}

	for i, data := range blocks {
		if _, err := w.w.Write(data); err != nil {
			return fmt.Errorf("write image data %d: %w", i, err)
		}
	}
	return nil
}

// Encode writes all images as one icon file at the given depth. It is
// the single-call convenience form of NewWriter/Add/Flush.
func Encode(w io.Writer, images []*image.NRGBA, depth BitDepth) error {
	iw := NewWriter(w, depth)
	for _, img := range images {
		if err := iw.Add(img); err != nil {
			return err
		}
	}
	return iw.Flush()
}

func encodePNG(img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeBMP8 produces a headerless 8-bit BMP block: BITMAPINFOHEADER,
// 256-color palette, index rows, AND mask. Colors are reduced to the
// Plan 9 palette with Floyd-Steinberg dithering; pixels with alpha
// below 128 become transparent in the AND mask.
func encodeBMP8(img *image.NRGBA) ([]byte, error) {
	b := img.Bounds()
	side := b.Dx()

	pal := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pal, b, img, image.Point{})

	xorRow := bmpRowSize(8, side)
	andRow := bmpRowSize(1, side)
	imageSize := (xorRow + andRow) * side

	buf := bytes.NewBuffer(make([]byte, 0, bmpInfoHeaderSize+bmpPaletteSize+imageSize))

	if err := binary.Write(buf, binary.LittleEndian, struct {
		Size          uint32
		Width         int32
		Height        int32 // doubled: XOR plus AND mask
		Planes        uint16
		BitCount      uint16
		Compression   uint32
		SizeImage     uint32
		XPelsPerMeter int32
		YPelsPerMeter int32
		ColorsUsed    uint32
		ColorsImp     uint32
	}{
		Size:       bmpInfoHeaderSize,
		Width:      int32(side),
		Height:     int32(side * 2),
		Planes:     1,
		BitCount:   8,
		SizeImage:  uint32(imageSize),
		ColorsUsed: bmpPaletteColors,
	}); err != nil {
		return nil, err
	}

	// Palette as BGRA quads, reserved byte zero.
	for i := 0; i < bmpPaletteColors; i++ {
		r, g, bl, _ := palette.Plan9[i].RGBA()
		buf.Write([]byte{byte(bl >> 8), byte(g >> 8), byte(r >> 8), 0})
	}

	// XOR data: palette indices, bottom-up, rows padded to 4 bytes.
	row := make([]byte, xorRow)
	for y := side - 1; y >= 0; y-- {
		for i := range row {
			row[i] = 0
		}
		copy(row, pal.Pix[y*pal.Stride:y*pal.Stride+side])
		buf.Write(row)
	}

	// AND mask: 1 bit per pixel, set means transparent, bottom-up.
	mask := make([]byte, andRow)
	for y := side - 1; y >= 0; y-- {
		for i := range mask {
			mask[i] = 0
		}
		for x := 0; x < side; x++ {
			if img.NRGBAAt(x, y).A < 128 {
				mask[x/8] |= 0x80 >> (x % 8)
			}
		}
		buf.Write(mask)
	}

	return buf.Bytes(), nil
}
