package ico

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"iconforge/internal/errors"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// Reader parses an icon file into its directory entries and images.
// It understands embedded PNG entries and 8-bit or 32-bit BMP entries,
// which covers everything this program writes plus the common icons
// found in the wild.
type Reader struct {
	data    []byte
	entries []Entry
}

// NewReader reads the full icon from r and parses its directory.
func NewReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}
	return newReaderBytes(data)
}

func newReaderBytes(data []byte) (*Reader, error) {
	if len(data) < FileHeaderSize {
		return nil, errors.Wrap(errors.ErrInvalidIcon, "file too short")
	}
	reserved := binary.LittleEndian.Uint16(data[0:2])
	typ := binary.LittleEndian.Uint16(data[2:4])
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if reserved != 0 || typ != TypeIcon {
		return nil, errors.Wrap(errors.ErrInvalidIcon, "bad file header")
	}
	if count == 0 {
		return nil, errors.ErrNoIconImages
	}
	if len(data) < FileHeaderSize+DirEntrySize*count {
		return nil, errors.Wrap(errors.ErrInvalidIcon, "truncated directory")
	}

	rd := &Reader{data: data}
	for i := 0; i < count; i++ {
		raw := data[FileHeaderSize+DirEntrySize*i:]
		e := Entry{
			Width:    entryPixels(raw[0]),
			Height:   entryPixels(raw[1]),
			BitCount: int(binary.LittleEndian.Uint16(raw[6:8])),
			Size:     binary.LittleEndian.Uint32(raw[8:12]),
			Offset:   binary.LittleEndian.Uint32(raw[12:16]),
		}
		end := uint64(e.Offset) + uint64(e.Size)
		if e.Size == 0 || end > uint64(len(data)) {
			return nil, errors.Wrap(errors.ErrInvalidIcon, fmt.Sprintf("entry %d out of bounds", i))
		}
		e.PNG = bytes.HasPrefix(data[e.Offset:end], pngMagic)
		rd.entries = append(rd.entries, e)
	}
	return rd, nil
}

// Entries returns the parsed directory, in file order.
func (r *Reader) Entries() []Entry {
	return r.entries
}

// Image decodes the image data of entry i.
func (r *Reader) Image(i int) (*image.NRGBA, error) {
	if i < 0 || i >= len(r.entries) {
		return nil, fmt.Errorf("entry %d: %w", i, errors.ErrInvalidIcon)
	}
	e := r.entries[i]
	data := r.data[e.Offset : e.Offset+e.Size]

	if e.PNG {
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("entry %d png: %w", i, err)
		}
		return toNRGBA(img), nil
	}
	img, err := decodeBMP(data)
	if err != nil {
		return nil, fmt.Errorf("entry %d bmp: %w", i, err)
	}
	return img, nil
}

// Decode reads an icon file and returns all of its images in file order.
func Decode(r io.Reader) ([]*image.NRGBA, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	images := make([]*image.NRGBA, len(rd.entries))
	for i := range rd.entries {
		if images[i], err = rd.Image(i); err != nil {
			return nil, err
		}
	}
	return images, nil
}

// decodeBMP parses a headerless icon BMP block (BITMAPINFOHEADER with
// doubled height) at 8 or 32 bits per pixel.
func decodeBMP(data []byte) (*image.NRGBA, error) {
	if len(data) < bmpInfoHeaderSize {
		return nil, errors.Wrap(errors.ErrInvalidIcon, "bmp header too short")
	}
	headerSize := binary.LittleEndian.Uint32(data[0:4])
	if headerSize != bmpInfoHeaderSize {
		return nil, errors.Wrap(errors.ErrInvalidIcon, "unsupported bmp header")
	}
	width := int(int32(binary.LittleEndian.Uint32(data[4:8])))
	height := int(int32(binary.LittleEndian.Uint32(data[8:12]))) / 2
	bitCount := int(binary.LittleEndian.Uint16(data[14:16]))
	if width <= 0 || height <= 0 || width > MaxEntryPixels || height > MaxEntryPixels {
		return nil, errors.Wrap(errors.ErrInvalidIcon, "bad bmp dimensions")
	}

	switch bitCount {
	case 8:
		return decodeBMP8(data, width, height)
	case 32:
		return decodeBMP32(data, width, height)
	default:
		return nil, errors.Wrap(errors.ErrInvalidIcon, fmt.Sprintf("unsupported bmp depth %d", bitCount))
	}
}

func decodeBMP8(data []byte, width, height int) (*image.NRGBA, error) {
	colorsUsed := int(binary.LittleEndian.Uint32(data[32:36]))
	if colorsUsed == 0 || colorsUsed > 256 {
		colorsUsed = 256
	}

	palOff := bmpInfoHeaderSize
	xorOff := palOff + colorsUsed*4
	xorRow := bmpRowSize(8, width)
	andOff := xorOff + xorRow*height
	andRow := bmpRowSize(1, width)
	if andOff+andRow*height > len(data) {
		return nil, errors.Wrap(errors.ErrInvalidIcon, "truncated bmp data")
	}

	pal := make([]color.NRGBA, colorsUsed)
	for i := range pal {
		q := data[palOff+i*4:]
		pal[i] = color.NRGBA{R: q[2], G: q[1], B: q[0], A: 255}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		srcY := height - 1 - y
		xor := data[xorOff+srcY*xorRow:]
		and := data[andOff+srcY*andRow:]
		for x := 0; x < width; x++ {
			idx := int(xor[x])
			if idx >= colorsUsed {
				idx = 0
			}
			c := pal[idx]
			if and[x/8]&(0x80>>(x%8)) != 0 {
				c = color.NRGBA{}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img, nil
}

func decodeBMP32(data []byte, width, height int) (*image.NRGBA, error) {
	xorOff := bmpInfoHeaderSize
	xorRow := bmpRowSize(32, width)
	if xorOff+xorRow*height > len(data) {
		return nil, errors.Wrap(errors.ErrInvalidIcon, "truncated bmp data")
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := data[xorOff+(height-1-y)*xorRow:]
		for x := 0; x < width; x++ {
			p := row[x*4:]
			img.SetNRGBA(x, y, color.NRGBA{R: p[2], G: p[1], B: p[0], A: p[3]})
		}
	}
	return img, nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
