// Package imaging provides the image pipeline primitives for IconForge:
// decoding the supported raster formats, rounded-corner masking, and
// high-quality resizing. All functions return images normalized to
// *image.NRGBA so the rest of the pipeline never deals with mixed
// color models.
package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"iconforge/internal/errors"
	"iconforge/internal/util"

	"github.com/ftrvxmtrx/tga"
	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

func init() {
	// ICO files start with reserved=0, type=1 (little-endian).
	image.RegisterFormat("ico", "\x00\x00\x01\x00", ico.Decode, ico.DecodeConfig)
}

// Extensions lists the input file extensions IconForge accepts, lowercase
// with leading dot.
var Extensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tga", ".webp", ".ico"}

// Supported reports whether the file name has a recognized image extension.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Decode reads and decodes the image at path, enforcing the input size cap.
// The result is always an *image.NRGBA.
func Decode(path string) (*image.NRGBA, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewFileError("stat", path, err)
	}
	if info.Size() > util.MaxInputSize {
		return nil, errors.NewFileError("open", path, errors.ErrFileTooLarge)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewFileError("open", path, err)
	}
	defer func() { _ = f.Close() }()

	return DecodeReader(f, path)
}

// DecodeReader decodes an image from r. The name is used for the TGA
// extension fallback (TGA has no magic number, so sniffing cannot find it)
// and for error reporting.
func DecodeReader(r io.Reader, name string) (*image.NRGBA, error) {
	data, err := io.ReadAll(io.LimitReader(r, util.MaxInputSize+1))
	if err != nil {
		return nil, errors.NewFileError("read", name, err)
	}
	if len(data) > util.MaxInputSize {
		return nil, errors.NewFileError("read", name, errors.ErrFileTooLarge)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if strings.EqualFold(filepath.Ext(name), ".tga") {
			img, err = tga.Decode(bytes.NewReader(data))
			if err != nil {
				return nil, errors.NewDecodeError(name, err)
			}
			return ToNRGBA(img), nil
		}
		return nil, errors.NewDecodeError(name, errors.Wrap(errors.ErrUnsupportedFormat, err.Error()))
	}

	return ToNRGBA(img), nil
}

// ToNRGBA converts any image to non-premultiplied RGBA. If the image is
// already an *image.NRGBA anchored at the origin, it is returned unchanged.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
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
