package convert

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"iconforge/internal/errors"
	"iconforge/internal/ico"
)

// writeTestPNG creates a small valid PNG in dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, side int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, "in.png", 16)

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "no inputs",
			req:     Request{Sizes: []int{16}, Depth: ico.Depth32},
			wantErr: errors.ErrNoInputFiles,
		},
		{
			name:    "no sizes",
			req:     Request{InputFiles: []string{input}, Depth: ico.Depth32},
			wantErr: errors.ErrNoSizes,
		},
		{
			name:    "bad depth",
			req:     Request{InputFiles: []string{input}, Sizes: []int{16}, Depth: 24},
			wantErr: errors.ErrInvalidDepth,
		},
		{
			name:    "negative radius",
			req:     Request{InputFiles: []string{input}, Sizes: []int{16}, Depth: ico.Depth32, Radius: -1},
			wantErr: errors.ErrInvalidRadius,
		},
		{
			name:    "radius beyond slider range",
			req:     Request{InputFiles: []string{input}, Sizes: []int{16}, Depth: ico.Depth32, Radius: 513},
			wantErr: errors.ErrInvalidRadius,
		},
		{
			name:    "unknown size",
			req:     Request{InputFiles: []string{input}, Sizes: []int{20}, Depth: ico.Depth32},
			wantErr: errors.ErrInvalidSize,
		},
		{
			name: "missing input",
			req: Request{
				InputFiles: []string{filepath.Join(dir, "nope.png")},
				Sizes:      []int{16},
				Depth:      ico.Depth32,
			},
			wantErr: nil, // FileError, checked separately below
		},
		{
			name: "valid",
			req: Request{
				InputFiles: []string{input},
				Sizes:      []int{16, 32, 256},
				Depth:      ico.Depth32,
				Radius:     64,
			},
			wantErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.name == "missing input" {
				var ferr *errors.FileError
				if !errors.As(err, &ferr) {
					t.Errorf("Validate() = %v, want *FileError", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestValidateOutputDirNotDirectory(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, "in.png", 16)

	req := Request{
		InputFiles: []string{input},
		OutputDir:  input, // a file, not a directory
		Sizes:      []int{16},
		Depth:      ico.Depth32,
	}
	var verr *errors.ValidationError
	if err := req.Validate(); !errors.As(err, &verr) {
		t.Errorf("Validate() = %v, want *ValidationError", err)
	}
}

func TestNormalize(t *testing.T) {
	req := Request{Sizes: []int{48, 16, 48, 32}, Depth: ico.Depth32}
	if w := req.Normalize(); len(w) != 0 {
		t.Errorf("warnings = %v, want none", w)
	}
	want := []int{16, 32, 48}
	if len(req.Sizes) != len(want) {
		t.Fatalf("sizes = %v, want %v", req.Sizes, want)
	}
	for i := range want {
		if req.Sizes[i] != want[i] {
			t.Fatalf("sizes = %v, want %v", req.Sizes, want)
		}
	}
}

func TestNormalizeDrops256At8Bit(t *testing.T) {
	req := Request{Sizes: []int{16, 256}, Depth: ico.Depth8}
	warnings := req.Normalize()
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one", warnings)
	}
	if len(req.Sizes) != 1 || req.Sizes[0] != 16 {
		t.Errorf("sizes = %v, want [16]", req.Sizes)
	}
}

func TestNormalizeKeeps256At32Bit(t *testing.T) {
	req := Request{Sizes: []int{256}, Depth: ico.Depth32}
	if w := req.Normalize(); len(w) != 0 {
		t.Errorf("warnings = %v, want none", w)
	}
	if len(req.Sizes) != 1 || req.Sizes[0] != 256 {
		t.Errorf("sizes = %v, want [256]", req.Sizes)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, dir string
		size       int
		want       string
	}{
		{filepath.Join("src", "photo.png"), "", 0, filepath.Join("src", "photo.ico")},
		{filepath.Join("src", "photo.png"), "out", 0, filepath.Join("out", "photo.ico")},
		{filepath.Join("src", "photo.png"), "out", 48, filepath.Join("out", "photo_48.ico")},
		{"archive.tar.gz", "", 16, "archive.tar_16.ico"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.input, tt.dir, tt.size); got != tt.want {
			t.Errorf("OutputPath(%q, %q, %d) = %q, want %q", tt.input, tt.dir, tt.size, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	req := &Request{
		InputFiles: []string{"a.png", "b.png"},
		OutputDir:  "out",
		Sizes:      []int{16, 32},
		Separate:   true,
	}
	paths := OutputPaths(req)
	if len(paths) != 4 {
		t.Fatalf("paths = %v, want 4 entries", paths)
	}
	if paths[0] != filepath.Join("out", "a_16.ico") {
		t.Errorf("paths[0] = %q", paths[0])
	}

	req.Separate = false
	if paths = OutputPaths(req); len(paths) != 2 {
		t.Fatalf("paths = %v, want 2 entries", paths)
	}
}
