package ico

import "testing"

func TestBitDepthValid(t *testing.T) {
	tests := []struct {
		depth BitDepth
		want  bool
	}{
		{Depth32, true},
		{Depth8, true},
		{BitDepth(0), false},
		{BitDepth(24), false},
		{BitDepth(1), false},
	}
	for _, tt := range tests {
		if got := tt.depth.Valid(); got != tt.want {
			t.Errorf("BitDepth(%d).Valid() = %v, want %v", tt.depth, got, tt.want)
		}
	}
}

func TestBitDepthString(t *testing.T) {
	if got := Depth32.String(); got != "32-bit" {
		t.Errorf("Depth32.String() = %q", got)
	}
	if got := Depth8.String(); got != "8-bit" {
		t.Errorf("Depth8.String() = %q", got)
	}
	if got := BitDepth(7).String(); got != "unknown" {
		t.Errorf("BitDepth(7).String() = %q", got)
	}
}

func TestSizeByte(t *testing.T) {
	tests := []struct {
		n    int
		want byte
	}{
		{16, 16},
		{255, 255},
		{256, 0},
	}
	for _, tt := range tests {
		if got := sizeByte(tt.n); got != tt.want {
			t.Errorf("sizeByte(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestEntryPixels(t *testing.T) {
	if got := entryPixels(0); got != 256 {
		t.Errorf("entryPixels(0) = %d, want 256", got)
	}
	if got := entryPixels(48); got != 48 {
		t.Errorf("entryPixels(48) = %d, want 48", got)
	}
}

func TestBmpRowSize(t *testing.T) {
	tests := []struct {
		bpp, width, want int
	}{
		{8, 16, 16},
		{8, 17, 20},
		{8, 48, 48},
		{1, 16, 4},
		{1, 32, 4},
		{1, 33, 8},
		{32, 16, 64},
	}
	for _, tt := range tests {
		if got := bmpRowSize(tt.bpp, tt.width); got != tt.want {
			t.Errorf("bmpRowSize(%d, %d) = %d, want %d", tt.bpp, tt.width, got, tt.want)
		}
	}
}
