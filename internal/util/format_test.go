package util

import (
	"testing"
	"time"
)

func TestTimeify(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
		{-10, "00:00:00"}, // negative values should clamp to 0
	}

	for _, tt := range tests {
		result := Timeify(tt.seconds)
		if result != tt.expected {
			t.Errorf("Timeify(%d) = %s; want %s", tt.seconds, result, tt.expected)
		}
	}
}

func TestSizeify(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0.00 KiB"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{MiB, "1.00 MiB"},
		{MiB + MiB/2, "1.50 MiB"},
		{GiB, "1.00 GiB"},
		{TiB, "1.00 TiB"},
		{2 * TiB, "2.00 TiB"},
	}

	for _, tt := range tests {
		result := Sizeify(tt.size)
		if result != tt.expected {
			t.Errorf("Sizeify(%d) = %s; want %s", tt.size, result, tt.expected)
		}
	}
}

func TestSizeLabel(t *testing.T) {
	if got := SizeLabel(16); got != "16 x 16" {
		t.Errorf("SizeLabel(16) = %q; want %q", got, "16 x 16")
	}
	if got := SizeLabel(256); got != "256 x 256" {
		t.Errorf("SizeLabel(256) = %q; want %q", got, "256 x 256")
	}
}

func TestStatify(t *testing.T) {
	// Half of the batch done after one second
	start := time.Now().Add(-time.Second)
	progress, speed, eta := Statify(6, 12, start)

	if progress < 0.49 || progress > 0.51 {
		t.Errorf("Statify progress = %f; want ~0.5", progress)
	}
	if speed <= 0 {
		t.Errorf("Statify speed = %f; want > 0", speed)
	}
	if len(eta) != 8 || eta[2] != ':' || eta[5] != ':' {
		t.Errorf("Statify eta = %s; want HH:MM:SS format", eta)
	}
}

func TestStatifyZeroTotal(t *testing.T) {
	progress, speed, eta := Statify(0, 0, time.Now())
	if progress != 0 || speed != 0 || eta != "00:00:00" {
		t.Errorf("Statify with zero total = (%f, %f, %s); want zeros", progress, speed, eta)
	}
}

func TestIconSizesSorted(t *testing.T) {
	for i := 1; i < len(IconSizes); i++ {
		if IconSizes[i] <= IconSizes[i-1] {
			t.Errorf("IconSizes not strictly ascending at index %d", i)
		}
	}
	if IconSizes[len(IconSizes)-1] != 256 {
		t.Errorf("largest icon size = %d; want 256", IconSizes[len(IconSizes)-1])
	}
}
