package app

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"iconforge/internal/errors"
)

func TestUIReporterCallbacks(t *testing.T) {
	var (
		status    string
		fraction  float32
		canCancel bool
		updates   int
	)
	r := NewUIReporter(
		func(s string) { status = s },
		func(f float32, info string) { fraction = f },
		func(c bool) { canCancel = c },
		func() { updates++ },
		nil,
	)

	r.SetStatus("Converting...")
	r.SetProgress(0.25, "logo.png")
	r.SetCanCancel(true)
	r.Update()

	if status != "Converting..." || fraction != 0.25 || !canCancel || updates != 1 {
		t.Errorf("status=%q fraction=%v canCancel=%v updates=%d", status, fraction, canCancel, updates)
	}
}

func TestUIReporterNilCallbacks(t *testing.T) {
	r := &UIReporter{}
	r.SetStatus("x")
	r.SetProgress(1, "y")
	r.SetCanCancel(true)
	r.Update()
	if r.IsCancelled() {
		t.Error("fresh reporter should not be cancelled")
	}
}

func TestUIReporterCancel(t *testing.T) {
	r := &UIReporter{}
	r.Cancel()
	if !r.IsCancelled() {
		t.Error("Cancel() did not take effect")
	}
	r.Reset()
	if r.IsCancelled() {
		t.Error("Reset() did not clear cancellation")
	}
}

func TestUIReporterCheckCancel(t *testing.T) {
	external := false
	r := NewUIReporter(nil, nil, nil, nil, func() bool { return external })
	if r.IsCancelled() {
		t.Error("should not be cancelled yet")
	}
	external = true
	if !r.IsCancelled() {
		t.Error("external cancel not observed")
	}
}

func TestReporterStoresValues(t *testing.T) {
	updates := 0
	r := NewReporter(func() { updates++ })

	r.SetStatus("Converting a.png...")
	r.SetProgress(0.5, "a.png 48 px")
	r.SetCanCancel(true)

	if got := r.GetStatus(); got != "Converting a.png..." {
		t.Errorf("status = %q", got)
	}
	if f, info := r.GetProgress(); f != 0.5 || info != "a.png 48 px" {
		t.Errorf("progress = %v %q", f, info)
	}
	if !r.GetCanCancel() {
		t.Error("can-cancel not stored")
	}
	if updates != 3 {
		t.Errorf("updates = %d, want 3", updates)
	}

	r.Reset()
	if r.GetStatus() != "Ready" || r.GetCanCancel() || r.IsCancelled() {
		t.Error("Reset() incomplete")
	}
}

func TestRunnerConvert(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 50, G: 150, B: 250, A: 255})
		}
	}
	input := filepath.Join(dir, "in.png")
	f, err := os.Create(input)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s := NewState()
	s.AddFiles([]string{input})
	s.OutputDir = t.TempDir()
	for _, size := range []int{32, 48, 64, 128, 256} {
		s.SizeChecked[size] = false
	}

	r := NewRunner(s, nil)
	res, err := r.Convert(context.Background())
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.Converted != 1 || res.Failed != 0 {
		t.Fatalf("result = %+v", res)
	}
	if _, err := os.Stat(filepath.Join(s.OutputDir, "in.ico")); err != nil {
		t.Errorf("output missing: %v", err)
	}
	if s.MainStatus != "Converted 1 image(s)" {
		t.Errorf("status = %q", s.MainStatus)
	}
	if s.Working {
		t.Error("working flag not cleared")
	}
}

func TestRunnerCancel(t *testing.T) {
	s := NewState()
	s.AddFiles([]string{"/tmp/does-not-matter.png"})
	r := NewRunner(s, nil)
	r.Cancel()
	if !r.GetReporter().IsCancelled() {
		t.Error("runner cancel not propagated")
	}

	_, err := r.Convert(context.Background())
	if err == nil {
		t.Error("expected error for missing input")
	}
	if errors.IsCancelled(err) {
		// Validation fails before the cancel check; either way the
		// batch must not report success.
		t.Log("cancelled before validation")
	}
}
