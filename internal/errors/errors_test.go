package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestSentinelIdentity(t *testing.T) {
	if !Is(ErrCancelled, ErrCancelled) {
		t.Error("ErrCancelled should match itself")
	}
	if Is(ErrCancelled, ErrNoInputFiles) {
		t.Error("distinct sentinels should not match")
	}
}

func TestWrapPreservesSentinel(t *testing.T) {
	wrapped := Wrap(ErrUnsupportedFormat, "reading input")
	if !Is(wrapped, ErrUnsupportedFormat) {
		t.Error("wrapped error should still match sentinel")
	}
	if !strings.Contains(wrapped.Error(), "reading input") {
		t.Errorf("wrapped message missing context: %s", wrapped.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestDecodeError(t *testing.T) {
	underlying := stderrors.New("bad magic")
	err := NewDecodeError("/tmp/x.png", underlying)

	if !strings.Contains(err.Error(), "/tmp/x.png") {
		t.Errorf("DecodeError message missing path: %s", err.Error())
	}
	if !stderrors.Is(err, underlying) {
		t.Error("DecodeError should unwrap to underlying error")
	}

	var de *DecodeError
	if !As(err, &de) {
		t.Error("As should find DecodeError")
	}
	if de.Path != "/tmp/x.png" {
		t.Errorf("DecodeError.Path = %s; want /tmp/x.png", de.Path)
	}
}

func TestEncodeError(t *testing.T) {
	err := NewEncodeError("out.ico", 256, ErrImageTooBig)
	if !strings.Contains(err.Error(), "256px") {
		t.Errorf("EncodeError message missing size: %s", err.Error())
	}
	if !Is(err, ErrImageTooBig) {
		t.Error("EncodeError should unwrap to sentinel")
	}

	// Without path or size the message should still be usable
	err2 := NewEncodeError("", 0, stderrors.New("short write"))
	if !strings.Contains(err2.Error(), "short write") {
		t.Errorf("EncodeError fallback message wrong: %s", err2.Error())
	}
}

func TestFileError(t *testing.T) {
	err := NewFileError("stat", "/nope", ErrFileNotFound)
	if !strings.Contains(err.Error(), "stat /nope") {
		t.Errorf("FileError message = %s", err.Error())
	}
	if !Is(err, ErrFileNotFound) {
		t.Error("FileError should unwrap")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("Sizes", "at least one size required")
	if !strings.Contains(err.Error(), "Sizes") {
		t.Errorf("ValidationError message = %s", err.Error())
	}
}

func TestIsCancelledThroughChain(t *testing.T) {
	err := Wrap(Wrap(ErrCancelled, "inner"), "outer")
	if !IsCancelled(err) {
		t.Error("IsCancelled should see through wrapping")
	}
	if IsCancelled(ErrNoSizes) {
		t.Error("IsCancelled false positive")
	}
}
