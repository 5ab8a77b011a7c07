// Package errors provides typed errors for IconForge operations.
// This enables callers to use errors.Is() and errors.As() for specific error handling.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// Use errors.Is(err, errors.ErrCancelled) to check for specific errors.
var (
	// Operation errors
	ErrCancelled = errors.New("operation cancelled")

	// Input validation errors
	ErrNoInputFiles      = errors.New("no input files specified")
	ErrNoSizes           = errors.New("no icon sizes selected")
	ErrInvalidSize       = errors.New("invalid icon size")
	ErrInvalidDepth      = errors.New("bit depth must be 8 or 32")
	ErrInvalidRadius     = errors.New("invalid corner radius")
	ErrFileTooLarge      = errors.New("input file exceeds size limit")
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// File errors
	ErrFileNotFound = errors.New("file not found")
	ErrFileExists   = errors.New("file already exists")

	// Icon container errors
	ErrInvalidIcon  = errors.New("invalid icon file")
	ErrImageTooBig  = errors.New("icon entries must not exceed 256x256 pixels")
	ErrNoIconImages = errors.New("icon file contains no images")
)

// DecodeError represents a failure to decode an input image.
type DecodeError struct {
	Path string // Input file path
	Err  error  // Underlying error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("decode %s failed", e.Path)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(path string, err error) *DecodeError {
	return &DecodeError{Path: path, Err: err}
}

// EncodeError represents a failure while writing a .ico output.
type EncodeError struct {
	Path string // Output file path (may be empty for in-memory encoding)
	Size int    // Entry resolution being written, 0 if not applicable
	Err  error  // Underlying error
}

func (e *EncodeError) Error() string {
	switch {
	case e.Path != "" && e.Size > 0:
		return fmt.Sprintf("encode %s (%dpx): %v", e.Path, e.Size, e.Err)
	case e.Path != "":
		return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("encode icon: %v", e.Err)
	}
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// NewEncodeError creates a new EncodeError.
func NewEncodeError(path string, size int, err error) *EncodeError {
	return &EncodeError{Path: path, Size: size, Err: err}
}

// FileError represents an error during file operations.
type FileError struct {
	Op   string // Operation: "open", "read", "write", "stat", "create"
	Path string // File path
	Err  error  // Underlying error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Err: err}
}

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Is checks if target matches any of our sentinel errors.
// This is a convenience function for common error checks.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// New creates a plain error. Re-exported so callers don't need both this
// package and the standard library errors.
func New(text string) error {
	return errors.New(text)
}

// IsCancelled checks if the error indicates a cancelled operation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsUnsupported checks if the error indicates an unsupported input format.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}
