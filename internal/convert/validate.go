package convert

import (
	"fmt"
	"os"
	"sort"

	"iconforge/internal/errors"
	"iconforge/internal/ico"
	"iconforge/internal/util"
)

// Validate checks that the Request has all required fields and valid
// configuration. Returns nil if valid, or an error describing the
// validation failure.
func (req *Request) Validate() error {
	if len(req.InputFiles) == 0 {
		return errors.ErrNoInputFiles
	}
	if len(req.Sizes) == 0 {
		return errors.ErrNoSizes
	}
	if !req.Depth.Valid() {
		return errors.ErrInvalidDepth
	}
	if req.Radius < 0 || req.Radius > util.MaxRadius {
		return fmt.Errorf("radius %d: %w", req.Radius, errors.ErrInvalidRadius)
	}

	for _, s := range req.Sizes {
		if !validSize(s) {
			return fmt.Errorf("size %d: %w", s, errors.ErrInvalidSize)
		}
	}

	for _, f := range req.InputFiles {
		if _, err := os.Stat(f); err != nil {
			return errors.NewFileError("stat", f, err)
		}
	}

	if req.OutputDir != "" {
		info, err := os.Stat(req.OutputDir)
		if err != nil {
			return errors.NewFileError("stat", req.OutputDir, err)
		}
		if !info.IsDir() {
			return errors.NewValidationError("OutputDir", "output path is not a directory")
		}
	}

	return nil
}

// Normalize sorts and deduplicates the requested sizes and drops
// combinations the container cannot express. Currently that is the
// 256-pixel resolution at 8-bit depth, whose removal is reported as a
// warning rather than an error so the rest of the conversion proceeds.
func (req *Request) Normalize() []string {
	var warnings []string

	seen := make(map[int]bool)
	sizes := make([]int, 0, len(req.Sizes))
	for _, s := range req.Sizes {
		if seen[s] {
			continue
		}
		seen[s] = true
		if s == 256 && req.Depth == ico.Depth8 {
			warnings = append(warnings, "256 x 256 requires 32-bit depth, skipping that resolution")
			continue
		}
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	req.Sizes = sizes

	return warnings
}

func validSize(s int) bool {
	for _, v := range util.IconSizes {
		if s == v {
			return true
		}
	}
	return false
}
