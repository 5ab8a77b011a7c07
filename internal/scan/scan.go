// Package scan collects and filters input files for conversion:
// extension filtering, size capping, duplicate removal, and folder
// expansion for dropped or CLI-provided paths.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"iconforge/internal/errors"
	"iconforge/internal/imaging"
	"iconforge/internal/util"
)

// StatusFunc receives a status message during folder scans (optional).
type StatusFunc func(status string)

// Rejection records a path that was not accepted, with the reason.
type Rejection struct {
	Path   string
	Reason error
}

// Options configures a scan.
type Options struct {
	// Existing paths already in the batch; accepted results are
	// deduplicated against them and against each other.
	Existing []string

	// Recurse descends into subdirectories when a directory is scanned.
	// Non-recursive scans only take a directory's immediate files.
	Recurse bool

	Status StatusFunc
}

// Scan expands the given paths into the list of acceptable input images.
// Directories are expanded to the image files they contain (sorted for a
// stable batch order); plain files are checked directly. Files that are
// not images, exceed the size cap, or duplicate an already accepted path
// are reported in the rejection list rather than failing the scan.
func Scan(paths []string, opts Options) ([]string, []Rejection, error) {
	seen := make(map[string]bool, len(opts.Existing))
	for _, p := range opts.Existing {
		seen[p] = true
	}

	var (
		accepted []string
		rejected []Rejection
	)
	take := func(path string) {
		if err := check(path); err != nil {
			rejected = append(rejected, Rejection{Path: path, Reason: err})
			return
		}
		if seen[path] {
			rejected = append(rejected, Rejection{Path: path, Reason: errors.ErrFileExists})
			return
		}
		seen[path] = true
		accepted = append(accepted, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			rejected = append(rejected, Rejection{Path: path, Reason: errors.NewFileError("stat", path, err)})
			continue
		}
		if !info.IsDir() {
			take(path)
			continue
		}

		if opts.Status != nil {
			opts.Status("Scanning " + filepath.Base(path) + "...")
		}
		found, err := scanDir(path, opts.Recurse)
		if err != nil {
			return accepted, rejected, err
		}
		for _, f := range found {
			take(f)
		}
	}

	return accepted, rejected, nil
}

// scanDir lists the image files under dir. Only file names with a
// supported extension are returned; per-file checks happen later.
func scanDir(dir string, recurse bool) ([]string, error) {
	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && !recurse {
				return fs.SkipDir
			}
			return nil
		}
		if imaging.Supported(d.Name()) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewFileError("scan", dir, err)
	}
	sort.Strings(found)
	return found, nil
}

// check validates a single candidate file.
func check(path string) error {
	if !imaging.Supported(path) {
		return errors.ErrUnsupportedFormat
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.NewFileError("stat", path, err)
	}
	if info.IsDir() {
		return errors.ErrUnsupportedFormat
	}
	if info.Size() > util.MaxInputSize {
		return errors.ErrFileTooLarge
	}
	return nil
}
