package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"iconforge/internal/errors"
	"iconforge/internal/ico"
	"iconforge/internal/imaging"
	"iconforge/internal/log"
)

// Batch converts every input file in the request. The batch continues
// past per-file failures and reports them in the Result; the returned
// error is non-nil only when the whole run cannot proceed (invalid
// request) or was cancelled.
func Batch(ctx context.Context, req *Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Warnings: req.Normalize()}
	if len(req.Sizes) == 0 {
		return nil, errors.ErrNoSizes
	}

	// One step for decode+round, one per resolution, one per output file.
	outputs := 1
	if req.Separate {
		outputs = len(req.Sizes)
	}
	op := &operation{
		ctx:      ctx,
		reporter: req.Reporter,
		total:    int64(len(req.InputFiles) * (1 + len(req.Sizes) + outputs)),
	}
	if req.Reporter != nil {
		req.Reporter.SetCanCancel(true)
		defer req.Reporter.SetCanCancel(false)
	}

	for _, path := range req.InputFiles {
		if op.cancelled() {
			return res, errors.ErrCancelled
		}

		op.setStatus(fmt.Sprintf("Converting %s...", filepath.Base(path)))
		written, err := convertOne(op, req, path)
		res.Outputs = append(res.Outputs, written...)
		if err != nil {
			if errors.IsCancelled(err) {
				return res, errors.ErrCancelled
			}
			res.Failed++
			res.Failures = append(res.Failures, Failure{Path: path, Err: err})
			log.Error("conversion failed", log.String("input", path), log.Err(err))
			continue
		}
		res.Converted++
		log.Info("converted", log.String("input", path), log.Int("outputs", len(written)))
	}

	return res, nil
}

// convertOne runs the full pipeline for a single input file and returns
// the output paths it wrote. A partially written output is removed on
// error so failed conversions leave nothing behind.
func convertOne(op *operation, req *Request, path string) ([]string, error) {
	src, err := imaging.Decode(path)
	if err != nil {
		return nil, err
	}
	src = imaging.Round(src, req.Radius)
	op.step(filepath.Base(path))

	images := make([]scaled, 0, len(req.Sizes))
	for _, size := range req.Sizes {
		if op.cancelled() {
			return nil, errors.ErrCancelled
		}
		images = append(images, scaled{size: size, img: imaging.Scale(src, size)})
		op.step(fmt.Sprintf("%s %d px", filepath.Base(path), size))
	}

	var written []string
	if req.Separate {
		for _, sc := range images {
			if op.cancelled() {
				return written, errors.ErrCancelled
			}
			out := OutputPath(path, req.OutputDir, sc.size)
			if err := writeIcon(out, []scaled{sc}, req); err != nil {
				return written, err
			}
			written = append(written, out)
			op.step(filepath.Base(out))
		}
		return written, nil
	}

	out := OutputPath(path, req.OutputDir, 0)
	if err := writeIcon(out, images, req); err != nil {
		return nil, err
	}
	op.step(filepath.Base(out))
	return []string{out}, nil
}

// writeIcon encodes the given resolutions into one .ico file at path.
func writeIcon(path string, images []scaled, req *Request) error {
	if !req.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.NewFileError("create", path, errors.ErrFileExists)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.NewFileError("create", path, err)
	}

	w := ico.NewWriter(f, req.Depth)
	for _, sc := range images {
		if err := w.Add(sc.img); err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return errors.NewEncodeError(path, sc.size, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return errors.NewEncodeError(path, 0, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return errors.NewFileError("close", path, err)
	}
	return nil
}

// OutputPath derives the .ico path for an input file. A non-zero size
// produces the separate-mode name "base_SIZE.ico"; size 0 produces
// "base.ico". When dir is empty the output lands next to the input.
func OutputPath(input, dir string, size int) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	name := base + ".ico"
	if size > 0 {
		name = fmt.Sprintf("%s_%d.ico", base, size)
	}
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

// OutputPaths lists every file a request would write, for overwrite
// prompts before the batch starts.
func OutputPaths(req *Request) []string {
	var paths []string
	for _, input := range req.InputFiles {
		if req.Separate {
			for _, size := range req.Sizes {
				paths = append(paths, OutputPath(input, req.OutputDir, size))
			}
		} else {
			paths = append(paths, OutputPath(input, req.OutputDir, 0))
		}
	}
	return paths
}
