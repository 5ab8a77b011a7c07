package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"iconforge/internal/convert"
	"iconforge/internal/errors"
	"iconforge/internal/ico"
	"iconforge/internal/scan"
	"iconforge/internal/util"

	"github.com/spf13/cobra"
)

func init() {
	// Silence Cobra's default error/usage printing - we handle it ourselves
	convertCmd.SilenceErrors = true
	convertCmd.SilenceUsage = true
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert images into .ico files",
	Long: `Convert one or more images into Windows .ico icon files.

Each input produces one .ico containing every selected resolution, or
one single-resolution .ico per size with --separate.

Examples:
  # Convert with the default resolutions (16 through 256)
  iconforge convert -i logo.png

  # Convert into a specific directory with rounded corners
  iconforge convert -i logo.png -o icons/ --radius 64

  # Embed only two resolutions
  iconforge convert -i logo.png -s 16 -s 32

  # Legacy 8-bit icons (256 px is skipped automatically)
  iconforge convert -i logo.png --depth 8

  # One .ico per resolution: logo_16.ico, logo_32.ico, ...
  iconforge convert -i logo.png --separate

  # Whole folder, overwriting existing outputs
  iconforge convert -i artwork/ --recursive -y`,
	RunE: runConvert,
}

// Convert flags
var (
	convInput     []string
	convOutputDir string
	convRadius    int
	convSizes     []int
	convDepth     int
	convSeparate  bool
	convRecursive bool
	convQuiet     bool
	convYes       bool
)

func init() {
	rootCmd.AddCommand(convertCmd)

	// Input/Output
	convertCmd.Flags().StringArrayVarP(&convInput, "input", "i", nil, "Input image(s) or folder(s) (can be specified multiple times)")
	convertCmd.Flags().StringVarP(&convOutputDir, "output-dir", "o", "", "Directory for generated .ico files (default: next to each source)")

	// Conversion options
	convertCmd.Flags().IntVarP(&convRadius, "radius", "r", 0, fmt.Sprintf("Corner radius in pixels (0-%d)", util.MaxRadius))
	convertCmd.Flags().IntSliceVarP(&convSizes, "size", "s", nil, "Resolution to embed (can be specified multiple times; default: all)")
	convertCmd.Flags().IntVar(&convDepth, "depth", 32, "Bit depth: 32 (PNG entries) or 8 (palettized BMP entries)")
	convertCmd.Flags().BoolVar(&convSeparate, "separate", false, "Write one single-resolution .ico per size")
	convertCmd.Flags().BoolVar(&convRecursive, "recursive", false, "Descend into subdirectories of folder inputs")

	// Other
	convertCmd.Flags().BoolVarP(&convQuiet, "quiet", "q", false, "Suppress progress output")
	convertCmd.Flags().BoolVarP(&convYes, "yes", "y", false, "Overwrite existing output files")

	_ = convertCmd.MarkFlagRequired("input")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(convInput) == 0 {
		return fmt.Errorf("at least one input is required (-i)")
	}

	// Expand glob patterns before scanning
	var paths []string
	for _, input := range convInput {
		matches, err := filepath.Glob(input)
		if err != nil {
			return fmt.Errorf("invalid glob pattern %q: %w", input, err)
		}
		if len(matches) == 0 {
			return fmt.Errorf("input not found: %s", input)
		}
		paths = append(paths, matches...)
	}

	reporter := NewReporter(convQuiet)
	globalReporter = reporter

	accepted, rejected, err := scan.Scan(paths, scan.Options{Recurse: convRecursive})
	if err != nil {
		return err
	}
	for _, rej := range rejected {
		reporter.PrintWarning("skipping %s: %v", rej.Path, rej.Reason)
	}
	if len(accepted) == 0 {
		return errors.ErrNoInputFiles
	}

	sizes := convSizes
	if len(sizes) == 0 {
		sizes = util.IconSizes
	}

	req := &convert.Request{
		InputFiles: accepted,
		OutputDir:  convOutputDir,
		Radius:     convRadius,
		Sizes:      sizes,
		Depth:      ico.BitDepth(convDepth),
		Separate:   convSeparate,
		Overwrite:  convYes,
		Reporter:   reporter,
	}

	if !convQuiet {
		fmt.Fprintf(os.Stderr, "Converting %d image(s)\n", len(accepted))
	}

	res, err := convert.Batch(context.Background(), req)
	reporter.Finish()

	if err != nil {
		reporter.PrintError("%v", err)
		return err
	}
	for _, warning := range res.Warnings {
		reporter.PrintWarning("%s", warning)
	}
	for _, failure := range res.Failures {
		reporter.PrintError("%s: %v", failure.Path, failure.Err)
	}

	if res.Converted == 0 {
		return fmt.Errorf("no images were converted")
	}
	reporter.PrintSuccess("Converted %d image(s) into %d icon file(s)", res.Converted, len(res.Outputs))
	if res.Failed > 0 {
		return fmt.Errorf("%d image(s) failed", res.Failed)
	}
	return nil
}
